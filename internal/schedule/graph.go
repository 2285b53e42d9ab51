package schedule

import "github.com/julianstephens/crewplan/internal/models"

// SortTasks orders tasks so that every dependency resolvable within the
// set appears before its dependents (Kahn's algorithm). Dependency codes
// that do not exist in the set are ignored. Ties are broken by discovery
// order: the order in which tasks reach zero in-degree.
//
// The returned slice contains every input task exactly once. A cycle in
// the dependency relation yields a *CycleError naming every task that
// could not be ordered.
func SortTasks(tasks []models.Task) ([]models.Task, error) {
	index := make(map[string]int, len(tasks))
	for i, t := range tasks {
		index[t.Code] = i
	}

	indegree := make([]int, len(tasks))
	dependents := make([][]int, len(tasks))
	for i, t := range tasks {
		for _, dep := range t.DependsOn {
			j, ok := index[dep]
			if !ok {
				// Unknown code: treated as already satisfied.
				continue
			}
			indegree[i]++
			dependents[j] = append(dependents[j], i)
		}
	}

	queue := make([]int, 0, len(tasks))
	for i := range tasks {
		if indegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	ordered := make([]models.Task, 0, len(tasks))
	drained := make([]bool, len(tasks))
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		drained[i] = true
		ordered = append(ordered, tasks[i])

		for _, dep := range dependents[i] {
			indegree[dep]--
			if indegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if len(ordered) < len(tasks) {
		var stuck []string
		for i, t := range tasks {
			if !drained[i] {
				stuck = append(stuck, t.Code)
			}
		}
		return nil, &CycleError{Codes: stuck}
	}

	return ordered, nil
}
