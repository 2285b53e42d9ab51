package schedule

import (
	"time"

	"github.com/julianstephens/crewplan/internal/models"
)

// Options controls a forward-scheduling pass.
type Options struct {
	// From anchors tasks without dependencies. Zero means time.Now().
	From time.Time
	// BufferDays is added to every task's duration.
	BufferDays float64
	// LookaheadDays caps the search for a working window; <=0 selects
	// DefaultLookaheadDays.
	LookaheadDays int
}

type Scheduler struct{}

func New() *Scheduler {
	return &Scheduler{}
}

// Schedule assigns ScheduledStart and ScheduledEnd to every task in the
// set, walking the dependency graph in topological order. A task starts
// at the latest end among its in-set dependencies (or at opts.From for
// roots), aligned forward to the next working instant; it ends after its
// duration plus buffer has been consumed as working time.
//
// The input slice is not mutated. The result is ordered topologically.
// Scheduling is all-or-nothing: a dependency cycle or an unusable
// calendar aborts the whole pass.
func (s *Scheduler) Schedule(tasks []models.Task, cal models.Calendar, opts Options) ([]models.Task, error) {
	ordered, err := SortTasks(tasks)
	if err != nil {
		return nil, err
	}

	from := opts.From
	if from.IsZero() {
		from = time.Now()
	}
	holidays := cal.HolidaySet()

	endByCode := make(map[string]time.Time, len(ordered))
	out := make([]models.Task, 0, len(ordered))
	for _, task := range ordered {
		earliest := from
		for _, dep := range task.DependsOn {
			if end, ok := endByCode[dep]; ok && end.After(earliest) {
				earliest = end
			}
		}

		start, err := NextWorkingStart(earliest, cal.Hours, holidays, opts.LookaheadDays)
		if err != nil {
			return nil, err
		}
		end, err := AddBusinessDays(start, task.DurationDays+opts.BufferDays, cal.Hours, holidays)
		if err != nil {
			return nil, err
		}

		scheduled := task
		scheduled.ScheduledStart = &start
		scheduled.ScheduledEnd = &end
		if scheduled.Status == "" {
			scheduled.Status = models.StatusScheduled
		}
		endByCode[task.Code] = end
		out = append(out, scheduled)
	}

	return out, nil
}
