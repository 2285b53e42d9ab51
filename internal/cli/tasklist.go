package cli

import (
	"fmt"
	"strings"
)

type TaskListCmd struct {
	Trade string `short:"t" help:"Only show tasks with this trade tag."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}

	if c.Trade != "" {
		filtered := tasks[:0]
		for _, t := range tasks {
			if strings.EqualFold(t.Trade, c.Trade) {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found. Add one with 'crewplan task add'.")
		return nil
	}

	fmt.Printf("%-12s %-28s %8s  %-12s %-20s %s\n", "CODE", "LABEL", "DAYS", "TRADE", "DEPENDS ON", "SCHEDULED")
	for _, t := range tasks {
		deps := "-"
		if len(t.DependsOn) > 0 {
			deps = strings.Join(t.DependsOn, ",")
		}
		window := "-"
		if t.IsScheduled() {
			window = fmt.Sprintf("%s → %s",
				t.ScheduledStart.Format("2006-01-02 15:04"),
				t.ScheduledEnd.Format("2006-01-02 15:04"))
		}
		trade := t.Trade
		if trade == "" {
			trade = "-"
		}
		fmt.Printf("%-12s %-28s %8.2g  %-12s %-20s %s\n", t.Code, t.Label, t.DurationDays, trade, deps, window)
	}

	return nil
}

type TaskDeleteCmd struct {
	Code string `arg:"" help:"Code of the task to delete."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}
	var dependents []string
	for _, t := range tasks {
		for _, dep := range t.DependsOn {
			if dep == c.Code {
				dependents = append(dependents, t.Code)
			}
		}
	}

	if err := ctx.Store.DeleteTask(c.Code); err != nil {
		return err
	}

	fmt.Printf("Deleted task %s\n", c.Code)
	if len(dependents) > 0 {
		fmt.Printf("Note: %s still reference it and will no longer wait on it: %s\n",
			pluralize(len(dependents), "task", "tasks"), strings.Join(dependents, ", "))
	}
	return nil
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
