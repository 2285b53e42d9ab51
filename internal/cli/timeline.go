package cli

import (
	"fmt"
	"os"

	"github.com/julianstephens/crewplan/internal/report"
	"github.com/julianstephens/crewplan/internal/schedule"
)

type TimelineCmd struct{}

func (c *TimelineCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	// Presenting in dependency order keeps chains readable; fall back
	// to stored order if the graph is broken.
	if ordered, err := schedule.SortTasks(tasks); err == nil {
		tasks = ordered
	}

	report.PrintTimeline(os.Stdout, tasks)
	return nil
}
