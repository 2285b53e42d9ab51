package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/crewplan/internal/schedule"
)

type ScheduleCmd struct {
	From   string   `short:"f" help:"Start instant (YYYY-MM-DD, RFC3339, or 'now')." default:"now"`
	Buffer *float64 `short:"b" help:"Buffer days added to every task (default: stored setting)."`
	Yes    bool     `short:"y" help:"Replace an existing schedule without asking."`
}

func (c *ScheduleCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}
	if len(tasks) == 0 {
		fmt.Println("No tasks to schedule. Add some with 'crewplan task add'.")
		return nil
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	// Validate the inputs before touching anything.
	if result := ctx.Validator.ValidateTasks(tasks); result.HasConflicts() {
		for _, conflict := range result.Conflicts {
			fmt.Printf("%s: %s\n", conflict.Severity, conflict.Message)
		}
		if err := result.Error(); err != nil {
			return err
		}
	}
	if result := ctx.Validator.ValidateCalendar(settings.Calendar); result.HasErrors() {
		return result.Error()
	}

	// An existing schedule gets replaced wholesale; confirm first.
	alreadyScheduled := false
	for _, t := range tasks {
		if t.IsScheduled() {
			alreadyScheduled = true
			break
		}
	}
	if alreadyScheduled && !c.Yes {
		var confirmed bool
		form := huh.NewConfirm().
			Title("A schedule already exists. Replace it?").
			Affirmative("Replace").
			Negative("Cancel").
			Value(&confirmed)
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Scheduling cancelled.")
			return nil
		}
	}

	from, err := parseStartInstant(c.From)
	if err != nil {
		return err
	}
	buffer := settings.DefaultBufferDays
	if c.Buffer != nil {
		buffer = *c.Buffer
	}

	scheduled, err := ctx.Scheduler.Schedule(tasks, settings.Calendar, schedule.Options{
		From:       from,
		BufferDays: buffer,
	})
	if err != nil {
		return err
	}

	if err := ctx.Store.SaveTasks(scheduled); err != nil {
		return fmt.Errorf("failed to save schedule: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Scheduled %s from %s:\n\n",
		pluralize(len(scheduled), "task", "tasks"), from.Format("2006-01-02 15:04"))
	for _, t := range scheduled {
		fmt.Printf("  %-12s %s → %s  %s\n", t.Code,
			t.ScheduledStart.Format("2006-01-02 15:04"),
			t.ScheduledEnd.Format("2006-01-02 15:04"),
			t.Label)
	}
	return nil
}
