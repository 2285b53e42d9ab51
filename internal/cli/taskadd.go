package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/crewplan/internal/models"
)

type TaskAddCmd struct {
	Code     string  `arg:"" help:"Unique task code (e.g. FRAME-01)."`
	Label    string  `arg:"" help:"Display name."`
	Duration float64 `short:"d" help:"Duration in working days (may be fractional)." required:""`
	After    string  `short:"a" help:"Comma-separated codes this task depends on."`
	Trade    string  `short:"t" help:"Trade tag for display grouping (e.g. framing, electrical)."`
}

func (c *TaskAddCmd) Validate() error {
	if c.Duration < 0 {
		return fmt.Errorf("duration cannot be negative")
	}
	return nil
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	task := models.Task{
		Code:         c.Code,
		Label:        c.Label,
		DurationDays: c.Duration,
		DependsOn:    parseCodes(c.After),
		Trade:        c.Trade,
		CreatedAt:    time.Now(),
	}
	if err := task.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddTask(task); err != nil {
		return err
	}

	fmt.Printf("Added task %s: %s (%.2g days)\n", task.Code, task.Label, task.DurationDays)
	if len(task.DependsOn) > 0 {
		fmt.Printf("  depends on: %v\n", task.DependsOn)
	}
	return nil
}
