package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/crewplan/internal/cli"
	"github.com/julianstephens/crewplan/internal/schedule"
	"github.com/julianstephens/crewplan/internal/storage"
	"github.com/julianstephens/crewplan/internal/validation"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path." type:"path" default:"~/.config/crewplan/crewplan.db"`

	Init     cli.InitCmd     `cmd:"" help:"Initialize crewplan storage."`
	Schedule cli.ScheduleCmd `cmd:"" help:"Schedule all tasks against the working calendar."`
	Timeline cli.TimelineCmd `cmd:"" help:"Show the saved schedule as a timeline."`
	Sequence cli.SequenceCmd `cmd:"" help:"Order line items from a file into construction phases."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks on the store and task graph."`
	Task     struct {
		Add    cli.TaskAddCmd    `cmd:"" help:"Add a new task."`
		List   cli.TaskListCmd   `cmd:"" help:"List all tasks."`
		Delete cli.TaskDeleteCmd `cmd:"" help:"Delete a task."`
	} `cmd:"" help:"Manage tasks."`
	Estimate struct {
		Import cli.EstimateImportCmd `cmd:"" help:"Import line items as a new estimate."`
		Show   cli.EstimateShowCmd   `cmd:"" help:"Show an estimate, optionally phase-sequenced."`
		List   cli.EstimateListCmd   `cmd:"" help:"List all estimates."`
	} `cmd:"" help:"Manage estimates."`
	Calendar struct {
		Show     cli.CalendarShowCmd     `cmd:"" help:"Show working hours and holidays."`
		Import   cli.CalendarImportCmd   `cmd:"" help:"Import a YAML calendar file."`
		SetHours cli.CalendarSetHoursCmd `cmd:"" name:"set-hours" help:"Set working windows for a weekday."`
		Holiday  struct {
			Add cli.HolidayAddCmd `cmd:"" help:"Add holiday dates."`
		} `cmd:"" help:"Manage holidays."`
	} `cmd:"" help:"Manage the working calendar."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the store."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the store from a backup."`
	} `cmd:"" help:"Manage store backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("crewplan"),
		kong.Description("Construction job scheduling and estimate sequencing"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.3.1"},
	)

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store:     store,
		Scheduler: schedule.New(),
		Validator: validation.New(),
	}

	err := ctx.Run(appCtx)
	if closeErr := store.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
