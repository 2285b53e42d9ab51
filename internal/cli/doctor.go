package cli

import (
	"fmt"

	"github.com/julianstephens/crewplan/internal/backup"
	"github.com/julianstephens/crewplan/internal/schedule"
	"github.com/julianstephens/crewplan/internal/storage"
	"github.com/julianstephens/crewplan/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := false

	// Check 1: store reachable
	if err := checkStoreReachable(ctx); err != nil {
		fmt.Printf("❌ Store reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Store reachable: OK\n")
		storeReachable = true
	}

	if storeReachable {
		// Check 2: calendar usable
		if err := checkCalendar(ctx); err != nil {
			fmt.Printf("❌ Calendar: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Calendar: OK\n")
		}

		// Check 3: task graph acyclic
		if err := checkTaskGraph(ctx); err != nil {
			fmt.Printf("❌ Task graph: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Task graph: OK\n")
		}
	} else {
		fmt.Printf("⊘ Calendar: SKIPPED (store not reachable)\n")
		fmt.Printf("⊘ Task graph: SKIPPED (store not reachable)\n")
	}

	// Check 4: backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		if err := db.Ping(); err != nil {
			return fmt.Errorf("database ping failed: %w", err)
		}
	}
	return nil
}

func checkCalendar(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if result := ctx.Validator.ValidateCalendar(settings.Calendar); result.HasErrors() {
		return result.Error()
	}

	// A calendar can be well-formed yet unusable; probe for a window.
	var hasWindow bool
	for _, windows := range settings.Calendar.Hours {
		if len(windows) > 0 {
			hasWindow = true
			break
		}
	}
	if !hasWindow {
		return fmt.Errorf("no working windows configured; scheduling would fail")
	}
	return nil
}

func checkTaskGraph(ctx *Context) error {
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}
	if result := validation.New().ValidateTasks(tasks); result.HasErrors() {
		return result.Error()
	}
	if _, err := schedule.SortTasks(tasks); err != nil {
		return err
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetStorePath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found, consider running 'crewplan backup create'")
	}
	return nil
}
