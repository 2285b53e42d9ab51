package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/crewplan/internal/models"
)

func providers(t *testing.T) map[string]Provider {
	t.Helper()
	dir := t.TempDir()
	return map[string]Provider{
		"json":   NewJSONStore(filepath.Join(dir, "crewplan.json")),
		"sqlite": NewSQLiteStore(filepath.Join(dir, "crewplan.db")),
	}
}

func TestProvider_InitAndDefaults(t *testing.T) {
	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Init())
			defer store.Close()

			settings, err := store.GetSettings()
			require.NoError(t, err)

			assert.Len(t, settings.Calendar.Hours, 5)
			assert.Empty(t, settings.Calendar.Hours[time.Saturday])
			assert.Equal(t, "08:00", settings.Calendar.Hours[time.Monday][0].Start)
			assert.Zero(t, settings.DefaultBufferDays)
		})
	}
}

func TestProvider_TaskRoundTrip(t *testing.T) {
	start := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 6, 17, 0, 0, 0, time.UTC)

	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Init())
			defer store.Close()

			task := models.Task{
				Code:         "FRAME-01",
				Label:        "Frame first floor",
				DurationDays: 3.5,
				DependsOn:    []string{"FOUND-01"},
				Trade:        "framing",
				CreatedAt:    time.Now(),
			}
			require.NoError(t, store.AddTask(task))

			got, err := store.GetTask("FRAME-01")
			require.NoError(t, err)
			assert.Equal(t, task.Label, got.Label)
			assert.Equal(t, task.DependsOn, got.DependsOn)
			assert.InDelta(t, 3.5, got.DurationDays, 0.001)
			assert.Nil(t, got.ScheduledStart)

			got.ScheduledStart = &start
			got.ScheduledEnd = &end
			got.Status = models.StatusScheduled
			require.NoError(t, store.UpdateTask(got))

			updated, err := store.GetTask("FRAME-01")
			require.NoError(t, err)
			require.NotNil(t, updated.ScheduledStart)
			assert.True(t, updated.ScheduledStart.Equal(start))
			assert.Equal(t, models.StatusScheduled, updated.Status)

			require.NoError(t, store.DeleteTask("FRAME-01"))
			_, err = store.GetTask("FRAME-01")
			assert.Error(t, err)
		})
	}
}

func TestProvider_TaskListOrder(t *testing.T) {
	base := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)

	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Init())
			defer store.Close()

			for i, code := range []string{"C", "A", "B"} {
				require.NoError(t, store.AddTask(models.Task{
					Code:      code,
					CreatedAt: base.Add(time.Duration(i) * time.Minute),
				}))
			}

			tasks, err := store.GetAllTasks()
			require.NoError(t, err)
			require.Len(t, tasks, 3)
			assert.Equal(t, "C", tasks[0].Code)
			assert.Equal(t, "A", tasks[1].Code)
			assert.Equal(t, "B", tasks[2].Code)
		})
	}
}

func TestProvider_SaveTasksUpserts(t *testing.T) {
	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Init())
			defer store.Close()

			require.NoError(t, store.AddTask(models.Task{Code: "A", Label: "before", CreatedAt: time.Now()}))

			require.NoError(t, store.SaveTasks([]models.Task{
				{Code: "A", Label: "after", CreatedAt: time.Now()},
				{Code: "B", Label: "new", CreatedAt: time.Now()},
			}))

			a, err := store.GetTask("A")
			require.NoError(t, err)
			assert.Equal(t, "after", a.Label)

			tasks, err := store.GetAllTasks()
			require.NoError(t, err)
			assert.Len(t, tasks, 2)
		})
	}
}

func TestProvider_EstimateRoundTrip(t *testing.T) {
	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Init())
			defer store.Close()

			est := models.Estimate{
				ID:     "est-1",
				Name:   "Kitchen remodel",
				Client: "Alvarez",
				Items: []models.LineItem{
					{ID: "li-1", Description: "Install kitchen cabinets", Quantity: 12, Unit: "lf", Rate: 210},
					{ID: "li-2", Description: "Paint interior walls", Quantity: 600, Unit: "sf", Rate: 2.25},
				},
				CreatedAt: time.Now(),
			}
			require.NoError(t, store.AddEstimate(est))

			got, err := store.GetEstimate("est-1")
			require.NoError(t, err)
			assert.Equal(t, est.Name, got.Name)
			require.Len(t, got.Items, 2)
			assert.InDelta(t, est.Subtotal(), got.Subtotal(), 0.001)

			all, err := store.GetAllEstimates()
			require.NoError(t, err)
			assert.Len(t, all, 1)
		})
	}
}

func TestProvider_SettingsRoundTrip(t *testing.T) {
	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Init())
			defer store.Close()

			settings, err := store.GetSettings()
			require.NoError(t, err)

			settings.Calendar.Holidays = []string{"2026-12-25"}
			settings.DefaultBufferDays = 0.5
			require.NoError(t, store.SaveSettings(settings))

			got, err := store.GetSettings()
			require.NoError(t, err)
			assert.Equal(t, []string{"2026-12-25"}, got.Calendar.Holidays)
			assert.InDelta(t, 0.5, got.DefaultBufferDays, 0.001)
		})
	}
}

func TestJSONStore_LoadRequiresInit(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	err := store.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
}

func TestJSONStore_AddTaskRejectsDuplicates(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "crewplan.json"))
	require.NoError(t, store.Init())

	require.NoError(t, store.AddTask(models.Task{Code: "A", CreatedAt: time.Now()}))
	err := store.AddTask(models.Task{Code: "A", CreatedAt: time.Now()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestJSONStore_PersistsAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crewplan.json")

	store := NewJSONStore(path)
	require.NoError(t, store.Init())
	require.NoError(t, store.AddTask(models.Task{Code: "A", Label: "persisted", CreatedAt: time.Now()}))

	reloaded := NewJSONStore(path)
	require.NoError(t, reloaded.Load())
	task, err := reloaded.GetTask("A")
	require.NoError(t, err)
	assert.Equal(t, "persisted", task.Label)
}
