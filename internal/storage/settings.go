package storage

import "github.com/julianstephens/crewplan/internal/models"

type Settings struct {
	Calendar          models.Calendar `json:"calendar"`
	DefaultBufferDays float64         `json:"default_buffer_days"`
}

// DefaultSettings returns the settings a freshly initialized store
// starts with.
func DefaultSettings() Settings {
	return Settings{
		Calendar:          models.DefaultCalendar(),
		DefaultBufferDays: 0,
	}
}
