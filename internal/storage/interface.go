package storage

import "github.com/julianstephens/crewplan/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (Settings, error)
	SaveSettings(Settings) error

	// Tasks
	AddTask(models.Task) error
	GetTask(code string) (models.Task, error)
	GetAllTasks() ([]models.Task, error)
	UpdateTask(models.Task) error
	DeleteTask(code string) error
	// SaveTasks replaces the stored record for every task in the slice.
	SaveTasks([]models.Task) error

	// Estimates
	AddEstimate(models.Estimate) error
	GetEstimate(id string) (models.Estimate, error)
	GetAllEstimates() ([]models.Estimate, error)

	// Utils
	GetStorePath() string
}
