package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/julianstephens/crewplan/internal/models"
)

type Store struct {
	Version   int                        `json:"version"`
	Settings  Settings                   `json:"settings"`
	Tasks     map[string]models.Task     `json:"tasks"`
	Estimates map[string]models.Estimate `json:"estimates"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:   1,
		Settings:  DefaultSettings(),
		Tasks:     make(map[string]models.Task),
		Estimates: make(map[string]models.Estimate),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'crewplan init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.store.Tasks == nil {
		s.store.Tasks = make(map[string]models.Task)
	}
	if s.store.Estimates == nil {
		s.store.Estimates = make(map[string]models.Estimate)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (Settings, error) {
	if s.store == nil {
		return Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) AddTask(task models.Task) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	if _, ok := s.store.Tasks[task.Code]; ok {
		return fmt.Errorf("task already exists: %s", task.Code)
	}
	s.store.Tasks[task.Code] = task
	return s.save()
}

func (s *JSONStore) GetTask(code string) (models.Task, error) {
	if s.store == nil {
		return models.Task{}, fmt.Errorf("storage not loaded")
	}
	task, ok := s.store.Tasks[code]
	if !ok {
		return models.Task{}, fmt.Errorf("task not found: %s", code)
	}
	return task, nil
}

func (s *JSONStore) GetAllTasks() ([]models.Task, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	tasks := make([]models.Task, 0, len(s.store.Tasks))
	for _, task := range s.store.Tasks {
		tasks = append(tasks, task)
	}
	sortTasks(tasks)
	return tasks, nil
}

func (s *JSONStore) UpdateTask(task models.Task) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	if _, ok := s.store.Tasks[task.Code]; !ok {
		return fmt.Errorf("task not found: %s", task.Code)
	}
	s.store.Tasks[task.Code] = task
	return s.save()
}

func (s *JSONStore) DeleteTask(code string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	if _, ok := s.store.Tasks[code]; !ok {
		return fmt.Errorf("task not found: %s", code)
	}
	delete(s.store.Tasks, code)
	return s.save()
}

func (s *JSONStore) SaveTasks(tasks []models.Task) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	for _, task := range tasks {
		s.store.Tasks[task.Code] = task
	}
	return s.save()
}

func (s *JSONStore) AddEstimate(est models.Estimate) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Estimates[est.ID] = est
	return s.save()
}

func (s *JSONStore) GetEstimate(id string) (models.Estimate, error) {
	if s.store == nil {
		return models.Estimate{}, fmt.Errorf("storage not loaded")
	}
	est, ok := s.store.Estimates[id]
	if !ok {
		return models.Estimate{}, fmt.Errorf("estimate not found: %s", id)
	}
	return est, nil
}

func (s *JSONStore) GetAllEstimates() ([]models.Estimate, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	estimates := make([]models.Estimate, 0, len(s.store.Estimates))
	for _, est := range s.store.Estimates {
		estimates = append(estimates, est)
	}
	sort.Slice(estimates, func(i, j int) bool {
		return estimates[i].CreatedAt.Before(estimates[j].CreatedAt)
	})
	return estimates, nil
}

// GetStorePath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines
//     without external synchronization.
//   - Running multiple crewplan processes against the same store path at
//     the same time is not supported and may lead to data loss.
func (s *JSONStore) GetStorePath() string {
	return s.path
}

// sortTasks orders tasks by creation time, then code, so listings are
// deterministic regardless of map iteration order.
func sortTasks(tasks []models.Task) {
	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		}
		return tasks[i].Code < tasks[j].Code
	})
}
