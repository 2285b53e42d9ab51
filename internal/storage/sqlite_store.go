package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/julianstephens/crewplan/internal/models"
	_ "modernc.org/sqlite"
)

// schemaVersion is written to PRAGMA user_version on init and checked
// on load.
const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS settings (
	id   INTEGER PRIMARY KEY CHECK (id = 1),
	data TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS tasks (
	code TEXT PRIMARY KEY,
	data TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS estimates (
	id   TEXT PRIMARY KEY,
	data TEXT NOT NULL
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("failed to set schema version: %w", err)
	}

	// Initialize default settings if not present
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'crewplan init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version > schemaVersion {
		return fmt.Errorf("database schema version %d is newer than this build supports (%d)", version, schemaVersion)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// GetDB exposes the underlying connection for diagnostics.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

func (s *SQLiteStore) GetSettings() (Settings, error) {
	if s.db == nil {
		return Settings{}, fmt.Errorf("storage not loaded")
	}
	var data string
	if err := s.db.QueryRow("SELECT data FROM settings WHERE id = 1").Scan(&data); err != nil {
		return Settings{}, fmt.Errorf("settings not found: %w", err)
	}
	var settings Settings
	if err := json.Unmarshal([]byte(data), &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings Settings) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	_, err = s.db.Exec(
		"INSERT INTO settings (id, data) VALUES (1, ?) ON CONFLICT(id) DO UPDATE SET data = excluded.data",
		string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func (s *SQLiteStore) AddTask(task models.Task) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	data, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to serialize task: %w", err)
	}
	_, err = s.db.Exec("INSERT INTO tasks (code, data) VALUES (?, ?)", task.Code, string(data))
	if err != nil {
		return fmt.Errorf("failed to add task %s: %w", task.Code, err)
	}
	return nil
}

func (s *SQLiteStore) GetTask(code string) (models.Task, error) {
	if s.db == nil {
		return models.Task{}, fmt.Errorf("storage not loaded")
	}
	var data string
	err := s.db.QueryRow("SELECT data FROM tasks WHERE code = ?", code).Scan(&data)
	if err == sql.ErrNoRows {
		return models.Task{}, fmt.Errorf("task not found: %s", code)
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to get task %s: %w", code, err)
	}
	var task models.Task
	if err := json.Unmarshal([]byte(data), &task); err != nil {
		return models.Task{}, fmt.Errorf("failed to parse task %s: %w", code, err)
	}
	return task, nil
}

func (s *SQLiteStore) GetAllTasks() ([]models.Task, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	rows, err := s.db.Query("SELECT data FROM tasks")
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		var task models.Task
		if err := json.Unmarshal([]byte(data), &task); err != nil {
			return nil, fmt.Errorf("failed to parse task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}
	sortTasks(tasks)
	return tasks, nil
}

func (s *SQLiteStore) UpdateTask(task models.Task) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	data, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to serialize task: %w", err)
	}
	res, err := s.db.Exec("UPDATE tasks SET data = ? WHERE code = ?", string(data), task.Code)
	if err != nil {
		return fmt.Errorf("failed to update task %s: %w", task.Code, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update task %s: %w", task.Code, err)
	}
	if n == 0 {
		return fmt.Errorf("task not found: %s", task.Code)
	}
	return nil
}

func (s *SQLiteStore) DeleteTask(code string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	res, err := s.db.Exec("DELETE FROM tasks WHERE code = ?", code)
	if err != nil {
		return fmt.Errorf("failed to delete task %s: %w", code, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete task %s: %w", code, err)
	}
	if n == 0 {
		return fmt.Errorf("task not found: %s", code)
	}
	return nil
}

func (s *SQLiteStore) SaveTasks(tasks []models.Task) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	for _, task := range tasks {
		data, err := json.Marshal(task)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to serialize task %s: %w", task.Code, err)
		}
		_, err = tx.Exec(
			"INSERT INTO tasks (code, data) VALUES (?, ?) ON CONFLICT(code) DO UPDATE SET data = excluded.data",
			task.Code, string(data),
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to save task %s: %w", task.Code, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tasks: %w", err)
	}
	return nil
}

func (s *SQLiteStore) AddEstimate(est models.Estimate) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	data, err := json.Marshal(est)
	if err != nil {
		return fmt.Errorf("failed to serialize estimate: %w", err)
	}
	_, err = s.db.Exec(
		"INSERT INTO estimates (id, data) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET data = excluded.data",
		est.ID, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to add estimate %s: %w", est.ID, err)
	}
	return nil
}

func (s *SQLiteStore) GetEstimate(id string) (models.Estimate, error) {
	if s.db == nil {
		return models.Estimate{}, fmt.Errorf("storage not loaded")
	}
	var data string
	err := s.db.QueryRow("SELECT data FROM estimates WHERE id = ?", id).Scan(&data)
	if err == sql.ErrNoRows {
		return models.Estimate{}, fmt.Errorf("estimate not found: %s", id)
	}
	if err != nil {
		return models.Estimate{}, fmt.Errorf("failed to get estimate %s: %w", id, err)
	}
	var est models.Estimate
	if err := json.Unmarshal([]byte(data), &est); err != nil {
		return models.Estimate{}, fmt.Errorf("failed to parse estimate %s: %w", id, err)
	}
	return est, nil
}

func (s *SQLiteStore) GetAllEstimates() ([]models.Estimate, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	rows, err := s.db.Query("SELECT data FROM estimates")
	if err != nil {
		return nil, fmt.Errorf("failed to query estimates: %w", err)
	}
	defer rows.Close()

	var estimates []models.Estimate
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan estimate row: %w", err)
		}
		var est models.Estimate
		if err := json.Unmarshal([]byte(data), &est); err != nil {
			return nil, fmt.Errorf("failed to parse estimate: %w", err)
		}
		estimates = append(estimates, est)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate estimates: %w", err)
	}
	sort.Slice(estimates, func(i, j int) bool {
		return estimates[i].CreatedAt.Before(estimates[j].CreatedAt)
	})
	return estimates, nil
}

func (s *SQLiteStore) GetStorePath() string {
	return s.path
}
