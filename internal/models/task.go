package models

import (
	"fmt"
	"strings"
	"time"
)

// StatusScheduled is assigned to tasks that come back from the scheduler
// without a status of their own.
const StatusScheduled = "scheduled"

// Task is a single unit of construction work inside a job's task set.
// Dependencies reference other tasks in the same set by code; codes that
// do not resolve within the set impose no wait.
type Task struct {
	Code           string     `json:"code"`
	Label          string     `json:"label"`
	DurationDays   float64    `json:"duration_days"`
	DependsOn      []string   `json:"depends_on,omitempty"`
	Trade          string     `json:"trade,omitempty"`
	ScheduledStart *time.Time `json:"scheduled_start,omitempty"`
	ScheduledEnd   *time.Time `json:"scheduled_end,omitempty"`
	Status         string     `json:"status,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (t *Task) Validate() error {
	if strings.TrimSpace(t.Code) == "" {
		return fmt.Errorf("task code cannot be empty")
	}
	if t.DurationDays < 0 {
		return fmt.Errorf("task %q: duration cannot be negative", t.Code)
	}
	for _, dep := range t.DependsOn {
		if dep == t.Code {
			return fmt.Errorf("task %q cannot depend on itself", t.Code)
		}
	}
	return nil
}

// IsScheduled reports whether both scheduling timestamps have been assigned.
func (t *Task) IsScheduled() bool {
	return t.ScheduledStart != nil && t.ScheduledEnd != nil
}
