package validation

import (
	"testing"
	"time"

	"github.com/julianstephens/crewplan/internal/models"
)

func hasConflictType(result Result, ct ConflictType) bool {
	for _, c := range result.Conflicts {
		if c.Type == ct {
			return true
		}
	}
	return false
}

func TestValidateTasks_DuplicateCodes(t *testing.T) {
	validator := New()

	tasks := []models.Task{
		{Code: "A", Label: "Task A", DurationDays: 1},
		{Code: "B", Label: "Task B", DurationDays: 1},
		{Code: "A", Label: "Task A again", DurationDays: 1}, // Duplicate
	}

	result := validator.ValidateTasks(tasks)

	if !result.HasErrors() {
		t.Error("Expected to detect duplicate task codes")
	}
	if !hasConflictType(result, ConflictDuplicateCode) {
		t.Error("Expected ConflictDuplicateCode conflict type")
	}
}

func TestValidateTasks_MissingCode(t *testing.T) {
	validator := New()

	result := validator.ValidateTasks([]models.Task{{Label: "No code", DurationDays: 1}})

	if !hasConflictType(result, ConflictMissingCode) {
		t.Error("Expected ConflictMissingCode conflict type")
	}
	if !result.HasErrors() {
		t.Error("Expected missing code to be blocking")
	}
}

func TestValidateTasks_NegativeDuration(t *testing.T) {
	validator := New()

	result := validator.ValidateTasks([]models.Task{{Code: "A", DurationDays: -1}})

	if !hasConflictType(result, ConflictNegativeDuration) {
		t.Error("Expected ConflictNegativeDuration conflict type")
	}
}

func TestValidateTasks_SelfDependency(t *testing.T) {
	validator := New()

	result := validator.ValidateTasks([]models.Task{
		{Code: "A", DurationDays: 1, DependsOn: []string{"A"}},
	})

	if !hasConflictType(result, ConflictSelfDependency) {
		t.Error("Expected ConflictSelfDependency conflict type")
	}
}

func TestValidateTasks_UnknownDependencyIsWarningOnly(t *testing.T) {
	validator := New()

	result := validator.ValidateTasks([]models.Task{
		{Code: "A", DurationDays: 1, DependsOn: []string{"NOPE"}},
	})

	if !result.HasConflicts() {
		t.Fatal("Expected an unknown-dependency conflict")
	}
	if !hasConflictType(result, ConflictUnknownDependency) {
		t.Error("Expected ConflictUnknownDependency conflict type")
	}
	if result.HasErrors() {
		t.Error("Unknown dependencies are treated as satisfied and must not block")
	}
	if err := result.Error(); err != nil {
		t.Errorf("Expected nil error for warnings only, got %v", err)
	}
}

func TestValidateTasks_CleanSet(t *testing.T) {
	validator := New()

	result := validator.ValidateTasks([]models.Task{
		{Code: "A", DurationDays: 1},
		{Code: "B", DurationDays: 0.5, DependsOn: []string{"A"}},
	})

	if result.HasConflicts() {
		t.Errorf("Expected no conflicts, got %v", result.Conflicts)
	}
}

func TestValidateCalendar_OverlappingWindowsRejected(t *testing.T) {
	validator := New()

	cal := models.Calendar{
		Hours: models.WorkingHours{
			time.Monday: {
				{Start: "08:00", End: "12:00"},
				{Start: "11:00", End: "15:00"}, // Overlaps the first
			},
		},
	}

	result := validator.ValidateCalendar(cal)

	if !result.HasErrors() {
		t.Error("Expected overlapping windows to be rejected")
	}
	if !hasConflictType(result, ConflictOverlappingWindow) {
		t.Error("Expected ConflictOverlappingWindow conflict type")
	}
}

func TestValidateCalendar_AdjacentWindowsAllowed(t *testing.T) {
	validator := New()

	cal := models.Calendar{
		Hours: models.WorkingHours{
			time.Monday: {
				{Start: "08:00", End: "12:00"},
				{Start: "12:00", End: "16:00"}, // Touching is not overlapping
			},
		},
	}

	if result := validator.ValidateCalendar(cal); result.HasConflicts() {
		t.Errorf("Expected no conflicts for adjacent windows, got %v", result.Conflicts)
	}
}

func TestValidateCalendar_InvalidTimeFormat(t *testing.T) {
	validator := New()

	cal := models.Calendar{
		Hours: models.WorkingHours{
			time.Monday: {{Start: "25:00", End: "26:00"}},
		},
	}

	result := validator.ValidateCalendar(cal)

	if !hasConflictType(result, ConflictInvalidWindow) {
		t.Error("Expected ConflictInvalidWindow conflict type")
	}
}

func TestValidateCalendar_InvertedWindow(t *testing.T) {
	validator := New()

	cal := models.Calendar{
		Hours: models.WorkingHours{
			time.Monday: {{Start: "14:00", End: "09:00"}},
		},
	}

	if result := validator.ValidateCalendar(cal); !hasConflictType(result, ConflictInvalidWindow) {
		t.Error("Expected ConflictInvalidWindow conflict type")
	}
}

func TestValidateCalendar_BadHolidayDate(t *testing.T) {
	validator := New()

	cal := models.DefaultCalendar()
	cal.Holidays = []string{"12/25/2026"}

	if result := validator.ValidateCalendar(cal); !hasConflictType(result, ConflictInvalidHoliday) {
		t.Error("Expected ConflictInvalidHoliday conflict type")
	}
}

func TestValidateCalendar_DefaultIsClean(t *testing.T) {
	validator := New()

	if result := validator.ValidateCalendar(models.DefaultCalendar()); result.HasConflicts() {
		t.Errorf("Expected default calendar to validate, got %v", result.Conflicts)
	}
}
