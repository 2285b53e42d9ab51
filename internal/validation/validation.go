package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/crewplan/internal/models"
)

type ConflictType string

const (
	ConflictMissingCode       ConflictType = "missing_code"
	ConflictDuplicateCode     ConflictType = "duplicate_code"
	ConflictNegativeDuration  ConflictType = "negative_duration"
	ConflictSelfDependency    ConflictType = "self_dependency"
	ConflictUnknownDependency ConflictType = "unknown_dependency"
	ConflictInvalidWindow     ConflictType = "invalid_window"
	ConflictOverlappingWindow ConflictType = "overlapping_window"
	ConflictInvalidHoliday    ConflictType = "invalid_holiday"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

type Conflict struct {
	Type     ConflictType
	Severity Severity
	Code     string
	Message  string
}

type Result struct {
	Conflicts []Conflict
}

func (r Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// HasErrors reports whether any conflict is blocking. Warnings (such as
// dependency codes outside the set, which the scheduler treats as
// already satisfied) do not block.
func (r Result) HasErrors() bool {
	for _, c := range r.Conflicts {
		if c.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Error summarizes the blocking conflicts, or returns nil.
func (r Result) Error() error {
	if !r.HasErrors() {
		return nil
	}
	var msgs []string
	for _, c := range r.Conflicts {
		if c.Severity == SeverityError {
			msgs = append(msgs, c.Message)
		}
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateTasks checks a task set before it is handed to the scheduler:
// codes present and unique, durations non-negative, no self-references.
// Dependencies on codes outside the set are flagged as warnings only.
func (v *Validator) ValidateTasks(tasks []models.Task) Result {
	var result Result

	codes := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		code := strings.TrimSpace(t.Code)
		if code == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:     ConflictMissingCode,
				Severity: SeverityError,
				Message:  fmt.Sprintf("task %q has no code", t.Label),
			})
			continue
		}
		if codes[code] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:     ConflictDuplicateCode,
				Severity: SeverityError,
				Code:     code,
				Message:  fmt.Sprintf("duplicate task code: %s", code),
			})
		}
		codes[code] = true
	}

	for _, t := range tasks {
		if t.DurationDays < 0 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:     ConflictNegativeDuration,
				Severity: SeverityError,
				Code:     t.Code,
				Message:  fmt.Sprintf("task %s has a negative duration", t.Code),
			})
		}
		for _, dep := range t.DependsOn {
			if dep == t.Code {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:     ConflictSelfDependency,
					Severity: SeverityError,
					Code:     t.Code,
					Message:  fmt.Sprintf("task %s depends on itself", t.Code),
				})
				continue
			}
			if !codes[dep] {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:     ConflictUnknownDependency,
					Severity: SeverityWarning,
					Code:     t.Code,
					Message:  fmt.Sprintf("task %s depends on unknown code %s (treated as satisfied)", t.Code, dep),
				})
			}
		}
	}

	return result
}

// ValidateCalendar checks window formats and holiday dates, and rejects
// overlapping windows on the same weekday. The scheduling math assumes
// chronological non-overlapping windows and would silently double-count
// capacity otherwise, so malformed calendars are refused here at the
// boundary.
func (v *Validator) ValidateCalendar(cal models.Calendar) Result {
	var result Result

	for wd, windows := range cal.Hours {
		type span struct {
			start, end int
		}
		var spans []span
		for _, win := range windows {
			start, err := models.ParseClock(win.Start)
			if err != nil {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:     ConflictInvalidWindow,
					Severity: SeverityError,
					Message:  fmt.Sprintf("%s: %v", wd, err),
				})
				continue
			}
			end, err := models.ParseClock(win.End)
			if err != nil {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:     ConflictInvalidWindow,
					Severity: SeverityError,
					Message:  fmt.Sprintf("%s: %v", wd, err),
				})
				continue
			}
			if end <= start {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:     ConflictInvalidWindow,
					Severity: SeverityError,
					Message:  fmt.Sprintf("%s: window %s-%s ends before it starts", wd, win.Start, win.End),
				})
				continue
			}
			spans = append(spans, span{start: start, end: end})
		}

		for i := 0; i < len(spans); i++ {
			for j := i + 1; j < len(spans); j++ {
				if spans[i].start < spans[j].end && spans[j].start < spans[i].end {
					result.Conflicts = append(result.Conflicts, Conflict{
						Type:     ConflictOverlappingWindow,
						Severity: SeverityError,
						Message: fmt.Sprintf("%s: windows %s-%s and %s-%s overlap", wd,
							models.FormatClock(spans[i].start), models.FormatClock(spans[i].end),
							models.FormatClock(spans[j].start), models.FormatClock(spans[j].end)),
					})
				}
			}
		}
	}

	for _, day := range cal.Holidays {
		if _, err := time.Parse("2006-01-02", day); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:     ConflictInvalidHoliday,
				Severity: SeverityError,
				Message:  fmt.Sprintf("invalid holiday date %q (expected YYYY-MM-DD)", day),
			})
		}
	}

	return result
}
