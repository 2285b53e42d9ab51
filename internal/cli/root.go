package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/crewplan/internal/schedule"
	"github.com/julianstephens/crewplan/internal/storage"
	"github.com/julianstephens/crewplan/internal/validation"
)

type Context struct {
	Store     storage.Provider
	Scheduler *schedule.Scheduler
	Validator *validation.Validator
}

var dayMap = map[string]time.Weekday{
	"sun":       time.Sunday,
	"sunday":    time.Sunday,
	"mon":       time.Monday,
	"monday":    time.Monday,
	"tue":       time.Tuesday,
	"tuesday":   time.Tuesday,
	"wed":       time.Wednesday,
	"wednesday": time.Wednesday,
	"thu":       time.Thursday,
	"thursday":  time.Thursday,
	"fri":       time.Friday,
	"friday":    time.Friday,
	"sat":       time.Saturday,
	"saturday":  time.Saturday,
}

// parseWeekday accepts day names ("mon", "monday") or numbers
// (0=Sunday, 6=Saturday).
func parseWeekday(s string) (time.Weekday, error) {
	key := strings.TrimSpace(strings.ToLower(s))
	if wd, ok := dayMap[key]; ok {
		return wd, nil
	}
	num, err := strconv.Atoi(key)
	if err == nil && num >= 0 && num <= 6 {
		return time.Weekday(num), nil
	}
	return 0, fmt.Errorf("invalid weekday: %s", s)
}

// parseStartInstant accepts "now", a date (YYYY-MM-DD, interpreted as
// local midnight), or a full RFC3339 timestamp.
func parseStartInstant(s string) (time.Time, error) {
	if s == "" || s == "now" {
		return time.Now(), nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start instant %q, use YYYY-MM-DD or RFC3339: %w", s, err)
	}
	return t, nil
}

// parseCodes splits a comma-separated code list, dropping empties.
func parseCodes(s string) []string {
	if s == "" {
		return nil
	}
	var codes []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			codes = append(codes, part)
		}
	}
	return codes
}
