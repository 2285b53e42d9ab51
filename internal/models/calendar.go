package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Window is a contiguous working interval on a weekday, in "HH:MM"
// wall-clock times. End is exclusive.
type Window struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// WorkingHours maps a weekday (0=Sunday..6=Saturday) to its working
// windows in chronological order. A weekday with no entry has no
// working time.
type WorkingHours map[time.Weekday][]Window

// Calendar bundles the working-hours definition with the holiday list.
// Holidays are "YYYY-MM-DD" dates on which no window applies.
type Calendar struct {
	Hours    WorkingHours `json:"hours" yaml:"hours"`
	Holidays []string     `json:"holidays,omitempty" yaml:"holidays,omitempty"`
}

// DefaultCalendar is the out-of-the-box crew calendar: Monday through
// Friday, 08:00-12:00 and 13:00-17:00, no holidays.
func DefaultCalendar() Calendar {
	hours := WorkingHours{}
	for wd := time.Monday; wd <= time.Friday; wd++ {
		hours[wd] = []Window{
			{Start: "08:00", End: "12:00"},
			{Start: "13:00", End: "17:00"},
		}
	}
	return Calendar{Hours: hours}
}

// HolidaySet returns the holidays as a lookup set keyed by "YYYY-MM-DD".
func (c Calendar) HolidaySet() map[string]bool {
	set := make(map[string]bool, len(c.Holidays))
	for _, day := range c.Holidays {
		set[day] = true
	}
	return set
}

// ParseClock converts an "HH:MM" string to minutes from midnight.
func ParseClock(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time format: %q", clock)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", clock, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", clock, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time out of range: %q", clock)
	}
	return hour*60 + minute, nil
}

// FormatClock converts minutes from midnight back to "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func (w Window) Validate() error {
	start, err := ParseClock(w.Start)
	if err != nil {
		return err
	}
	end, err := ParseClock(w.End)
	if err != nil {
		return err
	}
	if end <= start {
		return fmt.Errorf("window %s-%s ends before it starts", w.Start, w.End)
	}
	return nil
}

func (c Calendar) Validate() error {
	for wd, windows := range c.Hours {
		if wd < time.Sunday || wd > time.Saturday {
			return fmt.Errorf("invalid weekday: %d", wd)
		}
		for _, win := range windows {
			if err := win.Validate(); err != nil {
				return fmt.Errorf("%s: %w", wd, err)
			}
		}
	}
	for _, day := range c.Holidays {
		if _, err := time.Parse("2006-01-02", day); err != nil {
			return fmt.Errorf("invalid holiday date %q (expected YYYY-MM-DD): %w", day, err)
		}
	}
	return nil
}
