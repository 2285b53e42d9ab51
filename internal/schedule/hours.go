package schedule

import (
	"math"
	"time"

	"github.com/julianstephens/crewplan/internal/models"
)

// DefaultLookaheadDays bounds the day-by-day walk for a working window.
// A calendar with no reachable window inside this horizon is treated as
// misconfigured.
const DefaultLookaheadDays = 365

// minutesPerDay is the working-time budget of one scheduling day.
const minutesPerDay = 24 * 60

// windowBounds places a window on a concrete date.
func windowBounds(day time.Time, win models.Window) (time.Time, time.Time, error) {
	startMin, err := models.ParseClock(win.Start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endMin, err := models.ParseClock(win.End)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	y, m, d := day.Date()
	loc := day.Location()
	ws := time.Date(y, m, d, startMin/60, startMin%60, 0, 0, loc)
	we := time.Date(y, m, d, endMin/60, endMin%60, 0, 0, loc)
	return ws, we, nil
}

// NextWorkingStart returns the earliest instant at or after from that
// falls inside a working window. A probe already strictly inside a
// window is returned unchanged. Holidays are skipped wholly. If no
// window qualifies within lookaheadDays calendar days (<=0 selects
// DefaultLookaheadDays), a *WindowError is returned.
func NextWorkingStart(from time.Time, hours models.WorkingHours, holidays map[string]bool, lookaheadDays int) (time.Time, error) {
	if lookaheadDays <= 0 {
		lookaheadDays = DefaultLookaheadDays
	}

	probe := from
	for day := 0; day <= lookaheadDays; day++ {
		if !holidays[probe.Format("2006-01-02")] {
			for _, win := range hours[probe.Weekday()] {
				ws, we, err := windowBounds(probe, win)
				if err != nil {
					return time.Time{}, err
				}
				if probe.After(ws) && probe.Before(we) {
					return probe, nil
				}
				if !ws.Before(probe) {
					return ws, nil
				}
			}
		}
		// Nothing usable today: resume at 00:01 tomorrow.
		y, m, d := probe.Date()
		probe = time.Date(y, m, d+1, 0, 1, 0, 0, probe.Location())
	}

	return time.Time{}, &WindowError{From: from, LookaheadDays: lookaheadDays}
}

// AddBusinessDays advances start by days*24h of working time, consuming
// only minutes that fall inside working windows and skipping holidays
// entirely. Fractional days are converted to a whole-minute budget up
// front, so sub-minute precision is not preserved. Zero or negative
// days is a no-op.
func AddBusinessDays(start time.Time, days float64, hours models.WorkingHours, holidays map[string]bool) (time.Time, error) {
	if days <= 0 {
		return start, nil
	}

	remaining := int(math.Round(days * minutesPerDay))
	if remaining == 0 {
		return start, nil
	}

	cursor := start
	idleDays := 0
	for {
		consumed := false
		if !holidays[cursor.Format("2006-01-02")] {
			for _, win := range hours[cursor.Weekday()] {
				ws, we, err := windowBounds(cursor, win)
				if err != nil {
					return time.Time{}, err
				}
				usable := ws
				if cursor.After(ws) {
					usable = cursor
				}
				if !usable.Before(we) {
					continue
				}
				slice := int(we.Sub(usable) / time.Minute)
				if slice >= remaining {
					return usable.Add(time.Duration(remaining) * time.Minute), nil
				}
				remaining -= slice
				cursor = we
				consumed = true
			}
		}

		if consumed {
			idleDays = 0
		} else {
			idleDays++
			if idleDays > DefaultLookaheadDays {
				return time.Time{}, &WindowError{From: start, LookaheadDays: DefaultLookaheadDays}
			}
		}

		y, m, d := cursor.Date()
		cursor = time.Date(y, m, d+1, 0, 0, 0, 0, cursor.Location())
	}
}
