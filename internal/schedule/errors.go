package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrDependencyCycle = errors.New("circular dependency in tasks")
	ErrNoWorkingWindow = errors.New("no available working hours")
)

// CycleError reports a dependency cycle. Codes holds every task left
// unordered by the sort: the cycle members plus anything blocked behind
// them, not necessarily the minimal cycle.
type CycleError struct {
	Codes []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDependencyCycle.Error(), strings.Join(e.Codes, ", "))
}

func (e *CycleError) Unwrap() error { return ErrDependencyCycle }

// WindowError reports that no working window could be found within the
// lookahead horizon. It signals a calendar configuration problem and is
// not retried.
type WindowError struct {
	From          time.Time
	LookaheadDays int
}

func (e *WindowError) Error() string {
	return fmt.Sprintf("%s within %d days of %s", ErrNoWorkingWindow.Error(), e.LookaheadDays, e.From.Format(time.RFC3339))
}

func (e *WindowError) Unwrap() error { return ErrNoWorkingWindow }
