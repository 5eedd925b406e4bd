package storage

import (
	"errors"
	"fmt"

	"github.com/julianstephens/ot/internal/models"
)

var (
	// ErrNotInitialized is returned when an operation requires the state
	// document before it exists or has been loaded.
	ErrNotInitialized = errors.New("storage not initialized")
	// ErrAlreadyInitialized is returned when init runs without force while a
	// state file already exists.
	ErrAlreadyInitialized = errors.New("storage already initialized")
	// ErrDayUnset is returned when no commitment exists at the target date.
	ErrDayUnset = errors.New("no commitment set for date")
	// ErrDayCollision is returned when adding over an existing commitment
	// without force.
	ErrDayCollision = errors.New("commitment already set for date")
	// ErrDayDone is returned when completing a day already marked done.
	ErrDayDone = errors.New("commitment already marked as done")
)

// StrictModeViolationError reports which strict-mode rule blocked an action.
type StrictModeViolationError struct {
	Rule models.StrictModeRule
}

func (e *StrictModeViolationError) Error() string {
	return fmt.Sprintf("strict mode violation: %s", e.Rule)
}
