package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/ot/internal/storage"
)

type DoneCmd struct {
	Date string `short:"d" help:"A specific date in YYYY-MM-DD format to mark as done."`
}

func (c *DoneCmd) Run(ctx *Context) error {
	date, day, err := ctx.Store.CompleteDay(c.Date, false)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotInitialized):
			PrintError("Storage is not initialized. Please run 'ot init' first.")
			return &ExitError{Code: 1}
		case errors.Is(err, storage.ErrDayUnset):
			fmt.Printf("No commitment set for %s\n", describeDate(c.Date))
			return nil
		case errors.Is(err, storage.ErrDayDone):
			fmt.Printf("Commitment for %s is already marked as done.\n", describeDate(c.Date))
			return nil
		default:
			PrintError(fmt.Sprintf("Error marking commitment as done: %v", err))
			return &ExitError{Code: 1}
		}
	}

	printSuccess(fmt.Sprintf("Commitment for %s completed: %s", date, day.Title))
	return nil
}

type SkipCmd struct {
	Date string `short:"d" help:"A specific date in YYYY-MM-DD format to mark as skipped."`
}

func (c *SkipCmd) Run(ctx *Context) error {
	date, day, err := ctx.Store.CompleteDay(c.Date, true)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotInitialized):
			PrintError("Storage is not initialized. Please run 'ot init' first.")
			return &ExitError{Code: 1}
		case errors.Is(err, storage.ErrDayUnset):
			fmt.Printf("No commitment set for %s\n", describeDate(c.Date))
			return nil
		case errors.Is(err, storage.ErrDayDone):
			fmt.Printf("Commitment for %s is already marked as done.\n", describeDate(c.Date))
			return nil
		default:
			PrintError(fmt.Sprintf("Error marking commitment as skipped: %v", err))
			return &ExitError{Code: 1}
		}
	}

	printSuccess(fmt.Sprintf("Commitment for %s skipped: %s", date, day.Title))
	return nil
}
