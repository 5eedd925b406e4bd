package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/ot/internal/storage"
)

type EditCmd struct {
	Title string `arg:"" help:"New title for the commitment."`
	Date  string `short:"d" help:"Date of the commitment to edit."`
}

func (c *EditCmd) Run(ctx *Context) error {
	date, day, err := ctx.Store.ModifyDay(c.Title, c.Date)
	if err != nil {
		var strictErr *storage.StrictModeViolationError
		switch {
		case errors.Is(err, storage.ErrNotInitialized):
			PrintError("Storage is not initialized. Please run 'ot init' first.")
		case errors.As(err, &strictErr):
			PrintError(fmt.Sprintf("Cannot edit commitment due to strict mode violation: %v", err))
		case errors.Is(err, storage.ErrDayUnset):
			PrintError(fmt.Sprintf("No commitment set for %s", describeDate(c.Date)))
		default:
			PrintError(fmt.Sprintf("Failed to edit commitment: %v", err))
		}
		return &ExitError{Code: 1}
	}

	if c.Date == "" {
		date = "today"
	}
	fmt.Printf("Commitment for %s updated to: %s\n", date, day.Title)
	return nil
}
