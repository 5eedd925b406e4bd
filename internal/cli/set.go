package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/ot/internal/models"
	"github.com/julianstephens/ot/internal/storage"
)

type SetCmd struct {
	Title string `arg:"" help:"Today's one thing."`
	Date  string `short:"d" help:"A specific date in YYYY-MM-DD format to set the commitment for."`
	Force bool   `help:"Force overwrite if a commitment already exists."`
}

func (c *SetCmd) Run(ctx *Context) error {
	title := strings.TrimSpace(c.Title)
	if title == "" {
		PrintError("Title cannot be empty.")
		return &ExitError{Code: 1}
	}

	_, err := ctx.Store.AddDay(models.NewDay(title), c.Date, c.Force)
	if err != nil {
		var strictErr *storage.StrictModeViolationError
		switch {
		case errors.Is(err, storage.ErrNotInitialized):
			PrintError("Storage is not initialized. Please run 'ot init' first.")
		case errors.As(err, &strictErr):
			PrintError(fmt.Sprintf("Cannot set commitment due to strict mode violation: %v", err))
		case errors.Is(err, storage.ErrDayCollision):
			PrintError("A commitment is already set for this date. Use --force to overwrite.")
		default:
			PrintError(fmt.Sprintf("Error setting commitment: %v", err))
		}
		return &ExitError{Code: 1}
	}

	printSuccess(fmt.Sprintf("Commitment set for %s: %s", describeDate(c.Date), title))
	return nil
}
