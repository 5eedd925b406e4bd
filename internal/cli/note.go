package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/ot/internal/storage"
)

type NoteCmd struct {
	Message string `arg:"" help:"The note message to be added."`
	Date    string `short:"d" help:"A specific date in YYYY-MM-DD format to add a note to."`
}

func (c *NoteCmd) Run(ctx *Context) error {
	err := ctx.Store.AddNote(c.Message, c.Date)
	if err != nil {
		var strictErr *storage.StrictModeViolationError
		switch {
		case errors.Is(err, storage.ErrNotInitialized):
			PrintError("Storage is not initialized. Please run 'ot init' first.")
			return &ExitError{Code: 1}
		case errors.As(err, &strictErr):
			PrintError(fmt.Sprintf("Cannot add note due to strict mode violation: %v", err))
			return &ExitError{Code: 1}
		case errors.Is(err, storage.ErrDayUnset):
			settings, serr := ctx.Store.Settings()
			if serr != nil {
				return serr
			}
			if !settings.AutoPromptOnEmpty {
				PrintError("Cannot add note to day without a commitment set")
				return &ExitError{Code: 1}
			}
			if _, perr := promptSetCommitment(ctx.Store); perr != nil {
				PrintError(fmt.Sprintf("Unable to add commitment: %v", perr))
				return &ExitError{Code: 1}
			}
			if rerr := ctx.Store.AddNote(c.Message, c.Date); rerr != nil {
				PrintError(fmt.Sprintf("Error adding note after setting commitment: %v", rerr))
				return &ExitError{Code: 1}
			}
		default:
			PrintError(fmt.Sprintf("Error adding note: %v", err))
			return &ExitError{Code: 1}
		}
	}

	printSuccess(fmt.Sprintf("Note added: %s", c.Message))
	return nil
}
