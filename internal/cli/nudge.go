package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/ot/internal/models"
	"github.com/julianstephens/ot/internal/storage"
)

type NudgeCmd struct{}

func (c *NudgeCmd) Run(ctx *Context) error {
	_, day, err := ctx.Store.GetDay("")
	if err != nil {
		if errors.Is(err, storage.ErrNotInitialized) {
			PrintError("Storage is not initialized. Please run 'ot init' first.")
			return &ExitError{Code: 1}
		}
		PrintError(fmt.Sprintf("An unexpected error occurred: %v", err))
		return &ExitError{Code: 1}
	}

	if day == nil {
		settings, err := ctx.Store.Settings()
		if err != nil {
			return err
		}
		if settings.AutoPromptOnEmpty {
			day, err = promptSetCommitment(ctx.Store)
			if err != nil {
				PrintError(fmt.Sprintf("Unable to add commitment for today: %v", err))
				return &ExitError{Code: 1}
			}
		}
		if day == nil {
			fmt.Println("No commitment set for today.")
		} else {
			printSuccess(fmt.Sprintf("Commitment set: %s", day.Title))
		}
		return nil
	}

	if day.Status == models.StatusPending {
		fmt.Printf("Pending today: '%s'\n", day.Title)
		return nil
	}

	fmt.Printf("Today's commitment is %s: '%s'\n", day.Status, day.Title)
	return nil
}
