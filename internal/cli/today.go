package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/ot/internal/storage"
	"github.com/julianstephens/ot/internal/timeutil"
)

type TodayCmd struct {
	Date string `short:"d" help:"A specific date in YYYY-MM-DD format to inspect."`
}

func (c *TodayCmd) Run(ctx *Context) error {
	date, day, err := ctx.Store.GetDay(c.Date)
	if err != nil {
		if errors.Is(err, storage.ErrNotInitialized) {
			PrintError("Storage is not initialized. Please run 'ot init' first.")
			return &ExitError{Code: 1}
		}
		PrintError(fmt.Sprintf("Error retrieving data for %s: %v", describeDate(c.Date), err))
		return &ExitError{Code: 1}
	}

	if day == nil {
		tz, err := ctx.Store.Timezone()
		if err != nil {
			return err
		}
		settings, err := ctx.Store.Settings()
		if err != nil {
			return err
		}
		if date == timeutil.Today(timeutil.Location(tz)) && settings.AutoPromptOnEmpty {
			day, err = promptSetCommitment(ctx.Store)
			if err != nil {
				PrintError(fmt.Sprintf("Unable to add commitment for today: %v", err))
				return &ExitError{Code: 1}
			}
			if day != nil {
				fmt.Printf("%s - %s\n", date, day.Status)
				fmt.Printf("  %s\n", day.Title)
				return nil
			}
		}
		fmt.Printf("%s - no commitment set\n", date)
		return nil
	}

	fmt.Printf("%s - %s\n", date, day.Status)
	fmt.Printf("  %s\n", day.Title)
	if day.Note != nil {
		fmt.Printf("  %s\n", *day.Note)
	}
	return nil
}
