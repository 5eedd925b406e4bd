package cli

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/julianstephens/ot/internal/constants"
	"github.com/julianstephens/ot/internal/models"
	"github.com/julianstephens/ot/internal/storage"
	"github.com/julianstephens/ot/internal/timeutil"
)

type LogCmd struct {
	Days  int    `short:"n" help:"Number of days to display."`
	Month string `short:"m" help:"Month in YYYY-MM format to display."`
}

func (c *LogCmd) Run(ctx *Context) error {
	if c.Month != "" {
		monthDays, err := ctx.Store.GetMonthDays(c.Month)
		if err != nil {
			if errors.Is(err, storage.ErrNotInitialized) {
				PrintError("Storage is not initialized. Please run 'ot init' first.")
				return &ExitError{Code: 1}
			}
			PrintError(fmt.Sprintf("Failed to retrieve data for month %s: %v", c.Month, err))
			return &ExitError{Code: 1}
		}

		dates := make([]string, 0, len(monthDays))
		for date := range monthDays {
			dates = append(dates, date)
		}
		sort.Strings(dates)
		for _, date := range dates {
			day := monthDays[date]
			fmt.Printf("%s  %s  %s\n", date, day.Status, day.Title)
		}
		return nil
	}

	days, err := ctx.Store.Days()
	if err != nil {
		if errors.Is(err, storage.ErrNotInitialized) {
			PrintError("Storage is not initialized. Please run 'ot init' first.")
			return &ExitError{Code: 1}
		}
		return err
	}
	settings, err := ctx.Store.Settings()
	if err != nil {
		return err
	}
	tz, err := ctx.Store.Timezone()
	if err != nil {
		return err
	}

	displayDays := c.Days
	if displayDays <= 0 {
		displayDays = settings.DefaultLogDays
	}

	loc := timeutil.Location(tz)
	today, _ := time.ParseInLocation(constants.DateFormat, timeutil.Today(loc), loc)
	for i := 0; i < displayDays; i++ {
		date := today.AddDate(0, 0, -i).Format(constants.DateFormat)
		status := string(models.StatusNull)
		title := constants.NoCommitmentTitle
		if day, ok := days[date]; ok {
			status = string(day.Status)
			title = day.Title
		}
		fmt.Printf("%s  %s  %s\n", date, status, title)
	}
	return nil
}
