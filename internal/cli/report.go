package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/ot/internal/constants"
	"github.com/julianstephens/ot/internal/models"
	"github.com/julianstephens/ot/internal/storage"
	"github.com/julianstephens/ot/internal/timeutil"
)

type ReportCmd struct {
	Month string `help:"Month in YYYY-MM format (default: current month)."`
}

func (c *ReportCmd) Run(ctx *Context) error {
	month := c.Month
	if month == "" {
		tz, err := ctx.Store.Timezone()
		if err != nil {
			if errors.Is(err, storage.ErrNotInitialized) {
				PrintError("Storage is not initialized. Please run 'ot init' first.")
				return &ExitError{Code: 1}
			}
			return err
		}
		month = time.Now().In(timeutil.Location(tz)).Format(constants.MonthFormat)
	}

	monthDays, err := ctx.Store.GetMonthDays(month)
	if err != nil {
		if errors.Is(err, storage.ErrNotInitialized) {
			PrintError("Storage is not initialized. Please run 'ot init' first.")
			return &ExitError{Code: 1}
		}
		PrintError(fmt.Sprintf("Failed to retrieve data for month %s: %v", month, err))
		return &ExitError{Code: 1}
	}

	var committed, done, skipped, pending int
	for _, day := range monthDays {
		if day.Status == models.StatusNull {
			continue
		}
		committed++
		switch day.Status {
		case models.StatusDone:
			done++
		case models.StatusSkipped:
			skipped++
		case models.StatusPending:
			pending++
		}
	}

	fmt.Printf("Report for %s\n\n", month)
	fmt.Printf("Days with a commitment: %d\n", committed)
	fmt.Printf("  done: %d\n", done)
	fmt.Printf("  skipped: %d\n", skipped)
	fmt.Printf("  pending: %d\n", pending)
	fmt.Println()

	rate := 0.0
	if committed > 0 {
		rate = float64(done) / float64(committed) * 100
	}
	fmt.Printf("Completion rate (done / commitment days): %.2f%%\n", rate)
	return nil
}
