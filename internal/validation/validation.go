package validation

import (
	"fmt"
	"time"

	"github.com/julianstephens/ot/internal/constants"
)

// InvalidDateStringError reports a date or month string that does not match
// the expected layout.
type InvalidDateStringError struct {
	Value  string
	Layout string
}

func (e *InvalidDateStringError) Error() string {
	return fmt.Sprintf("date %q does not match format %q", e.Value, e.Layout)
}

func validate(value, layout string) (time.Time, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, &InvalidDateStringError{Value: value, Layout: layout}
	}
	// Round-trip guards against values Parse normalizes, e.g. "2023-1-2".
	if t.Format(layout) != value {
		return time.Time{}, &InvalidDateStringError{Value: value, Layout: layout}
	}
	return t, nil
}

// DateString validates a YYYY-MM-DD date string and returns it normalized.
func DateString(date string) (string, error) {
	t, err := validate(date, constants.DateFormat)
	if err != nil {
		return "", err
	}
	return t.Format(constants.DateFormat), nil
}

// MonthString validates a YYYY-MM month string and returns it normalized.
func MonthString(month string) (string, error) {
	t, err := validate(month, constants.MonthFormat)
	if err != nil {
		return "", err
	}
	return t.Format(constants.MonthFormat), nil
}
