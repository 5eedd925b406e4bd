package timeutil

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/julianstephens/ot/internal/constants"
)

// LocalTimezone returns the host's IANA timezone name.
//
// It checks $TZ, then /etc/timezone, then the /etc/localtime symlink target.
// Falls back to "UTC" when the name cannot be determined, so the state file
// always carries a loadable zone name.
func LocalTimezone() string {
	if tz := os.Getenv("TZ"); tz != "" {
		if _, err := time.LoadLocation(tz); err == nil {
			return tz
		}
	}

	if data, err := os.ReadFile("/etc/timezone"); err == nil {
		tz := strings.TrimSpace(string(data))
		if _, err := time.LoadLocation(tz); err == nil {
			return tz
		}
	}

	if target, err := os.Readlink("/etc/localtime"); err == nil {
		// Target looks like ../usr/share/zoneinfo/Area/Location
		if idx := strings.Index(target, "zoneinfo/"); idx != -1 {
			tz := target[idx+len("zoneinfo/"):]
			tz = filepath.ToSlash(tz)
			if _, err := time.LoadLocation(tz); err == nil {
				return tz
			}
		}
	}

	return "UTC"
}

// Location loads the named IANA zone, falling back to UTC on failure.
func Location(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Today returns the current date string in the given location.
func Today(loc *time.Location) string {
	return time.Now().In(loc).Format(constants.DateFormat)
}

// MonthLength returns the number of calendar days in a YYYY-MM month.
func MonthLength(month string) (int, error) {
	t, err := time.Parse(constants.MonthFormat, month)
	if err != nil {
		return 0, err
	}
	// Day zero of the following month is the last day of this one.
	last := time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC)
	return last.Day(), nil
}
