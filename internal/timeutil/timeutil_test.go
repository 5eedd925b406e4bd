package timeutil

import (
	"testing"
	"time"
)

func TestMonthLength(t *testing.T) {
	tests := []struct {
		month string
		want  int
	}{
		{"2023-01", 31},
		{"2023-02", 28},
		{"2024-02", 29},
		{"2023-04", 30},
		{"2023-12", 31},
	}
	for _, tt := range tests {
		got, err := MonthLength(tt.month)
		if err != nil {
			t.Errorf("MonthLength(%q) returned error: %v", tt.month, err)
			continue
		}
		if got != tt.want {
			t.Errorf("MonthLength(%q) = %d, want %d", tt.month, got, tt.want)
		}
	}
}

func TestMonthLengthInvalid(t *testing.T) {
	if _, err := MonthLength("not-a-month"); err == nil {
		t.Error("expected error for invalid month string")
	}
}

func TestLocationFallsBackToUTC(t *testing.T) {
	if loc := Location("Not/AZone"); loc != time.UTC {
		t.Errorf("expected UTC fallback, got %v", loc)
	}
}

func TestLocationLoadsNamedZone(t *testing.T) {
	loc := Location("UTC")
	if loc.String() != "UTC" {
		t.Errorf("expected UTC, got %v", loc)
	}
}

func TestLocalTimezoneIsLoadable(t *testing.T) {
	tz := LocalTimezone()
	if tz == "" {
		t.Fatal("expected a non-empty timezone name")
	}
	if _, err := time.LoadLocation(tz); err != nil {
		t.Errorf("returned timezone %q is not loadable: %v", tz, err)
	}
}

func TestLocalTimezoneHonorsTZ(t *testing.T) {
	t.Setenv("TZ", "America/New_York")
	if tz := LocalTimezone(); tz != "America/New_York" {
		t.Errorf("expected TZ override, got %q", tz)
	}
}

func TestToday(t *testing.T) {
	got := Today(time.UTC)
	want := time.Now().UTC().Format("2006-01-02")
	if got != want {
		t.Errorf("Today(UTC) = %q, want %q", got, want)
	}
}
