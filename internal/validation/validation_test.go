package validation

import (
	"errors"
	"testing"
)

func TestDateString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "2023-01-02", "2023-01-02", false},
		{"leap day", "2024-02-29", "2024-02-29", false},
		{"non-leap february 29", "2023-02-29", "", true},
		{"unpadded month", "2023-1-02", "", true},
		{"unpadded day", "2023-01-2", "", true},
		{"month only", "2023-01", "", true},
		{"wrong separator", "2023/01/02", "", true},
		{"nonsense", "not-a-date", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DateString(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				var invalidErr *InvalidDateStringError
				if !errors.As(err, &invalidErr) {
					t.Errorf("expected InvalidDateStringError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMonthString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "2023-01", "2023-01", false},
		{"december", "2023-12", "2023-12", false},
		{"unpadded", "2023-1", "", true},
		{"month thirteen", "2023-13", "", true},
		{"full date", "2023-01-02", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MonthString(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInvalidDateStringErrorMessage(t *testing.T) {
	_, err := DateString("bogus")
	if err == nil {
		t.Fatal("expected error")
	}
	want := `date "bogus" does not match format "2006-01-02"`
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}
