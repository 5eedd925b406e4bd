package models

import "time"

type Status string

const (
	StatusPending Status = "pending"
	StatusDone    Status = "done"
	StatusSkipped Status = "skipped"
	// StatusNull marks a synthesized placeholder for a date with no record.
	// It is never persisted as a real day's status.
	StatusNull Status = "-"
)

// ParseStatus returns the Status matching s exactly, or ok=false.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusDone, StatusSkipped, StatusNull:
		return Status(s), true
	}
	return "", false
}

// IsComplete reports whether the status is terminal (done or skipped).
func (s Status) IsComplete() bool {
	return s == StatusDone || s == StatusSkipped
}

// Day is the commitment record for one calendar date.
type Day struct {
	Title       string     `json:"title"`
	Status      Status     `json:"status"`
	Note        *string    `json:"note"`
	CreatedAt   *time.Time `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
	SkippedAt   *time.Time `json:"skipped_at"`
}

// NewDay returns a pending Day with the given title.
func NewDay(title string) Day {
	return Day{Title: title, Status: StatusPending}
}
