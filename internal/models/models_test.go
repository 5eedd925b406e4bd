package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"pending", "done", "skipped", "-"} {
		if _, ok := ParseStatus(valid); !ok {
			t.Errorf("expected %q to parse", valid)
		}
	}
	for _, invalid := range []string{"DONE", "Pending", "complete", ""} {
		if _, ok := ParseStatus(invalid); ok {
			t.Errorf("expected %q to be rejected", invalid)
		}
	}
}

func TestStatusIsComplete(t *testing.T) {
	if !StatusDone.IsComplete() || !StatusSkipped.IsComplete() {
		t.Error("done and skipped are terminal statuses")
	}
	if StatusPending.IsComplete() || StatusNull.IsComplete() {
		t.Error("pending and null are not terminal statuses")
	}
}

func TestNewDay(t *testing.T) {
	day := NewDay("ship it")
	if day.Title != "ship it" {
		t.Errorf("unexpected title %q", day.Title)
	}
	if day.Status != StatusPending {
		t.Errorf("expected pending status, got %q", day.Status)
	}
	if day.CreatedAt != nil || day.CompletedAt != nil || day.SkippedAt != nil {
		t.Error("expected no timestamps on a fresh day")
	}
}

func TestDaySerializesNullFields(t *testing.T) {
	data, err := json.Marshal(NewDay("x"))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	// Absent optionals must serialize as explicit nulls, not be omitted.
	for _, key := range []string{`"note":null`, `"created_at":null`, `"completed_at":null`, `"skipped_at":null`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("expected %s in %s", key, data)
		}
	}
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	if !settings.AutoPromptOnEmpty {
		t.Error("expected auto_prompt_on_empty enabled by default")
	}
	if !settings.StrictMode {
		t.Error("expected strict_mode enabled by default")
	}
	if settings.DefaultLogDays != 7 {
		t.Errorf("expected default_log_days 7, got %d", settings.DefaultLogDays)
	}
	if settings.MaxBackupFiles != 5 {
		t.Errorf("expected max_backup_files 5, got %d", settings.MaxBackupFiles)
	}
}

func TestNewState(t *testing.T) {
	state := NewState("America/New_York")
	if state.Timezone != "America/New_York" {
		t.Errorf("unexpected timezone %q", state.Timezone)
	}
	if state.Version != 2 {
		t.Errorf("expected current version, got %d", state.Version)
	}
	if state.Days == nil {
		t.Error("expected initialized days map")
	}
	if state.Settings == nil {
		t.Error("expected initialized settings")
	}
}
