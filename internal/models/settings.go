package models

import "github.com/julianstephens/ot/internal/constants"

// Settings represents application-wide settings embedded in the state file.
type Settings struct {
	AutoPromptOnEmpty bool `json:"auto_prompt_on_empty"` // prompt when today has no commitment
	StrictMode        bool `json:"strict_mode"`          // enforce strict-mode rules
	DefaultLogDays    int  `json:"default_log_days"`     // window size for the log view
	MaxBackupFiles    int  `json:"max_backup_files"`     // backup retention count
}

// DefaultSettings returns the settings applied when none are stored.
func DefaultSettings() Settings {
	return Settings{
		AutoPromptOnEmpty: constants.DefaultAutoPromptOnEmpty,
		StrictMode:        constants.DefaultStrictMode,
		DefaultLogDays:    constants.DefaultLogDays,
		MaxBackupFiles:    constants.DefaultMaxBackupFiles,
	}
}

type StrictModeRule string

const (
	RuleForbidFutureDates         StrictModeRule = "forbid_future_dates"
	RuleForbidModifyingComplete   StrictModeRule = "forbid_modifying_complete_days"
	RuleForbidMultipleStatusFlips StrictModeRule = "forbid_multiple_status_flips_per_day"
)
