package models

import "github.com/julianstephens/ot/internal/constants"

// State is the root persisted entity: one JSON document per user.
//
// Settings is a pointer so a loaded document can distinguish "absent" from a
// zero value; the storage engine and doctor backfill it along with a blank
// Timezone.
type State struct {
	Timezone string         `json:"timezone"`
	Days     map[string]Day `json:"days"`
	Version  int            `json:"version"`
	Settings *Settings      `json:"settings"`
}

// NewState returns an empty current-version state for the given timezone.
func NewState(timezone string) *State {
	settings := DefaultSettings()
	return &State{
		Timezone: timezone,
		Days:     make(map[string]Day),
		Version:  constants.StateVersion,
		Settings: &settings,
	}
}
