// Package doctor diagnoses and repairs the state file out-of-band. It works
// on the raw bytes rather than trusting the storage engine's schema, because
// the file may be corrupted in ways the strict schema cannot even parse.
package doctor

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/julianstephens/ot/internal/backup"
	"github.com/julianstephens/ot/internal/constants"
	"github.com/julianstephens/ot/internal/models"
	"github.com/julianstephens/ot/internal/timeutil"
	"github.com/julianstephens/ot/internal/validation"
)

// Service runs the diagnostic/repair pass over the state file.
type Service struct {
	statePath string
	backupSvc *backup.Service
	logger    *log.Logger
}

// NewService creates a doctor for the state file at statePath, backing up
// into backupDir before any rewrite.
func NewService(statePath, backupDir string, logger *log.Logger) *Service {
	return &Service{
		statePath: statePath,
		backupSvc: backup.NewService(statePath, backupDir, constants.DefaultMaxBackupFiles, logger),
		logger:    logger.WithPrefix("doctor"),
	}
}

// Run executes the sequential diagnostic phases: integrity check, structural
// load, semantic repair, day repair. At most one backup is created per run,
// before the first save of a repaired document.
func (s *Service) Run() *models.DoctorResult {
	result := &models.DoctorResult{}

	s.logger.Debug("starting state file diagnostics")

	if !s.checkIntegrity(result) {
		return result
	}

	s.logger.Debug("loading and validating state file structure")
	state, recovered := s.loadAndValidateStructure(result)
	if state == nil {
		return result
	}

	modified, stop := s.repairSemantics(state, result)
	if stop {
		return result
	}
	// A loose recovery means the on-disk bytes diverge from the typed model,
	// so the normalized document must be written back even if the later
	// phases find nothing else to fix.
	modified = modified || recovered
	if modified {
		s.logger.Debug("modifications made to state, creating backup")
		s.backupBestEffort(result)
		if err := s.saveState(state); err != nil {
			result.Unresolved = append(result.Unresolved, fmt.Sprintf("Could not save repaired state: %v", err))
			result.ExitCode = 1
			return result
		}
	}

	if s.repairDays(state, result) {
		if !modified {
			s.backupBestEffort(result)
		}
		s.logger.Debug("saving repaired state file with day fixes")
		if err := s.saveState(state); err != nil {
			result.Unresolved = append(result.Unresolved, fmt.Sprintf("Could not save repaired state: %v", err))
			result.ExitCode = 1
		}
	}

	return result
}

func (s *Service) backupBestEffort(result *models.DoctorResult) {
	path, err := s.backupSvc.CreateBackup()
	if err != nil {
		// Best-effort: repair proceeds without a backup rather than aborting.
		s.logger.Warn("could not back up state before repair", "err", err)
		return
	}
	result.BackupPath = path
}

func (s *Service) saveState(state *models.State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}
	return os.WriteFile(s.statePath, data, 0600)
}

// checkIntegrity verifies the file exists and holds at least one non-blank
// line. Returns false when the remaining phases should be skipped.
func (s *Service) checkIntegrity(result *models.DoctorResult) bool {
	s.logger.Debug("checking state file integrity")

	data, err := os.ReadFile(s.statePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("state file does not exist")
			result.ExitCode = 3
			result.Remedy = models.RemedyInitStorage
			return false
		}
		result.ExitCode = 1
		result.Remedy = models.RemedyLoadState
		result.Unresolved = append(result.Unresolved, fmt.Sprintf("Could not read state file: %v", err))
		return false
	}

	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			return true
		}
	}

	s.logger.Debug("state file is empty")
	result.ExitCode = 1
	result.Remedy = models.RemedyLoadState
	return false
}

// loadAndValidateStructure attempts a strict schema decode and falls back to
// loose field-by-field recovery. The second return reports whether the loose
// path ran. Returns a nil state when even loose recovery fails.
func (s *Service) loadAndValidateStructure(result *models.DoctorResult) (*models.State, bool) {
	data, err := os.ReadFile(s.statePath)
	if err != nil {
		result.Remedy = models.RemedyForceInitStorage
		result.ExitCode = 2
		result.Unresolved = append(result.Unresolved, fmt.Sprintf("Decode error: %v", err))
		return nil, false
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Debug("state file structure invalid", "decode_err", err)
		result.Remedy = models.RemedyForceInitStorage
		result.ExitCode = 2
		result.Unresolved = append(result.Unresolved, fmt.Sprintf("Decode error: %v", err))
		return nil, false
	}

	if err := compiledStateSchema.Validate(raw); err == nil {
		state := &models.State{}
		if err := json.Unmarshal(data, state); err == nil {
			s.logger.Debug("state file structure valid")
			if state.Version == 0 {
				// Absent version field; the typed model treats the document
				// as current, matching the storage engine's decode.
				state.Version = constants.StateVersion
			}
			return state, false
		}
		// Schema passed but the typed decode did not; treat like a
		// validation failure and try loose recovery below.
		s.logger.Debug("typed decode failed despite valid schema", "err", err)
	} else {
		s.logger.Debug("strict validation failed, attempting loose load", "err", err)
	}

	doc, ok := raw.(map[string]any)
	if !ok {
		result.Remedy = models.RemedyForceInitStorage
		result.ExitCode = 2
		result.Unresolved = append(result.Unresolved, "Validation error: state document is not an object")
		return nil, false
	}

	state := s.looseRecover(doc, result)
	s.logger.Debug("loose load successful, proceeding with repairs")
	result.ExitCode = 0
	result.Remedy = ""
	return state, true
}

// looseRecover reconstructs a State from an untyped document tree, tolerating
// missing sections and repairing what it can. Unsalvageable days land in the
// unresolved list; the goal is maximal salvage, not strict correctness.
func (s *Service) looseRecover(doc map[string]any, result *models.DoctorResult) *models.State {
	// A missing version field means current, same as the typed decode; only
	// an explicit older version routes the run into the migration remedy.
	state := &models.State{
		Days:    make(map[string]models.Day),
		Version: constants.StateVersion,
	}

	if tz, ok := doc["timezone"].(string); ok {
		state.Timezone = tz
	}
	if version, ok := doc["version"].(float64); ok {
		state.Version = int(version)
	}

	if rawSettings, ok := doc["settings"].(map[string]any); ok {
		settings := models.DefaultSettings()
		if v, ok := rawSettings["auto_prompt_on_empty"].(bool); ok {
			settings.AutoPromptOnEmpty = v
		}
		if v, ok := rawSettings["strict_mode"].(bool); ok {
			settings.StrictMode = v
		}
		if v, ok := rawSettings["default_log_days"].(float64); ok {
			settings.DefaultLogDays = int(v)
		}
		if v, ok := rawSettings["max_backup_files"].(float64); ok {
			settings.MaxBackupFiles = int(v)
		}
		state.Settings = &settings
	}

	rawDays, ok := doc["days"].(map[string]any)
	if !ok {
		return state
	}

	for _, date := range sortedKeys(rawDays) {
		rawDay, ok := rawDays[date].(map[string]any)
		if !ok {
			result.Unresolved = append(result.Unresolved,
				fmt.Sprintf("Could not load day '%s': record is not an object", date))
			continue
		}

		status := models.StatusPending
		if statusVal, ok := rawDay["status"].(string); ok {
			parsed, ok := models.ParseStatus(statusVal)
			if !ok {
				parsed, ok = models.ParseStatus(strings.ToLower(statusVal))
				if !ok {
					result.Unresolved = append(result.Unresolved,
						fmt.Sprintf("Invalid status '%s' for date '%s'", statusVal, date))
					continue
				}
				result.Autofixed = append(result.Autofixed,
					fmt.Sprintf("Corrected status for date '%s' to '%s'.", date, parsed))
			}
			status = parsed
		}

		day := models.Day{Status: status}
		if title, ok := rawDay["title"].(string); ok {
			day.Title = title
		}
		if note, ok := rawDay["note"].(string); ok {
			day.Note = &note
		}
		day.CreatedAt = looseTimestamp(rawDay["created_at"])
		day.CompletedAt = looseTimestamp(rawDay["completed_at"])
		day.SkippedAt = looseTimestamp(rawDay["skipped_at"])
		state.Days[date] = day
	}

	return state
}

func looseTimestamp(v any) *time.Time {
	str, ok := v.(string)
	if !ok {
		return nil
	}
	t, err := time.Parse(time.RFC3339, str)
	if err != nil {
		return nil
	}
	return &t
}

// repairSemantics backfills missing settings and timezone. Returns whether
// the state was modified and whether the run must stop (migration needed —
// migrating is the storage engine's job, not the doctor's).
func (s *Service) repairSemantics(state *models.State, result *models.DoctorResult) (modified, stop bool) {
	if state.Version < constants.StateVersion {
		s.logger.Debug("state version outdated", "version", state.Version, "current", constants.StateVersion)
		result.Unresolved = append(result.Unresolved, fmt.Sprintf(
			"State version %d is older than current version %d, migration needed.",
			state.Version, constants.StateVersion))
		result.Remedy = models.RemedyMigrateState
		result.ExitCode = 1
		return false, true
	}

	if state.Settings == nil {
		s.logger.Debug("settings field missing, initializing default settings")
		settings := models.DefaultSettings()
		state.Settings = &settings
		result.Autofixed = append(result.Autofixed, "Settings field was missing, initialized default.")
		modified = true
	}

	if strings.TrimSpace(state.Timezone) == "" {
		tz := timeutil.LocalTimezone()
		s.logger.Debug("timezone field missing or empty, setting default value", "tz", tz)
		state.Timezone = tz
		result.Autofixed = append(result.Autofixed, fmt.Sprintf(
			"timezone field was missing or empty, set to system timezone '%s'.", tz))
		modified = true
	}

	return modified, false
}

// repairDays walks every day entry applying the per-day checks. Returns
// whether any change requires a save.
func (s *Service) repairDays(state *models.State, result *models.DoctorResult) bool {
	modified := false

	if state.Days == nil {
		state.Days = make(map[string]models.Day)
	}

	for _, date := range sortedDayKeys(state.Days) {
		day := state.Days[date]

		if _, err := validation.DateString(date); err != nil {
			s.logger.Debug("invalid date string in days, removing entry", "date", date)
			result.Autofixed = append(result.Autofixed,
				fmt.Sprintf("Removed day with invalid date string '%s': %v", date, err))
			delete(state.Days, date)
			modified = true
			continue
		}

		if _, ok := models.ParseStatus(string(day.Status)); !ok {
			if fixed, ok := models.ParseStatus(strings.ToLower(string(day.Status))); ok {
				s.logger.Debug("correcting status casing", "date", date, "status", fixed)
				day.Status = fixed
				state.Days[date] = day
				modified = true
				result.Autofixed = append(result.Autofixed,
					fmt.Sprintf("Corrected status for date '%s' to '%s'.", date, fixed))
			} else {
				result.Unresolved = append(result.Unresolved,
					fmt.Sprintf("Invalid status '%s' for date '%s', not auto-corrected", day.Status, date))
			}
		}

		// The timestamp fixes below are descriptive only: no recoverable
		// value exists, so the fields stay null.
		if day.Status == models.StatusDone && day.CompletedAt == nil {
			modified = true
			result.Autofixed = append(result.Autofixed,
				fmt.Sprintf("Set completed_at for DONE day on '%s'", date))
		}
		if day.Status == models.StatusSkipped && day.SkippedAt == nil {
			modified = true
			result.Autofixed = append(result.Autofixed,
				fmt.Sprintf("Set skipped_at for SKIPPED day on '%s'", date))
		}
		if day.CreatedAt == nil {
			modified = true
			result.Autofixed = append(result.Autofixed,
				fmt.Sprintf("Set created_at for day on '%s' to null.", date))
		}

		if strings.TrimSpace(day.Title) == "" {
			result.Unresolved = append(result.Unresolved,
				fmt.Sprintf("Day for date '%s' is missing a title.", date))
		}
		if trimmed := strings.TrimRight(day.Title, " \t"); trimmed != day.Title {
			day.Title = trimmed
			state.Days[date] = day
			modified = true
			result.Autofixed = append(result.Autofixed,
				fmt.Sprintf("Trimmed trailing spaces from title for day on '%s'.", date))
		}

		if day.Note != nil && strings.TrimSpace(*day.Note) == "" {
			day.Note = nil
			state.Days[date] = day
			modified = true
			result.Autofixed = append(result.Autofixed,
				fmt.Sprintf("Set note for day on '%s' to null due to invalid type.", date))
		}
		if day.Note != nil {
			if trimmed := strings.TrimRight(*day.Note, " \t"); trimmed != *day.Note {
				day.Note = &trimmed
				state.Days[date] = day
				modified = true
				result.Autofixed = append(result.Autofixed,
					fmt.Sprintf("Trimmed trailing spaces from note for day on '%s'.", date))
			}
		}
	}

	return modified
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedDayKeys(m map[string]models.Day) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
