package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/julianstephens/ot/internal/constants"
	"github.com/julianstephens/ot/internal/models"
	"github.com/julianstephens/ot/internal/timeutil"
	"github.com/julianstephens/ot/internal/validation"
)

type strictAction int

const (
	actionAdd strictAction = iota
	actionModify
	actionStatus
)

// Storage owns the lifecycle of the state document: lazy/eager loading,
// schema migration, day-record operations, settings mutation, and strict-mode
// enforcement. Every mutation re-serializes the whole document to disk before
// the call returns.
//
// One Storage per process; construct it once in main and pass it by handle.
// Not safe for concurrent use, and concurrent processes sharing the same
// state file are not supported.
type Storage struct {
	path     string
	lazyLoad bool
	logger   *log.Logger
	state    *models.State
	loaded   bool
}

// New creates a storage engine for the state file at path. When lazyLoad is
// true the file is read on first data access instead of at Initialize time.
func New(path string, lazyLoad bool, logger *log.Logger) *Storage {
	return &Storage{
		path:     path,
		lazyLoad: lazyLoad,
		logger:   logger.WithPrefix("storage"),
	}
}

// StatePath returns the path of the backing state file.
func (s *Storage) StatePath() string {
	return s.path
}

// Initialize creates the backing file. With force it wipes any existing file
// and resets in-memory state first.
func (s *Storage) Initialize(force bool) error {
	s.logger.Info("using storage state path", "path", s.path)

	if _, err := os.Stat(s.path); err == nil {
		s.logger.Debug("state already exists")
		if !force {
			return ErrAlreadyInitialized
		}
		s.logger.Debug("force mode, unlinking existing state")
		if err := os.Remove(s.path); err != nil {
			return fmt.Errorf("failed to remove existing state: %w", err)
		}
		s.state = nil
		s.loaded = false
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to create state file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close state file: %w", err)
	}

	if !s.lazyLoad {
		s.logger.Debug("lazy load disabled, loading state")
		return s.loadState()
	}
	return nil
}

// Ready reports whether the state document is loaded in memory.
func (s *Storage) Ready() bool {
	return s.state != nil && s.loaded
}

func (s *Storage) ensureLoaded() error {
	if s.Ready() {
		return nil
	}
	if s.lazyLoad {
		return s.loadState()
	}
	return ErrNotInitialized
}

func (s *Storage) loadState() error {
	if s.Ready() {
		return ErrAlreadyInitialized
	}

	s.logger.Debug("loading state from file")
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotInitialized
		}
		return fmt.Errorf("failed to read state: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		s.logger.Debug("no data found, initializing new state")
		s.state = models.NewState(timeutil.LocalTimezone())
	} else {
		state := &models.State{}
		if err := json.Unmarshal(data, state); err != nil {
			return fmt.Errorf("failed to parse state: %w", err)
		}
		s.state = state
		if s.state.Version == 0 {
			// Absent version field; treat the document as current.
			s.state.Version = constants.StateVersion
		}
		if err := s.migrate(); err != nil {
			return err
		}
		if s.state.Days == nil {
			s.state.Days = make(map[string]models.Day)
		}
		if s.state.Settings == nil {
			settings := models.DefaultSettings()
			s.state.Settings = &settings
		}
		if s.state.Timezone == "" {
			s.state.Timezone = timeutil.LocalTimezone()
		}
	}

	s.loaded = true
	s.logger.Debug("state loaded")
	return s.saveState()
}

// migrate applies schema migration steps sequentially until the document is
// at the current version, then stamps the version. The caller persists.
func (s *Storage) migrate() error {
	for s.state.Version < constants.StateVersion {
		switch s.state.Version {
		case 1:
			// v1 documents lack settings and the note/timestamp fields on
			// days; decoding already left the day fields null, so only the
			// settings need backfilling.
			s.logger.Debug("migrating state", "from", 1, "to", 2)
			if s.state.Settings == nil {
				settings := models.DefaultSettings()
				s.state.Settings = &settings
			}
			s.state.Version = 2
		default:
			return fmt.Errorf("no migration path from state version %d", s.state.Version)
		}
	}
	return nil
}

func (s *Storage) saveState() error {
	if !s.Ready() {
		return ErrNotInitialized
	}

	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}
	return nil
}

// Days returns the day map, triggering a lazy load if needed.
func (s *Storage) Days() (map[string]models.Day, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	return s.state.Days, nil
}

// Timezone returns the document's IANA timezone name.
func (s *Storage) Timezone() (string, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", err
	}
	return s.state.Timezone, nil
}

// Settings returns the document's settings.
func (s *Storage) Settings() (models.Settings, error) {
	if err := s.ensureLoaded(); err != nil {
		return models.Settings{}, err
	}
	return *s.state.Settings, nil
}

func (s *Storage) location() *time.Location {
	return timeutil.Location(s.state.Timezone)
}

func (s *Storage) now() time.Time {
	return time.Now().In(s.location())
}

// resolveDate validates date when given and defaults it to today in the
// document's timezone otherwise. Requires loaded state.
func (s *Storage) resolveDate(date string) (string, error) {
	if date == "" {
		return timeutil.Today(s.location()), nil
	}
	return validation.DateString(date)
}

// checkStrictMode enforces the strict-mode rule for the given action against
// the target date. Each rule is independent; no-op when strict mode is off.
func (s *Storage) checkStrictMode(action strictAction, date string) error {
	if !s.state.Settings.StrictMode {
		return nil
	}

	switch action {
	case actionAdd:
		target, err := time.ParseInLocation(constants.DateFormat, date, s.location())
		if err != nil {
			return &validation.InvalidDateStringError{Value: date, Layout: constants.DateFormat}
		}
		now := s.now()
		todayMidnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location())
		if target.After(todayMidnight.AddDate(0, 0, 1)) {
			return &StrictModeViolationError{Rule: models.RuleForbidFutureDates}
		}
	case actionModify:
		if day, ok := s.state.Days[date]; ok && day.Status.IsComplete() {
			return &StrictModeViolationError{Rule: models.RuleForbidModifyingComplete}
		}
	case actionStatus:
		day, ok := s.state.Days[date]
		if !ok {
			return nil
		}
		today := timeutil.Today(s.location())
		flipped := func(ts *time.Time) bool {
			return ts != nil && ts.In(s.location()).Format(constants.DateFormat) == today
		}
		if flipped(day.CompletedAt) || flipped(day.SkippedAt) {
			return &StrictModeViolationError{Rule: models.RuleForbidMultipleStatusFlips}
		}
	}
	return nil
}

// AddDay inserts a commitment at date (default today). Force overwrites an
// existing record instead of failing with ErrDayCollision.
func (s *Storage) AddDay(data models.Day, date string, force bool) (models.Day, error) {
	if err := s.ensureLoaded(); err != nil {
		return models.Day{}, err
	}

	date, err := s.resolveDate(date)
	if err != nil {
		return models.Day{}, err
	}

	if err := s.checkStrictMode(actionAdd, date); err != nil {
		return models.Day{}, err
	}

	if _, exists := s.state.Days[date]; exists && !force {
		return models.Day{}, ErrDayCollision
	}

	data.Title = strings.TrimRight(data.Title, " \t")
	if data.Note != nil {
		data.Note = normalizeNote(*data.Note)
	}
	now := s.now()
	data.CreatedAt = &now

	s.logger.Debug("adding day data", "date", date)
	s.state.Days[date] = data
	if err := s.saveState(); err != nil {
		return models.Day{}, err
	}
	return data, nil
}

// GetDay returns the resolved date and the stored day, or nil when unset.
func (s *Storage) GetDay(date string) (string, *models.Day, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", nil, err
	}

	date, err := s.resolveDate(date)
	if err != nil {
		return "", nil, err
	}

	s.logger.Debug("getting data", "date", date)
	if day, ok := s.state.Days[date]; ok {
		return date, &day, nil
	}
	return date, nil, nil
}

// CompleteDay transitions a day to done, or skipped when skipped is true,
// stamping the corresponding timestamp.
//
// Only an already-done day is rejected with ErrDayDone; completing an
// already-skipped day re-stamps completed_at without clearing skipped_at.
// That asymmetry is long-standing behavior and is kept deliberately.
func (s *Storage) CompleteDay(date string, skipped bool) (string, models.Day, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", models.Day{}, err
	}

	date, err := s.resolveDate(date)
	if err != nil {
		return "", models.Day{}, err
	}

	if err := s.checkStrictMode(actionStatus, date); err != nil {
		return "", models.Day{}, err
	}

	day, ok := s.state.Days[date]
	if !ok {
		return "", models.Day{}, ErrDayUnset
	}
	if day.Status == models.StatusDone {
		return "", models.Day{}, ErrDayDone
	}

	now := s.now()
	if skipped {
		s.logger.Debug("updating day status", "date", date, "status", models.StatusSkipped)
		day.Status = models.StatusSkipped
		day.SkippedAt = &now
	} else {
		s.logger.Debug("updating day status", "date", date, "status", models.StatusDone)
		day.Status = models.StatusDone
		day.CompletedAt = &now
	}

	s.state.Days[date] = day
	if err := s.saveState(); err != nil {
		return "", models.Day{}, err
	}
	return date, day, nil
}

// AddNote attaches a note to an existing day. A blank message clears it.
func (s *Storage) AddNote(message string, date string) error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}

	date, err := s.resolveDate(date)
	if err != nil {
		return err
	}

	if err := s.checkStrictMode(actionModify, date); err != nil {
		return err
	}

	day, ok := s.state.Days[date]
	if !ok {
		return ErrDayUnset
	}

	day.Note = normalizeNote(message)
	s.state.Days[date] = day
	return s.saveState()
}

// ModifyDay replaces an existing day's title.
func (s *Storage) ModifyDay(newTitle string, date string) (string, models.Day, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", models.Day{}, err
	}

	date, err := s.resolveDate(date)
	if err != nil {
		return "", models.Day{}, err
	}

	if err := s.checkStrictMode(actionModify, date); err != nil {
		return "", models.Day{}, err
	}

	day, ok := s.state.Days[date]
	if !ok {
		return "", models.Day{}, ErrDayUnset
	}

	day.Title = strings.TrimRight(newTitle, " \t")
	s.state.Days[date] = day
	if err := s.saveState(); err != nil {
		return "", models.Day{}, err
	}
	return date, day, nil
}

// ModifySettings replaces the settings wholesale.
func (s *Storage) ModifySettings(settings models.Settings) error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	s.state.Settings = &settings
	return s.saveState()
}

// GetMonthDays returns one entry per calendar day of a YYYY-MM month. Dates
// without a stored record get a placeholder with status "-".
func (s *Storage) GetMonthDays(month string) (map[string]models.Day, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	month, err := validation.MonthString(month)
	if err != nil {
		return nil, err
	}
	length, err := timeutil.MonthLength(month)
	if err != nil {
		return nil, err
	}

	days := make(map[string]models.Day, length)
	for i := 1; i <= length; i++ {
		key := fmt.Sprintf("%s-%02d", month, i)
		if day, ok := s.state.Days[key]; ok {
			days[key] = day
			continue
		}
		now := s.now()
		days[key] = models.Day{
			Title:     constants.NoCommitmentTitle,
			Status:    models.StatusNull,
			CreatedAt: &now,
		}
	}
	return days, nil
}

// normalizeNote trims trailing whitespace and maps blank notes to absent.
func normalizeNote(message string) *string {
	trimmed := strings.TrimRight(message, " \t")
	if strings.TrimSpace(trimmed) == "" {
		return nil
	}
	return &trimmed
}
