package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/julianstephens/ot/internal/constants"
)

// Info describes one backup file.
type Info struct {
	Path    string
	ModTime time.Time
	Size    int64
}

// Service copies the state file to timestamped backups and prunes old ones.
//
// CreateBackup is best-effort: a failed copy is reported through the returned
// error but must never abort the caller's larger workflow.
type Service struct {
	statePath      string
	backupDir      string
	maxBackupFiles int
	logger         *log.Logger
}

// NewService creates a backup service for the given state file.
func NewService(statePath, backupDir string, maxBackupFiles int, logger *log.Logger) *Service {
	if maxBackupFiles <= 0 {
		maxBackupFiles = constants.DefaultMaxBackupFiles
	}
	return &Service{
		statePath:      statePath,
		backupDir:      backupDir,
		maxBackupFiles: maxBackupFiles,
		logger:         logger.WithPrefix("backup"),
	}
}

// BackupDir returns the backup directory path.
func (s *Service) BackupDir() string {
	return s.backupDir
}

// SetMaxBackupFiles overrides the retention count.
func (s *Service) SetMaxBackupFiles(max int) {
	s.logger.Debug("setting max backup files", "from", s.maxBackupFiles, "to", max)
	s.maxBackupFiles = max
}

// CreateBackup copies the state file into the backup directory, creating it
// if absent, then prunes old backups. Returns the backup path.
func (s *Service) CreateBackup() (string, error) {
	s.logger.Debug("creating backup of state file")

	name := fmt.Sprintf("%s%s%s",
		constants.BackupFilePrefix,
		time.Now().Format(constants.BackupTimestampFormat),
		constants.BackupFileSuffix,
	)
	backupPath := filepath.Join(s.backupDir, name)

	if err := os.MkdirAll(s.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}
	if err := copyFile(s.statePath, backupPath); err != nil {
		s.logger.Warn("failed to create backup", "err", err)
		return "", err
	}

	s.CleanupOldBackups()
	s.logger.Debug("backup created", "path", backupPath)
	return backupPath, nil
}

// CleanupOldBackups deletes backup files beyond the retention count, newest
// first by modification time. A file vanishing between listing and deletion
// counts as already cleaned.
func (s *Service) CleanupOldBackups() {
	backups, err := s.ListBackups()
	if err != nil {
		s.logger.Warn("failed to list backups for cleanup", "err", err)
		return
	}

	s.logger.Debug("cleaning up old backup files", "found", len(backups), "max", s.maxBackupFiles)
	for i := s.maxBackupFiles; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			if os.IsNotExist(err) {
				s.logger.Debug("old backup already missing during cleanup", "path", backups[i].Path)
				continue
			}
			s.logger.Warn("failed to remove old backup", "path", backups[i].Path, "err", err)
		}
	}
}

// ListBackups returns all backup files sorted by modification time, newest
// first. A missing backup directory yields an empty list.
func (s *Service) ListBackups() ([]Info, error) {
	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Info{}, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:    filepath.Join(s.backupDir, name),
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].ModTime.After(backups[j].ModTime)
	})
	return backups, nil
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}

	return destFile.Sync()
}
