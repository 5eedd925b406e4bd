package cli

import (
	"fmt"
	"path/filepath"

	"github.com/julianstephens/ot/internal/backup"
)

func backupService(ctx *Context) *backup.Service {
	maxFiles := 0
	if settings, err := ctx.Store.Settings(); err == nil {
		maxFiles = settings.MaxBackupFiles
	}
	return backup.NewService(ctx.StatePath, ctx.BackupDir, maxFiles, ctx.Logger)
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	svc := backupService(ctx)
	backupPath, err := svc.CreateBackup()
	if err != nil {
		PrintError(fmt.Sprintf("Backup failed: %v", err))
		return &ExitError{Code: 1}
	}

	printSuccess(fmt.Sprintf("Backup created: %s", filepath.Base(backupPath)))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	svc := backupService(ctx)
	backups, err := svc.ListBackups()
	if err != nil {
		PrintError(fmt.Sprintf("Failed to list backups: %v", err))
		return &ExitError{Code: 1}
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		fmt.Printf("Backups are stored in: %s\n", svc.BackupDir())
		return nil
	}

	fmt.Printf("Available backups (%d total):\n\n", len(backups))
	for _, b := range backups {
		sizeKB := float64(b.Size) / 1024.0
		fmt.Printf("  %s  %s  (%.1f KB)\n",
			b.ModTime.Format("2006-01-02 15:04:05"), filepath.Base(b.Path), sizeKB)
	}
	fmt.Printf("\nBackup directory: %s\n", svc.BackupDir())
	return nil
}
