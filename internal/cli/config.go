package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/ot/internal/models"
	"github.com/julianstephens/ot/internal/storage"
)

// ConfigCmd exposes one subcommand per settings field so the set of valid
// keys is closed at build time.
type ConfigCmd struct {
	View ConfigViewCmd `cmd:"" help:"View current configuration settings."`
	Set  struct {
		AutoPromptOnEmpty ConfigSetAutoPromptCmd `cmd:"" name:"auto-prompt-on-empty" help:"Prompt when today has no commitment."`
		StrictMode        ConfigSetStrictModeCmd `cmd:"" name:"strict-mode" help:"Enable or disable strict mode."`
		DefaultLogDays    ConfigSetLogDaysCmd    `cmd:"" name:"default-log-days" help:"Default number of days in the log view."`
		MaxBackupFiles    ConfigSetMaxBackupsCmd `cmd:"" name:"max-backup-files" help:"Number of backup files to retain."`
	} `cmd:"" help:"Set a configuration option."`
}

type ConfigViewCmd struct{}

func (c *ConfigViewCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.Settings()
	if err != nil {
		if errors.Is(err, storage.ErrNotInitialized) {
			PrintError("Storage is not initialized. Please run 'ot init' first.")
			return &ExitError{Code: 1}
		}
		PrintError(fmt.Sprintf("Error retrieving settings: %v", err))
		return &ExitError{Code: 1}
	}

	fmt.Println("Current Configuration Settings:")
	fmt.Printf("  Default Log Days      : %d\n", settings.DefaultLogDays)
	fmt.Printf("  Auto Prompt on Empty  : %t\n", settings.AutoPromptOnEmpty)
	fmt.Printf("  Strict Mode           : %t\n", settings.StrictMode)
	fmt.Printf("  Max Backup Files      : %d\n", settings.MaxBackupFiles)
	return nil
}

func updateSettings(ctx *Context, key string, apply func(*models.Settings) error) error {
	settings, err := ctx.Store.Settings()
	if err != nil {
		if errors.Is(err, storage.ErrNotInitialized) {
			PrintError("Storage is not initialized. Please run 'ot init' first.")
			return &ExitError{Code: 1}
		}
		return err
	}

	if err := apply(&settings); err != nil {
		PrintError(err.Error())
		return &ExitError{Code: 1}
	}
	if err := ctx.Store.ModifySettings(settings); err != nil {
		PrintError(fmt.Sprintf("Error setting %s: %v", key, err))
		return &ExitError{Code: 1}
	}

	printSuccess(fmt.Sprintf("Configuration '%s' updated successfully.", key))
	return nil
}

type ConfigSetAutoPromptCmd struct {
	Value bool `arg:"" help:"true or false."`
}

func (c *ConfigSetAutoPromptCmd) Run(ctx *Context) error {
	return updateSettings(ctx, "auto_prompt_on_empty", func(s *models.Settings) error {
		s.AutoPromptOnEmpty = c.Value
		return nil
	})
}

type ConfigSetStrictModeCmd struct {
	Value bool `arg:"" help:"true or false."`
}

func (c *ConfigSetStrictModeCmd) Run(ctx *Context) error {
	return updateSettings(ctx, "strict_mode", func(s *models.Settings) error {
		s.StrictMode = c.Value
		return nil
	})
}

type ConfigSetLogDaysCmd struct {
	Value int `arg:"" help:"Number of days, at least 1."`
}

func (c *ConfigSetLogDaysCmd) Run(ctx *Context) error {
	return updateSettings(ctx, "default_log_days", func(s *models.Settings) error {
		if c.Value < 1 {
			return errors.New("please enter a valid positive integer for days")
		}
		s.DefaultLogDays = c.Value
		return nil
	})
}

type ConfigSetMaxBackupsCmd struct {
	Value int `arg:"" help:"Number of backup files to keep, at least 1."`
}

func (c *ConfigSetMaxBackupsCmd) Run(ctx *Context) error {
	return updateSettings(ctx, "max_backup_files", func(s *models.Settings) error {
		if c.Value < 1 {
			return errors.New("please enter a valid positive integer for backup files")
		}
		s.MaxBackupFiles = c.Value
		return nil
	})
}
