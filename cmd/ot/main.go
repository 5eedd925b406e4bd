package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/julianstephens/ot/internal/cli"
	"github.com/julianstephens/ot/internal/constants"
	"github.com/julianstephens/ot/internal/storage"
)

var CLI struct {
	Version   kong.VersionFlag
	Debug     bool   `help:"Enable debug logging."`
	StateFile string `help:"Override the state file path." type:"path"`

	Init   cli.InitCmd   `cmd:"" help:"Initialize storage for commitments."`
	Set    cli.SetCmd    `cmd:"" aliases:"s" help:"Set the day's non-negotiable commitment."`
	Today  cli.TodayCmd  `cmd:"" aliases:"t" help:"Display a day's commitment."`
	Done   cli.DoneCmd   `cmd:"" help:"Mark a commitment as done."`
	Skip   cli.SkipCmd   `cmd:"" help:"Mark a commitment as skipped."`
	Note   cli.NoteCmd   `cmd:"" aliases:"n" help:"Add a note to a commitment."`
	Edit   cli.EditCmd   `cmd:"" aliases:"e" help:"Edit an existing commitment's title."`
	Log    cli.LogCmd    `cmd:"" help:"Display the commitment log."`
	Report cli.ReportCmd `cmd:"" help:"Generate a report of commitments."`
	Nudge  cli.NudgeCmd  `cmd:"" aliases:"r" help:"Remind about today's commitment."`
	Config cli.ConfigCmd `cmd:"" help:"View or update configuration."`
	Doctor cli.DoctorCmd `cmd:"" help:"Check and repair the storage state."`
	Backup struct {
		Create cli.BackupCreateCmd `cmd:"" help:"Create a backup of the state file."`
		List   cli.BackupListCmd   `cmd:"" help:"List available backups."`
	} `cmd:"" help:"Manage state file backups."`
}

func statePath() string {
	if CLI.StateFile != "" {
		return CLI.StateFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, constants.StateDirName, constants.StateFileName)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("ot"),
		kong.Description("CLI for choosing one non-negotiable commitment per day and tracking whether it happens"),
		kong.UsageOnError(),
		kong.Vars{"version": "v1.0.0"},
	)

	logger := log.New(os.Stderr)
	if CLI.Debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.FatalLevel)
	}

	path := statePath()
	appCtx := &cli.Context{
		Store:     storage.New(path, true, logger),
		Logger:    logger,
		StatePath: path,
		BackupDir: filepath.Join(filepath.Dir(path), constants.BackupDirName),
	}

	if err := ctx.Run(appCtx); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		cli.PrintError(fmt.Sprintf("Error: %v", err))
		os.Exit(1)
	}
}
