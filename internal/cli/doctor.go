package cli

import (
	"fmt"

	"github.com/julianstephens/ot/internal/doctor"
)

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *Context) error {
	svc := doctor.NewService(ctx.StatePath, ctx.BackupDir, ctx.Logger)
	result := svc.Run()

	ctx.Logger.Debug("doctor run finished", "remedy", result.Remedy, "exit_code", result.ExitCode)

	report := result.GenerateReport()
	if result.ExitCode == 0 {
		printSuccess(report)
		return nil
	}

	fmt.Println(report)
	return &ExitError{Code: result.ExitCode}
}
