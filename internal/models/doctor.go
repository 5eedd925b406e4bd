package models

import (
	"strconv"
	"strings"
)

// Remedy names the external action needed when the doctor cannot self-heal.
type Remedy string

const (
	RemedyInitStorage      Remedy = "init_storage"
	RemedyForceInitStorage Remedy = "force_init_storage"
	RemedyLoadState        Remedy = "load_state"
	RemedyMigrateState     Remedy = "migrate_state"
)

// DoctorResult is the outcome of one doctor run.
//
// Exit codes:
//
//	0: no issues found or all issues auto-fixed
//	1: non-critical issues requiring manual attention or a migration
//	2: structurally invalid file, force re-init required
//	3: state file missing, init required
type DoctorResult struct {
	ExitCode   int
	Autofixed  []string
	Unresolved []string
	BackupPath string
	Remedy     Remedy
}

// HasIssues reports whether the run surfaced anything at all.
func (r *DoctorResult) HasIssues() bool {
	return len(r.Autofixed) > 0 || len(r.Unresolved) > 0
}

// GenerateReport renders the human-readable doctor report.
func (r *DoctorResult) GenerateReport() string {
	var b strings.Builder

	b.WriteString("State file checked.\n\n")

	if len(r.Autofixed) > 0 {
		b.WriteString("Auto-fixed:\n")
		for _, item := range r.Autofixed {
			b.WriteString("- " + item + "\n")
		}
	} else {
		b.WriteString("No auto-fixes applied.\n")
	}
	b.WriteString("\n")

	if len(r.Unresolved) > 0 {
		b.WriteString("Unresolved issues:\n")
		for _, item := range r.Unresolved {
			b.WriteString("- " + item + "\n")
		}
	} else {
		b.WriteString("No unresolved issues.\n")
	}
	b.WriteString("\n")

	if r.BackupPath != "" {
		b.WriteString("Backup created at:\n")
		b.WriteString(r.BackupPath + "\n\n")
	}

	if r.Remedy != "" {
		b.WriteString("Manual intervention required. No destructive changes applied. ")
		b.WriteString("(Remediation code: " + string(r.Remedy) + ")\n")
	} else {
		b.WriteString("No manual intervention needed.\n")
	}

	b.WriteString("\nExit code: " + strconv.Itoa(r.ExitCode) + "\n")

	return b.String()
}
