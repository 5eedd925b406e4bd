package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/julianstephens/ot/internal/models"
	"github.com/julianstephens/ot/internal/storage"
)

// Context carries the long-lived collaborators into every command. The
// storage engine is constructed once in main and passed by handle; commands
// never build their own.
type Context struct {
	Store     *storage.Storage
	Logger    *log.Logger
	StatePath string
	BackupDir string
}

// ExitError carries a specific process exit code out of a command; main
// unwraps it instead of defaulting to 1.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

var (
	successStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("2")).
			Padding(0, 1)
	errorStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("1")).
			Padding(0, 1)
	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("3")).
			Bold(true)
)

func printSuccess(message string) {
	fmt.Println(successStyle.Render(message))
}

// PrintError renders an error panel; exported for main's fallback handler.
func PrintError(message string) {
	fmt.Println(errorStyle.Render(message))
}

func printWarning(message string) {
	fmt.Println(warningStyle.Render("⚠ " + message))
}

func describeDate(date string) string {
	if date == "" {
		return "today"
	}
	return date
}

// promptSetCommitment interactively asks for today's commitment and stores
// it. Returns nil without error when the user aborts the prompt.
func promptSetCommitment(store *storage.Storage) (*models.Day, error) {
	var title string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("What is your one thing today?").
			Value(&title).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("title cannot be empty")
				}
				return nil
			}),
	))
	if err := form.Run(); err != nil {
		if err == huh.ErrUserAborted {
			return nil, nil
		}
		return nil, err
	}

	day, err := store.AddDay(models.NewDay(strings.TrimSpace(title)), "", false)
	if err != nil {
		return nil, err
	}
	return &day, nil
}
