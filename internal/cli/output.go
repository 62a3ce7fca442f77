package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mesh-intelligence/reditus/internal/program"
)

// dateLayout is the calendar date format used in output and arguments.
const dateLayout = "2006-01-02"

var (
	green = lipgloss.Color("#a6e3a1")
	peach = lipgloss.Color("#fab387")

	titleStyle        = lipgloss.NewStyle().Bold(true)
	sufficientStyle   = lipgloss.NewStyle().Foreground(green).Bold(true)
	insufficientStyle = lipgloss.NewStyle().Foreground(peach).Bold(true)
)

// weeklyStyle returns the style for a weekly classification.
func weeklyStyle(c program.WeeklyClass) lipgloss.Style {
	if c == program.WeeklySufficient {
		return sufficientStyle
	}
	return insufficientStyle
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysError(fmt.Errorf("marshal JSON: %w", err))
	}
	fmt.Fprintln(w, string(out))
	return nil
}

func checkMark(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
