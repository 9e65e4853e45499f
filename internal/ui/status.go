package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Outcome is the final state of a command run under a progress display.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeFailed
	OutcomeCancelled
)

// RenderStatus renders the one-line result shown after a progress display
// finishes, e.g. "✓ make build 1.2s".
func RenderStatus(outcome Outcome, label string, elapsed time.Duration) string {
	var symbol string
	var style lipgloss.Style

	switch outcome {
	case OutcomeSuccess:
		symbol = SymbolSuccess
		style = lipgloss.NewStyle().Foreground(ColorSuccess)
	case OutcomeFailed:
		symbol = SymbolFail
		style = lipgloss.NewStyle().Foreground(ColorError)
	case OutcomeCancelled:
		symbol = SymbolSkipped
		style = lipgloss.NewStyle().Foreground(ColorWarning)
	default:
		symbol = SymbolPending
		style = lipgloss.NewStyle().Foreground(ColorMuted)
	}

	timingStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	return fmt.Sprintf("%s %s %s",
		style.Render(symbol),
		label,
		timingStyle.Render(FormatDuration(elapsed)),
	)
}

// FormatDuration formats a duration for display (e.g., "0.3s", "1.2s").
func FormatDuration(d time.Duration) string {
	secs := d.Seconds()
	if secs < 0.1 {
		return fmt.Sprintf("%.2fs", secs)
	}
	return fmt.Sprintf("%.1fs", secs)
}
