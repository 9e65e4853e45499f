package ui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/termkit/internal/terminal"
)

// Semantic colors use ANSI palette indices so they follow the user's theme
// and map one-to-one onto terminal.Color.
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// SinkColor converts a lipgloss palette color to the terminal.Color drawn by
// the progress renderers. Anything outside the 16-color palette (hex values,
// 256-color indices) maps to terminal.ColorDefault.
func SinkColor(c lipgloss.Color) terminal.Color {
	idx, err := strconv.Atoi(string(c))
	if err != nil {
		return terminal.ColorDefault
	}
	return terminal.ColorFromANSI(idx)
}

// DisableColors switches lipgloss rendering to plain text (for --no-color).
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
