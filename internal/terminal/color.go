package terminal

import (
	"strings"

	"github.com/muesli/termenv"
	"github.com/rileyhilliard/termkit/internal/errors"
)

// Color is one of the 16 standard terminal colors, or ColorDefault.
// The zero value means "no override".
type Color int

const (
	ColorDefault Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	Gray // bright black
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var colorNames = [...]string{
	ColorDefault:  "default",
	Black:         "black",
	Red:           "red",
	Green:         "green",
	Yellow:        "yellow",
	Blue:          "blue",
	Magenta:       "magenta",
	Cyan:          "cyan",
	White:         "white",
	Gray:          "gray",
	BrightRed:     "bright-red",
	BrightGreen:   "bright-green",
	BrightYellow:  "bright-yellow",
	BrightBlue:    "bright-blue",
	BrightMagenta: "bright-magenta",
	BrightCyan:    "bright-cyan",
	BrightWhite:   "bright-white",
}

func (c Color) String() string {
	if c < ColorDefault || int(c) >= len(colorNames) {
		return "unknown"
	}
	return colorNames[c]
}

// ANSIIndex returns the 0-15 ANSI palette index, or -1 for ColorDefault.
func (c Color) ANSIIndex() int {
	if c <= ColorDefault || int(c) >= len(colorNames) {
		return -1
	}
	return int(c) - 1
}

func (c Color) termenv() termenv.Color {
	idx := c.ANSIIndex()
	if idx < 0 {
		return termenv.NoColor{}
	}
	return termenv.ANSIColor(idx)
}

// ParseColor resolves a color name such as "green", "bright_blue" or "grey".
// Matching ignores case and treats '_' and ' ' like '-'.
func ParseColor(name string) (Color, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)
	switch norm {
	case "", "none":
		return ColorDefault, nil
	case "grey", "bright-black", "dark-gray", "dark-grey":
		return Gray, nil
	}
	for i, n := range colorNames {
		if n == norm {
			return Color(i), nil
		}
	}
	return ColorDefault, errors.New(errors.ErrInvalidArgument,
		"Unknown color '"+name+"'",
		"Use one of: "+strings.Join(colorNames[:], ", "))
}

// ColorFromANSI maps a 0-15 palette index to a Color. Out-of-range values map
// to ColorDefault.
func ColorFromANSI(idx int) Color {
	if idx < 0 || idx > 15 {
		return ColorDefault
	}
	return Color(idx + 1)
}
