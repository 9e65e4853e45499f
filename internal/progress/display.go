package progress

import (
	"math"
	"unicode"

	"github.com/rileyhilliard/termkit/internal/errors"
	"github.com/rileyhilliard/termkit/internal/terminal"
)

// DefaultFillChar is used when DisplayConfig.FillChar is zero.
const DefaultFillChar = '█'

// DisplayConfig is the caller-facing description of one bar redraw.
type DisplayConfig struct {
	Header     string  // Status line above the bar; blank means no header
	Percentage float64 // 0-100 inclusive
	FillChar   rune    // Character for the filled run; zero means DefaultFillChar
	Foreground terminal.Color
	FillColor  terminal.Color
}

// Display is a validated DisplayConfig. Build one per Update with NewDisplay.
type Display struct {
	header     string
	percentage float64
	fillChar   rune
	foreground terminal.Color
	fillColor  terminal.Color
}

// NewDisplay validates cfg. It returns an ErrOutOfRange error when the
// percentage is outside [0,100] (or NaN) and an ErrInvalidArgument error when
// the fill character is whitespace or a control character.
func NewDisplay(cfg DisplayConfig) (Display, error) {
	if math.IsNaN(cfg.Percentage) || cfg.Percentage < 0 || cfg.Percentage > 100 {
		return Display{}, errors.Newf(errors.ErrOutOfRange,
			"Percentage %.2f is outside 0-100", cfg.Percentage)
	}

	fill := cfg.FillChar
	if fill == 0 {
		fill = DefaultFillChar
	}
	if unicode.IsSpace(fill) || unicode.IsControl(fill) {
		return Display{}, errors.New(errors.ErrInvalidArgument,
			"Fill character cannot be blank",
			"A blank fill is indistinguishable from the empty part of the bar; use a visible character such as '█' or '#'")
	}

	return Display{
		header:     cfg.Header,
		percentage: cfg.Percentage,
		fillChar:   fill,
		foreground: cfg.Foreground,
		fillColor:  cfg.FillColor,
	}, nil
}

func (d Display) Header() string { return d.header }
func (d Display) Percentage() float64 { return d.percentage }
func (d Display) FillChar() rune { return d.fillChar }
func (d Display) Foreground() terminal.Color { return d.foreground }
func (d Display) FillColor() terminal.Color { return d.fillColor }
