package terminal

import (
	"io"

	"github.com/muesli/termenv"
	"github.com/rileyhilliard/termkit/internal/logger"
	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal or its size cannot be read.
const DefaultWidth = 80

// ANSI is a Sink that drives a terminal with escape sequences.
// Rows are counted from creation; see the package docs.
type ANSI struct {
	out      *termenv.Output
	fd       int
	fallback int
	log      logger.Logger

	pos Cursor
}

// Option configures an ANSI sink.
type Option func(*ansiConfig)

type ansiConfig struct {
	profile  *termenv.Profile
	fallback int
	log      logger.Logger
}

// WithProfile forces a color profile instead of detecting one from the
// environment. termenv.Ascii disables colors entirely.
func WithProfile(p termenv.Profile) Option {
	return func(c *ansiConfig) { c.profile = &p }
}

// WithFallbackWidth sets the width reported when the size cannot be read.
func WithFallbackWidth(w int) Option {
	return func(c *ansiConfig) { c.fallback = w }
}

// WithLogger sets the logger used for swallowed write errors.
func WithLogger(l logger.Logger) Option {
	return func(c *ansiConfig) { c.log = l }
}

type fder interface {
	Fd() uintptr
}

// NewANSI creates a sink writing to w. When w is a terminal its width is
// queried on every BufferWidth call.
func NewANSI(w io.Writer, opts ...Option) *ANSI {
	cfg := ansiConfig{
		fallback: DefaultWidth,
		log:      logger.NewEnvLogger("[terminal]"),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var outOpts []termenv.OutputOption
	if cfg.profile != nil {
		outOpts = append(outOpts, termenv.WithProfile(*cfg.profile))
	}

	fd := -1
	if f, ok := w.(fder); ok && term.IsTerminal(int(f.Fd())) {
		fd = int(f.Fd())
	}

	return &ANSI{
		out:      termenv.NewOutput(w, outOpts...),
		fd:       fd,
		fallback: cfg.fallback,
		log:      cfg.log,
	}
}

// IsTerminal reports whether the sink writes to a terminal.
func (a *ANSI) IsTerminal() bool {
	return a.fd >= 0
}

func (a *ANSI) raw(s string) {
	if _, err := a.out.WriteString(s); err != nil {
		a.log.Debug("write failed: %v", err)
	}
}

// Write writes text and advances the tracked cursor by display cells,
// counting the rows the terminal wraps onto.
func (a *ANSI) Write(text string) {
	a.raw(text)
	a.pos.Advance(text, a.BufferWidth(), nil)
}

func (a *ANSI) WriteLine() {
	a.Write("\n")
}

func (a *ANSI) CursorRow() int {
	return a.pos.Row
}

// SetCursorPosition moves relative to the tracked position. Moving down
// only works for rows that have already been reached.
func (a *ANSI) SetCursorPosition(column, row int) {
	if column < 0 {
		column = 0
	}
	switch {
	case row < a.pos.Row:
		a.out.CursorUp(a.pos.Row - row)
	case row > a.pos.Row:
		a.out.CursorDown(row - a.pos.Row)
	}
	a.raw("\r")
	if column > 0 {
		a.out.CursorForward(column)
	}
	a.pos = Cursor{Row: row, Col: column}
}

func (a *ANSI) BufferWidth() int {
	if a.fd >= 0 {
		if w, _, err := term.GetSize(a.fd); err == nil && w > 0 {
			return w
		}
	}
	return a.fallback
}

func (a *ANSI) SetForeground(c Color) {
	a.setColor(c, false)
}

func (a *ANSI) SetBackground(c Color) {
	a.setColor(c, true)
}

func (a *ANSI) setColor(c Color, bg bool) {
	if a.out.Profile == termenv.Ascii {
		return
	}
	if c == ColorDefault {
		if bg {
			a.raw(termenv.CSI + "49m")
		} else {
			a.raw(termenv.CSI + "39m")
		}
		return
	}
	seq := a.out.Profile.Convert(c.termenv()).Sequence(bg)
	if seq == "" {
		return
	}
	a.raw(termenv.CSI + seq + "m")
}

func (a *ANSI) ResetColors() {
	if a.out.Profile == termenv.Ascii {
		return
	}
	a.raw(termenv.CSI + termenv.ResetSeq + "m")
}

// ClearLine erases row with the terminal's native erase-line sequence and
// leaves the cursor at its first column.
func (a *ANSI) ClearLine(row int) {
	a.SetCursorPosition(0, row)
	a.out.ClearLine()
}

// HideCursor hides the terminal cursor while an animation runs.
func (a *ANSI) HideCursor() {
	a.out.HideCursor()
}

// ShowCursor restores the terminal cursor.
func (a *ANSI) ShowCursor() {
	a.out.ShowCursor()
}
