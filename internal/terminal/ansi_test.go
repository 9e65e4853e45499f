package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/rileyhilliard/termkit/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestANSI(profile termenv.Profile) (*ANSI, *bytes.Buffer) {
	var buf bytes.Buffer
	a := NewANSI(&buf, WithProfile(profile), WithLogger(logger.Noop()))
	return a, &buf
}

func TestANSI_WriteTracksCursor(t *testing.T) {
	a, buf := newTestANSI(termenv.ANSI)

	a.Write("hello")
	assert.Equal(t, 0, a.CursorRow())

	a.WriteLine()
	a.Write("one\ntwo")
	assert.Equal(t, 2, a.CursorRow())
	assert.Equal(t, "hello\none\ntwo", buf.String())
}

func TestANSI_SetCursorPosition(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(a *ANSI)
		column int
		row    int
		want   string
	}{
		{
			name:   "same row resets column",
			setup:  func(a *ANSI) { a.Write("abc") },
			column: 0,
			row:    0,
			want:   "\r",
		},
		{
			name:   "moves up",
			setup:  func(a *ANSI) { a.Write("a\nb\nc") },
			column: 0,
			row:    0,
			want:   "\x1b[2A\r",
		},
		{
			name:   "moves down to a reached row",
			setup:  func(a *ANSI) { a.Write("a\nb"); a.SetCursorPosition(0, 0) },
			column: 0,
			row:    1,
			want:   "\x1b[1B\r",
		},
		{
			name:   "moves forward to column",
			setup:  func(a *ANSI) {},
			column: 4,
			row:    0,
			want:   "\r\x1b[4C",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, buf := newTestANSI(termenv.ANSI)
			tt.setup(a)
			buf.Reset()

			a.SetCursorPosition(tt.column, tt.row)

			assert.Equal(t, tt.want, buf.String())
			assert.Equal(t, tt.row, a.CursorRow())
		})
	}
}

func TestANSI_Colors(t *testing.T) {
	a, buf := newTestANSI(termenv.ANSI)

	a.SetForeground(Red)
	assert.Equal(t, "\x1b[31m", buf.String())

	buf.Reset()
	a.SetForeground(BrightGreen)
	assert.Equal(t, "\x1b[92m", buf.String())

	buf.Reset()
	a.SetBackground(Blue)
	assert.Equal(t, "\x1b[44m", buf.String())

	buf.Reset()
	a.SetForeground(ColorDefault)
	assert.Equal(t, "\x1b[39m", buf.String())

	buf.Reset()
	a.ResetColors()
	assert.Equal(t, "\x1b[0m", buf.String())
}

func TestANSI_AsciiProfileWritesNoColor(t *testing.T) {
	a, buf := newTestANSI(termenv.Ascii)

	a.SetForeground(Red)
	a.SetBackground(Blue)
	a.Write("plain")
	a.ResetColors()

	assert.Equal(t, "plain", buf.String())
}

func TestANSI_ClearLine(t *testing.T) {
	a, buf := newTestANSI(termenv.ANSI)
	a.Write("spinner")
	buf.Reset()

	ClearLine(a, 0)

	assert.Equal(t, "\r\x1b[2K", buf.String())
	assert.Equal(t, 0, a.CursorRow())
}

func TestANSI_CursorVisibility(t *testing.T) {
	a, buf := newTestANSI(termenv.ANSI)

	var _ CursorHider = a
	a.HideCursor()
	a.ShowCursor()

	assert.Equal(t, "\x1b[?25l\x1b[?25h", buf.String())
}

func TestANSI_WideTextTracksWrappedRows(t *testing.T) {
	var buf bytes.Buffer
	a := NewANSI(&buf, WithProfile(termenv.Ascii), WithFallbackWidth(20), WithLogger(logger.Noop()))

	a.Write(strings.Repeat("界", 10))
	assert.Equal(t, 0, a.CursorRow(), "twenty cells fill the row without wrapping")

	a.Write("界")
	assert.Equal(t, 1, a.CursorRow())

	a.Write(strings.Repeat("界", 25))
	assert.Equal(t, 3, a.CursorRow())

	buf.Reset()
	a.SetCursorPosition(0, 0)
	assert.Equal(t, "\x1b[3A\r", buf.String(), "moves back up over the wrapped rows")
}

func TestANSI_BufferWidthFallback(t *testing.T) {
	a, _ := newTestANSI(termenv.ANSI)
	assert.False(t, a.IsTerminal())
	assert.Equal(t, DefaultWidth, a.BufferWidth())

	var buf bytes.Buffer
	wide := NewANSI(&buf, WithFallbackWidth(132))
	assert.Equal(t, 132, wide.BufferWidth())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, assert.AnError
}

func TestANSI_WriteErrorsAreLogged(t *testing.T) {
	log := logger.NewBufferLogger()
	a := NewANSI(failingWriter{}, WithProfile(termenv.ANSI), WithLogger(log))

	require.NotPanics(t, func() { a.Write("x") })
	assert.True(t, log.HasLevel("debug"))
	assert.Equal(t, 0, a.CursorRow())
}
