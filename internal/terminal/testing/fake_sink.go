// Package testing provides test doubles for the terminal package.
package testing

import (
	"strings"
	"sync"

	"github.com/rileyhilliard/termkit/internal/terminal"
)

// Cell is one column on the fake screen. The columns covered by the right
// half of a wide character have Ch == 0.
type Cell struct {
	Ch rune
	FG terminal.Color
	BG terminal.Color
}

// WriteCall records a call to Write.
type WriteCall struct {
	Text   string
	Row    int
	Column int
	FG     terminal.Color
	BG     terminal.Color
}

// FakeSink is an in-memory terminal. Rows grow on demand and never scroll.
// Writing past the last column wraps to the next row, but only when another
// character arrives, matching the deferred wrap of real terminals.
type FakeSink struct {
	mu sync.Mutex

	// Width is the value reported by BufferWidth. Tests may change it
	// between calls to simulate a resize.
	Width int

	rows [][]Cell
	row  int
	col  int
	fg   terminal.Color
	bg   terminal.Color

	// Call tracking
	Writes        []WriteCall
	ResetCalls    int
	CursorMoves   int
	LineBreaks    int
	WidthQueries  int
	ColorsAtReset []ColorState
	CursorHidden  bool
	HideCalls     int
}

// ColorState is the color state observed at a point in time.
type ColorState struct {
	FG terminal.Color
	BG terminal.Color
}

// NewFakeSink creates a fake terminal with the given width.
func NewFakeSink(width int) *FakeSink {
	return &FakeSink{Width: width}
}

func (f *FakeSink) ensureRow(row int) {
	for len(f.rows) <= row {
		f.rows = append(f.rows, nil)
	}
}

// put stores cluster at row, col. A wide cluster fills its first cell and
// marks the rest as continuation cells (Ch == 0).
func (f *FakeSink) put(cluster string, row, col, cells int) {
	f.ensureRow(row)
	line := f.rows[row]
	for len(line) < col+cells {
		line = append(line, Cell{Ch: ' '})
	}
	line[col] = Cell{Ch: []rune(cluster)[0], FG: f.fg, BG: f.bg}
	for i := 1; i < cells; i++ {
		line[col+i] = Cell{FG: f.fg, BG: f.bg}
	}
	f.rows[row] = line
}

func (f *FakeSink) Write(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Writes = append(f.Writes, WriteCall{Text: text, Row: f.row, Column: f.col, FG: f.fg, BG: f.bg})
	pos := terminal.Cursor{Row: f.row, Col: f.col}
	pos.Advance(text, f.Width, f.put)
	f.row, f.col = pos.Row, pos.Col
}

func (f *FakeSink) WriteLine() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LineBreaks++
	f.row++
	f.col = 0
	f.ensureRow(f.row)
}

func (f *FakeSink) CursorRow() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.row
}

// CursorColumn returns the column the cursor is on.
func (f *FakeSink) CursorColumn() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.col
}

func (f *FakeSink) SetCursorPosition(column, row int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CursorMoves++
	f.row = row
	f.col = column
}

func (f *FakeSink) BufferWidth() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.WidthQueries++
	return f.Width
}

func (f *FakeSink) SetForeground(c terminal.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fg = c
}

func (f *FakeSink) SetBackground(c terminal.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bg = c
}

func (f *FakeSink) ResetColors() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ColorsAtReset = append(f.ColorsAtReset, ColorState{FG: f.fg, BG: f.bg})
	f.ResetCalls++
	f.fg = terminal.ColorDefault
	f.bg = terminal.ColorDefault
}

func (f *FakeSink) HideCursor() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CursorHidden = true
	f.HideCalls++
}

func (f *FakeSink) ShowCursor() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CursorHidden = false
}

// Colors returns the current color state.
func (f *FakeSink) Colors() ColorState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return ColorState{FG: f.fg, BG: f.bg}
}

// Line returns the visible text of row with trailing spaces removed. Wide
// characters appear once.
func (f *FakeSink) Line(row int) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if row < 0 || row >= len(f.rows) {
		return ""
	}
	var b strings.Builder
	for _, c := range f.rows[row] {
		if c.Ch != 0 {
			b.WriteRune(c.Ch)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// Cells returns a copy of the cells on row.
func (f *FakeSink) Cells(row int) []Cell {
	f.mu.Lock()
	defer f.mu.Unlock()
	if row < 0 || row >= len(f.rows) {
		return nil
	}
	out := make([]Cell, len(f.rows[row]))
	copy(out, f.rows[row])
	return out
}

// Screen returns every row as Line would.
func (f *FakeSink) Screen() []string {
	f.mu.Lock()
	n := len(f.rows)
	f.mu.Unlock()

	lines := make([]string, n)
	for i := range lines {
		lines[i] = f.Line(i)
	}
	return lines
}

// WriteCount returns the number of Write calls so far.
func (f *FakeSink) WriteCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Writes)
}

// WriteLog returns a copy of the recorded Write calls.
func (f *FakeSink) WriteLog() []WriteCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]WriteCall, len(f.Writes))
	copy(out, f.Writes)
	return out
}
