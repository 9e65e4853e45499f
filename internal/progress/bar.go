package progress

import (
	"fmt"
	"math"
	"strings"

	"github.com/rileyhilliard/termkit/internal/terminal"
)

// DefaultMargin is the number of columns reserved for the brackets and the
// percentage text: "[" + "]" + " 100.00%".
const DefaultMargin = 10

// CalculateBarCounts returns the number of filled and empty columns for a bar
// of width columns. Percent should be 0-100.
func CalculateBarCounts(percent float64, width int) (filled, empty int) {
	if width <= 0 {
		return 0, 0
	}
	filled = int(math.Floor(float64(width) * percent / 100))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	empty = width - filled
	return
}

// Bar redraws a determinate progress bar in place. The bar starts at the
// cursor row of the first Update; every Update returns the cursor there.
type Bar struct {
	term   terminal.Sink
	margin int

	// lines drawn by the previous Update, so a dropped header is erased too.
	lines int
}

// BarOption configures a Bar.
type BarOption func(*Bar)

// WithMargin overrides DefaultMargin.
func WithMargin(columns int) BarOption {
	return func(b *Bar) {
		if columns >= 0 {
			b.margin = columns
		}
	}
}

// NewBar creates a bar that draws on term.
func NewBar(term terminal.Sink, opts ...BarOption) *Bar {
	b := &Bar{
		term:   term,
		margin: DefaultMargin,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Update blanks the rows of the previous draw, draws d, and moves the cursor
// back to the starting row. The bar width is derived from the terminal width
// on every call.
func (b *Bar) Update(d Display) {
	width := b.term.BufferWidth()
	barWidth := width - b.margin
	if barWidth < 0 {
		barWidth = 0
	}
	// A wide fill character covers several columns; the bar still spans
	// exactly barWidth columns.
	fillCells := max(terminal.StringWidth(string(d.fillChar)), 1)
	filled, _ := CalculateBarCounts(d.percentage, barWidth/fillCells)
	empty := barWidth - filled*fillCells

	header := strings.TrimSpace(d.header)
	lines := 1
	if header != "" {
		lines = 2
	}

	start := b.term.CursorRow()
	b.blank(start, max(lines, b.lines))
	b.term.SetCursorPosition(0, start)

	terminal.WithColors(b.term, d.foreground, terminal.ColorDefault, func() {
		if header != "" {
			b.term.Write(terminal.Truncate(d.header, width))
			b.term.WriteLine()
		}
		b.term.Write("[")
	})
	terminal.WithColors(b.term, d.fillColor, terminal.ColorDefault, func() {
		b.term.Write(strings.Repeat(string(d.fillChar), filled))
	})
	terminal.WithColors(b.term, d.foreground, terminal.ColorDefault, func() {
		b.term.Write(strings.Repeat(" ", empty) + "] " + formatPercent(d.percentage))
	})

	b.term.SetCursorPosition(0, start)
	b.lines = lines
}

// Finish moves the cursor below the last drawn bar so later output does not
// overwrite it. The next Update starts a new bar.
func (b *Bar) Finish() {
	for i := 0; i < b.lines; i++ {
		b.term.WriteLine()
	}
	b.lines = 0
}

// blank clears n rows starting at start. Rows past the first are reached
// with line breaks so a bar on the last screen row scrolls instead of
// failing to move down.
func (b *Bar) blank(start, n int) {
	for i := 0; i < n; i++ {
		if i > 0 {
			b.term.WriteLine()
		}
		terminal.ClearLine(b.term, start+i)
	}
}

func formatPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}
