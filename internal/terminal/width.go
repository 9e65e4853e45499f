package terminal

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
)

// StringWidth returns the number of terminal cells s occupies. Wide
// characters such as CJK ideographs and most emoji take two cells.
func StringWidth(s string) int {
	return ansi.StringWidth(s)
}

// Truncate cuts s to at most width cells so it never wraps.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "")
}

// Cursor tracks where printed text leaves the cursor on a terminal with
// deferred wrap: a character that does not fit on the current row moves to
// column 0 of the next one. Sinks use it to keep their row count in step
// with the terminal.
type Cursor struct {
	Row int
	Col int
}

// Advance moves c over text on a width-column terminal; width <= 0 never
// wraps. visit, when not nil, is called with the position and cell width of
// every printed grapheme cluster.
func (c *Cursor) Advance(text string, width int, visit func(cluster string, row, col, cells int)) {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		switch cluster := g.Str(); cluster {
		case "\n", "\r\n":
			c.Row++
			c.Col = 0
		case "\r":
			c.Col = 0
		default:
			cells := g.Width()
			if cells == 0 {
				continue
			}
			if width > 0 && c.Col+cells > width {
				c.Row++
				c.Col = 0
			}
			if visit != nil {
				visit(cluster, c.Row, c.Col, cells)
			}
			c.Col += cells
		}
	}
}
