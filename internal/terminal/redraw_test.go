package terminal_test

import (
	"strings"
	"testing"

	"github.com/rileyhilliard/termkit/internal/terminal"
	termtest "github.com/rileyhilliard/termkit/internal/terminal/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearLine_BlanksOnlyTargetRow(t *testing.T) {
	sink := termtest.NewFakeSink(20)
	sink.Write("first line")
	sink.WriteLine()
	sink.Write("second line here")
	sink.WriteLine()
	sink.Write("third")

	terminal.ClearLine(sink, 1)

	assert.Equal(t, "first line", sink.Line(0))
	assert.Equal(t, "", sink.Line(1))
	assert.Equal(t, "third", sink.Line(2))
	assert.Equal(t, 1, sink.CursorRow())
	assert.Equal(t, 0, sink.CursorColumn())
}

func TestClearLine_UsesCurrentWidth(t *testing.T) {
	sink := termtest.NewFakeSink(10)
	terminal.ClearLine(sink, 0)

	sink.Width = 30
	sink.Write(strings.Repeat("x", 30))
	terminal.ClearLine(sink, 0)

	assert.Equal(t, "", sink.Line(0))
	log := sink.WriteLog()
	require.NotEmpty(t, log)
	assert.Len(t, log[len(log)-1].Text, 30)
}

func TestClearLine_ZeroWidth(t *testing.T) {
	sink := termtest.NewFakeSink(0)
	sink.Write("abc")

	terminal.ClearLine(sink, 0)

	assert.Equal(t, 1, sink.WriteCount(), "nothing written for a zero-width buffer")
	assert.Equal(t, 0, sink.CursorColumn())
}

func TestWithColors_RestoresDefaults(t *testing.T) {
	sink := termtest.NewFakeSink(20)

	terminal.WithColors(sink, terminal.Red, terminal.Blue, func() {
		assert.Equal(t, termtest.ColorState{FG: terminal.Red, BG: terminal.Blue}, sink.Colors())
		sink.Write("hi")
	})

	assert.Equal(t, termtest.ColorState{}, sink.Colors())
	assert.Equal(t, 1, sink.ResetCalls)
	cells := sink.Cells(0)
	require.Len(t, cells, 2)
	assert.Equal(t, terminal.Red, cells[0].FG)
	assert.Equal(t, terminal.Blue, cells[0].BG)
}

func TestWithColors_RestoresOnPanic(t *testing.T) {
	sink := termtest.NewFakeSink(20)

	assert.Panics(t, func() {
		terminal.WithColors(sink, terminal.Yellow, terminal.ColorDefault, func() {
			panic("write failed")
		})
	})

	assert.Equal(t, termtest.ColorState{}, sink.Colors())
	assert.Equal(t, 1, sink.ResetCalls)
}

func TestColored_WriteLine(t *testing.T) {
	sink := termtest.NewFakeSink(20)

	terminal.Text("ok", terminal.Green).WriteLine(sink)
	terminal.Colored{Text: "warn", Foreground: terminal.Black, Background: terminal.Yellow}.Write(sink)

	assert.Equal(t, "ok", sink.Line(0))
	assert.Equal(t, "warn", sink.Line(1))
	assert.Equal(t, terminal.Green, sink.Cells(0)[0].FG)
	assert.Equal(t, terminal.Yellow, sink.Cells(1)[0].BG)
	assert.Equal(t, termtest.ColorState{}, sink.Colors())
}
