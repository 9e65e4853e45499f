package terminal

// Sink is a terminal output target with cursor and color control.
// Implementations are not safe for concurrent use by multiple renderers.
type Sink interface {
	// Write writes text at the current cursor position.
	Write(text string)
	// WriteLine moves the cursor to column 0 of the next row.
	WriteLine()
	// CursorRow returns the row the cursor is on.
	CursorRow() int
	// SetCursorPosition moves the cursor to column, row.
	SetCursorPosition(column, row int)
	// BufferWidth returns the current width in columns. It is re-read on
	// every call so renderers follow terminal resizes.
	BufferWidth() int
	SetForeground(c Color)
	SetBackground(c Color)
	// ResetColors restores the terminal's default colors.
	ResetColors()
}

// LineClearer is implemented by sinks with a native erase-line operation.
// ClearLine prefers it over writing a run of spaces.
type LineClearer interface {
	ClearLine(row int)
}

// CursorHider is implemented by sinks that can hide the cursor. The spinner
// hides it while frames are drawn.
type CursorHider interface {
	HideCursor()
	ShowCursor()
}
