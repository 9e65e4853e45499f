package terminal

import "sync"

// linePool holds blank-line buffers reused across redraws.
var linePool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 256)
		return &b
	},
}

// ClearLine blanks row without touching the rows around it and leaves the
// cursor at column 0 of that row.
func ClearLine(s Sink, row int) {
	if lc, ok := s.(LineClearer); ok {
		lc.ClearLine(row)
		return
	}

	width := s.BufferWidth()
	s.SetCursorPosition(0, row)
	if width <= 0 {
		return
	}

	bufp := linePool.Get().(*[]byte)
	defer linePool.Put(bufp)

	buf := *bufp
	if cap(buf) < width {
		buf = make([]byte, width)
	}
	buf = buf[:width]
	for i := range buf {
		buf[i] = ' '
	}
	*bufp = buf

	s.Write(string(buf))
	s.SetCursorPosition(0, row)
}

// WithColors sets the given colors, runs fn, and resets the sink's colors
// afterwards even if fn panics. ColorDefault leaves that layer untouched.
func WithColors(s Sink, fg, bg Color, fn func()) {
	if fg != ColorDefault {
		s.SetForeground(fg)
	}
	if bg != ColorDefault {
		s.SetBackground(bg)
	}
	defer s.ResetColors()
	fn()
}
