// Package terminal is the output sink the progress renderers draw on.
//
// A Sink exposes the handful of terminal capabilities the renderers need:
// writing at the cursor, absolute cursor placement by row, the buffer width,
// and foreground/background color state. Two implementations exist:
//
//	ANSI      - escape-sequence sink over a writer (termenv + x/term)
//	FakeSink  - in-memory screen grid for tests (terminal/testing)
//
// Terminal color state is process-wide and unsynchronized. Code that sets
// colors goes through WithColors so the "no override" state is restored on
// every exit path, including panics.
//
// # Rows
//
// The ANSI sink does not query the terminal for the cursor position. It
// counts rows from the moment it was created, so row numbers are relative
// and survive scrolling. Callers only ever move back to rows they already
// reached.
package terminal
