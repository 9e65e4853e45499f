package progress

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/termkit/internal/errors"
	"github.com/rileyhilliard/termkit/internal/logger"
	"github.com/rileyhilliard/termkit/internal/terminal"
)

// DefaultUpdateInterval is the delay between spinner frames.
const DefaultUpdateInterval = 50 * time.Millisecond

// framePadding trails every frame so a shorter frame covers a longer one.
const framePadding = 10

// twirlFrames is the animation cycle.
var twirlFrames = []rune{'-', '\\', '|', '/'}

// SpinnerOptions configures a single Run.
type SpinnerOptions struct {
	Title          string // Shown before the twirl; empty for none
	Foreground     terminal.Color
	ShowElapsed    bool          // Append "[Elapsed: hh:mm:ss]"
	UpdateInterval time.Duration // Zero means DefaultUpdateInterval
}

func (o SpinnerOptions) normalize() (SpinnerOptions, error) {
	if o.UpdateInterval < 0 {
		return o, errors.Newf(errors.ErrInvalidArgument,
			"Update interval must be positive, got %s", o.UpdateInterval)
	}
	if o.UpdateInterval == 0 {
		o.UpdateInterval = DefaultUpdateInterval
	}
	return o, nil
}

// Clock is the time source for the elapsed-time display.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Spinner draws an indeterminate progress animation on a sink.
type Spinner struct {
	term  terminal.Sink
	clock Clock
	log   logger.Logger
}

// SpinnerOption configures a Spinner.
type SpinnerOption func(*Spinner)

// WithClock replaces the wall clock used for elapsed time.
func WithClock(c Clock) SpinnerOption {
	return func(s *Spinner) { s.clock = c }
}

// WithSpinnerLogger sets the logger for debug output.
func WithSpinnerLogger(l logger.Logger) SpinnerOption {
	return func(s *Spinner) { s.log = l }
}

// NewSpinner creates a spinner that draws on term.
func NewSpinner(term terminal.Sink, opts ...SpinnerOption) *Spinner {
	s := &Spinner{
		term:  term,
		clock: systemClock{},
		log:   logger.NewEnvLogger("[progress]"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// renderState lives for a single Run.
type renderState struct {
	anchorRow int
	start     time.Time
	frame     int
}

// Run animates on s until task completes or ctx is cancelled, then returns
// the task's value and error unchanged.
//
// Cancellation stops the animation, not the task: after ctx is done Run
// clears the row and blocks until the task finishes. At least one frame is
// drawn even when ctx is already cancelled on entry.
//
// Sinks implementing terminal.CursorHider have the cursor hidden while
// frames are drawn. Tasks implementing Starter are started first. Invalid
// options return an ErrInvalidArgument error before the task is started or
// anything is drawn.
func Run[T any](ctx context.Context, s *Spinner, task Task[T], opts SpinnerOptions) (T, error) {
	opts, err := opts.normalize()
	if err != nil {
		var zero T
		return zero, err
	}

	if st, ok := task.(Starter); ok {
		st.Start()
	}

	state := s.begin(opts)
	if s.animateHidden(ctx, task.Done(), opts, &state) {
		s.log.Debug("animation cancelled, waiting for task")
		terminal.ClearLine(s.term, state.anchorRow)
		return task.Result()
	}

	s.term.WriteLine()
	s.term.ResetColors()
	return task.Result()
}

// Wait is Run for tasks that produce no value.
func (s *Spinner) Wait(ctx context.Context, task Task[struct{}], opts SpinnerOptions) error {
	_, err := Run(ctx, s, task, opts)
	return err
}

// Do runs fn on its own goroutine and animates until it returns.
func (s *Spinner) Do(ctx context.Context, opts SpinnerOptions, fn func() error) error {
	return s.Wait(ctx, NewFuture(func() (struct{}, error) {
		return struct{}{}, fn()
	}), opts)
}

// begin gives the animation its own row and captures where it lives.
func (s *Spinner) begin(opts SpinnerOptions) renderState {
	s.term.WriteLine()
	state := renderState{anchorRow: s.term.CursorRow()}
	if opts.ShowElapsed {
		state.start = s.clock.Now()
	}
	return state
}

// animateHidden runs animate with the cursor hidden on sinks that can hide
// it. The cursor is shown again even if drawing panics.
func (s *Spinner) animateHidden(ctx context.Context, done <-chan struct{}, opts SpinnerOptions, state *renderState) bool {
	if h, ok := s.term.(terminal.CursorHider); ok {
		h.HideCursor()
		defer h.ShowCursor()
	}
	return s.animate(ctx, done, opts, state)
}

// animate draws frames until done is closed or ctx is cancelled. It reports
// whether it stopped because of cancellation. The row is blank on return.
func (s *Spinner) animate(ctx context.Context, done <-chan struct{}, opts SpinnerOptions, state *renderState) bool {
	for {
		s.drawFrame(opts, state)

		timer := time.NewTimer(opts.UpdateInterval)
		select {
		case <-ctx.Done():
		case <-done:
		case <-timer.C:
		}
		timer.Stop()

		terminal.ClearLine(s.term, state.anchorRow)

		if ctx.Err() != nil {
			return true
		}
		state.frame = (state.frame + 1) % len(twirlFrames)
		if isDone(done) {
			return false
		}
	}
}

func (s *Spinner) drawFrame(opts SpinnerOptions, state *renderState) {
	var elapsed time.Duration
	if opts.ShowElapsed {
		elapsed = s.clock.Now().Sub(state.start)
	}
	frame := composeFrame(opts.Title, twirlFrames[state.frame], opts.ShowElapsed, elapsed)

	s.term.SetCursorPosition(0, state.anchorRow)
	terminal.Text(terminal.Truncate(frame, s.term.BufferWidth()), opts.Foreground).Write(s.term)
}

func composeFrame(title string, twirl rune, showElapsed bool, elapsed time.Duration) string {
	var b strings.Builder
	if title != "" {
		b.WriteString(title)
		b.WriteByte(' ')
	}
	b.WriteRune(twirl)
	if showElapsed {
		b.WriteString(" [Elapsed: ")
		b.WriteString(formatElapsed(elapsed))
		b.WriteByte(']')
	}
	b.WriteString(strings.Repeat(" ", framePadding))
	return b.String()
}

// formatElapsed renders d as hh:mm:ss. Hours keep counting past 99.
func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}
