// Package progress renders determinate progress bars and indeterminate
// spinners on a terminal.Sink.
//
// # Determinate
//
// A Bar redraws a bracketed, fixed-margin bar in place on every Update:
//
//	Copying 12 MB / 64 MB
//	[██████████                                       ] 18.75%
//
// Each Update takes a freshly validated Display. Validation happens in
// NewDisplay, so an invalid percentage or fill character never reaches the
// terminal.
//
// # Indeterminate
//
// Run draws a twirl animation (- \ | /) on a dedicated row while a Task
// runs, then returns exactly what the task returned:
//
//	s := progress.NewSpinner(sink)
//	n, err := progress.Run(ctx, s, progress.Go(countRows), progress.SpinnerOptions{
//		Title:       "Counting",
//		ShowElapsed: true,
//	})
//
// Cancelling ctx stops the animation only. Run still waits for the task and
// returns its outcome, so a task that never finishes keeps Run blocked after
// cancellation. Callers that want to abandon the work must cancel the work
// itself.
//
// Neither renderer locks the terminal. Running two renderers against the same
// sink at once interleaves their cursor movement.
package progress
