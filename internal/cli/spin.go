package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/rileyhilliard/termkit/internal/errors"
	"github.com/rileyhilliard/termkit/internal/logger"
	"github.com/rileyhilliard/termkit/internal/progress"
	"github.com/rileyhilliard/termkit/internal/terminal"
	"github.com/rileyhilliard/termkit/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// spin command flags
var (
	spinTitle      string
	spinColor      string
	spinElapsed    bool
	spinNoElapsed  bool
	spinInterval   time.Duration
	spinShowOutput bool
)

var spinCmd = &cobra.Command{
	Use:   "spin [flags] -- command [args...]",
	Short: "Run a command behind a spinner",
	Long: `Run a command and animate a spinner until it exits.

The command's output is captured while the spinner runs and printed if the
command fails (or always with --show-output). The exit code of the command
becomes termkit's exit code.

Ctrl-C stops the animation. The command receives the interrupt too and its
own outcome is reported.

Examples:
  termkit spin -- make build
  termkit spin --title "Running tests" --elapsed -- go test ./...
  termkit spin --show-output -- ./deploy.sh staging`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := spinOptionsFromFlags(cmd, args)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		return spinCommand(ctx, newSink(cmd.OutOrStdout()), cmd.OutOrStdout(), args, opts)
	},
}

func init() {
	rootCmd.AddCommand(spinCmd)
	spinCmd.Flags().StringVarP(&spinTitle, "title", "t", "", "text shown before the spinner (default: the command)")
	spinCmd.Flags().StringVar(&spinColor, "color", "", "spinner color (default from config)")
	spinCmd.Flags().BoolVar(&spinElapsed, "elapsed", false, "show elapsed time")
	spinCmd.Flags().BoolVar(&spinNoElapsed, "no-elapsed", false, "hide elapsed time")
	spinCmd.Flags().DurationVar(&spinInterval, "interval", 0, "delay between frames (default from config)")
	spinCmd.Flags().BoolVar(&spinShowOutput, "show-output", false, "print captured output even when the command succeeds")
	spinCmd.MarkFlagsMutuallyExclusive("elapsed", "no-elapsed")
}

// spinOptionsFromFlags merges flags over the configured spinner defaults.
func spinOptionsFromFlags(cmd *cobra.Command, args []string) (progress.SpinnerOptions, error) {
	cfg := currentConfig().Spinner

	fg, err := parseColorFlag(cmd, "color", spinColor, cfg.Foreground)
	if err != nil {
		return progress.SpinnerOptions{}, err
	}

	title := spinTitle
	if title == "" {
		title = strings.Join(args, " ")
	}

	interval := cfg.UpdateInterval
	if cmd.Flags().Changed("interval") {
		if spinInterval <= 0 {
			return progress.SpinnerOptions{}, errors.New(errors.ErrInvalidArgument,
				fmt.Sprintf("--interval must be positive, got %s", spinInterval),
				"Try something like 50ms or 100ms")
		}
		interval = spinInterval
	}

	showElapsed := cfg.ShowElapsed
	switch {
	case spinElapsed:
		showElapsed = true
	case spinNoElapsed:
		showElapsed = false
	}

	return progress.SpinnerOptions{
		Title:          title,
		Foreground:     fg,
		ShowElapsed:    showElapsed,
		UpdateInterval: interval,
	}, nil
}

// spinCommand runs args as a child process behind a spinner on sink and
// reports the outcome on out.
func spinCommand(ctx context.Context, sink terminal.Sink, out io.Writer, args []string, opts progress.SpinnerOptions) error {
	log := logger.Default()
	var output lockedBuffer

	child := exec.Command(args[0], args[1:]...)

	task := progress.GoErr(func() error {
		return runCaptured(child, &output)
	})

	start := time.Now()
	err := progress.NewSpinner(sink).Wait(ctx, task, opts)
	elapsed := time.Since(start)

	outcome := ui.OutcomeSuccess
	label := opts.Title
	code := 0

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case stderrors.As(err, &exitErr):
		code = exitErr.ExitCode()
		if code < 0 {
			code = 130
		}
		outcome = ui.OutcomeFailed
		label = fmt.Sprintf("%s (exit %d)", opts.Title, code)
	default:
		return errors.WrapWithCode(err, errors.ErrInvalidArgument,
			fmt.Sprintf("Cannot run '%s'", args[0]),
			"Check the command is installed and on your PATH")
	}
	if ctx.Err() != nil {
		log.Debug("interrupted after %s", elapsed)
		if outcome == ui.OutcomeSuccess {
			outcome = ui.OutcomeCancelled
		}
	}

	if outcome != ui.OutcomeSuccess || spinShowOutput {
		if captured := output.String(); captured != "" {
			fmt.Fprint(out, captured)
			if !strings.HasSuffix(captured, "\n") {
				fmt.Fprintln(out)
			}
		}
	}
	fmt.Fprintln(out, ui.RenderStatus(outcome, label, elapsed))

	if code != 0 {
		return errors.NewExitError(code)
	}
	return nil
}

// runCaptured starts child and copies its stdout and stderr into w until both
// pipes close, then waits for it to exit.
func runCaptured(child *exec.Cmd, w io.Writer) error {
	stdout, err := child.StdoutPipe()
	if err != nil {
		return err
	}
	stderr, err := child.StderrPipe()
	if err != nil {
		return err
	}
	if err := child.Start(); err != nil {
		return err
	}

	var g errgroup.Group
	g.Go(func() error {
		_, err := io.Copy(w, stdout)
		return err
	})
	g.Go(func() error {
		_, err := io.Copy(w, stderr)
		return err
	})
	copyErr := g.Wait()

	if err := child.Wait(); err != nil {
		return err
	}
	return copyErr
}

// lockedBuffer serializes writes from the stdout and stderr copiers.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
