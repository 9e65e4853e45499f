package cli

import (
	"context"
	"fmt"
	"math/bits"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rileyhilliard/termkit/internal/config"
	"github.com/rileyhilliard/termkit/internal/errors"
	"github.com/rileyhilliard/termkit/internal/progress"
	"github.com/rileyhilliard/termkit/internal/terminal"
	"github.com/rileyhilliard/termkit/internal/ui"
	"github.com/spf13/cobra"
)

// bar command flags
var (
	barSize      string
	barDuration  time.Duration
	barSteps     int
	barLabel     string
	barNoHeader  bool
	barFillChar  string
	barFillColor string
	barColor     string
	barMargin    int
)

var barCmd = &cobra.Command{
	Use:   "bar",
	Short: "Draw a progress bar for a simulated transfer",
	Long: `Draw a determinate progress bar that fills over a simulated transfer.

The header shows the bytes transferred so far. The bar is redrawn in place
and resizes with the terminal.

Examples:
  termkit bar
  termkit bar --size 1.5GB --duration 10s
  termkit bar --fill-char '#' --fill-color bright-blue --no-header`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := barOptionsFromFlags(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		out := cmd.OutOrStdout()
		start := time.Now()
		err = simulateTransfer(ctx, newSink(out), opts, time.Sleep)
		elapsed := time.Since(start)

		if ctx.Err() != nil {
			fmt.Fprintln(out, ui.RenderStatus(ui.OutcomeCancelled, opts.Label+" cancelled", elapsed))
			return errors.NewExitError(130)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(out, ui.RenderStatus(ui.OutcomeSuccess,
			fmt.Sprintf("%s %s", opts.Label, humanize.Bytes(opts.Total)), elapsed))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(barCmd)
	barCmd.Flags().StringVar(&barSize, "size", "64MB", "simulated transfer size (e.g., 512KB, 1.5GB)")
	barCmd.Flags().DurationVar(&barDuration, "duration", 3*time.Second, "how long the transfer takes")
	barCmd.Flags().IntVar(&barSteps, "steps", 60, "number of redraws")
	barCmd.Flags().StringVar(&barLabel, "label", "Downloading", "header label")
	barCmd.Flags().BoolVar(&barNoHeader, "no-header", false, "draw the bar without a header line")
	barCmd.Flags().StringVar(&barFillChar, "fill-char", "", "character for the filled portion (default from config)")
	barCmd.Flags().StringVar(&barFillColor, "fill-color", "", "color of the filled portion (default from config)")
	barCmd.Flags().StringVar(&barColor, "color", "", "color of header and percentage (default from config)")
	barCmd.Flags().IntVar(&barMargin, "margin", 0, "columns reserved beside the bar (default from config)")
}

// transferOptions drives simulateTransfer.
type transferOptions struct {
	Total    uint64
	Duration time.Duration
	Steps    int
	Label    string
	Header   bool
	Margin   int

	FillChar   rune
	Foreground terminal.Color
	FillColor  terminal.Color
}

// barOptionsFromFlags merges flags over the configured progress defaults.
func barOptionsFromFlags(cmd *cobra.Command) (transferOptions, error) {
	cfg := currentConfig().Progress

	total, err := humanize.ParseBytes(barSize)
	if err != nil {
		return transferOptions{}, errors.WrapWithCode(err, errors.ErrInvalidArgument,
			fmt.Sprintf("'%s' doesn't look like a size", barSize),
			"Try something like 512KB, 64MB or 1.5GB")
	}
	if barSteps <= 0 {
		return transferOptions{}, errors.New(errors.ErrInvalidArgument,
			fmt.Sprintf("--steps must be positive, got %d", barSteps), "")
	}
	if barDuration < 0 {
		return transferOptions{}, errors.New(errors.ErrInvalidArgument,
			fmt.Sprintf("--duration must not be negative, got %s", barDuration), "")
	}

	fillSetting := cfg.FillChar
	if cmd.Flags().Changed("fill-char") {
		fillSetting = barFillChar
	}
	fill, err := config.FillRune(fillSetting)
	if err != nil {
		return transferOptions{}, errors.WrapWithCode(err, errors.ErrInvalidArgument,
			"Invalid fill character", "Use a single visible character such as '#'")
	}

	fg, err := parseColorFlag(cmd, "color", barColor, cfg.Foreground)
	if err != nil {
		return transferOptions{}, err
	}
	fillColor, err := parseColorFlag(cmd, "fill-color", barFillColor, cfg.FillColor)
	if err != nil {
		return transferOptions{}, err
	}

	margin := cfg.Margin
	if cmd.Flags().Changed("margin") {
		margin = barMargin
	}

	return transferOptions{
		Total:      total,
		Duration:   barDuration,
		Steps:      barSteps,
		Label:      barLabel,
		Header:     !barNoHeader,
		Margin:     margin,
		FillChar:   fill,
		Foreground: fg,
		FillColor:  fillColor,
	}, nil
}

// simulateTransfer redraws a bar Steps+1 times from 0% to 100%, pausing
// between draws with sleep. It stops early when ctx is cancelled.
func simulateTransfer(ctx context.Context, sink terminal.Sink, opts transferOptions, sleep func(time.Duration)) error {
	bar := progress.NewBar(sink, progress.WithMargin(opts.Margin))
	defer bar.Finish()

	pause := opts.Duration / time.Duration(opts.Steps)
	for i := 0; i <= opts.Steps; i++ {
		if ctx.Err() != nil {
			return nil
		}

		done := transferred(opts.Total, i, opts.Steps)
		pct := float64(i) * 100 / float64(opts.Steps)

		var header string
		if opts.Header {
			header = transferHeader(opts.Label, done, opts.Total)
		}

		d, err := progress.NewDisplay(progress.DisplayConfig{
			Header:     header,
			Percentage: pct,
			FillChar:   opts.FillChar,
			Foreground: opts.Foreground,
			FillColor:  opts.FillColor,
		})
		if err != nil {
			return err
		}
		bar.Update(d)

		if i < opts.Steps {
			sleep(pause)
		}
	}
	return nil
}

// transferred returns total*step/steps without overflowing for sizes near
// the top of the uint64 range. step must be in [0, steps].
func transferred(total uint64, step, steps int) uint64 {
	hi, lo := bits.Mul64(total, uint64(step))
	q, _ := bits.Div64(hi, lo, uint64(steps))
	return q
}

func transferHeader(label string, done, total uint64) string {
	return fmt.Sprintf("%s %s / %s", label, humanize.Bytes(done), humanize.Bytes(total))
}
