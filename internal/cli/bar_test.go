package cli

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/rileyhilliard/termkit/internal/terminal"
	termtest "github.com/rileyhilliard/termkit/internal/terminal/testing"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTransfer() transferOptions {
	return transferOptions{
		Total:      4000,
		Duration:   time.Second,
		Steps:      4,
		Label:      "Downloading",
		Header:     true,
		Margin:     10,
		FillChar:   '#',
		Foreground: terminal.White,
		FillColor:  terminal.Green,
	}
}

func TestSimulateTransfer(t *testing.T) {
	sink := termtest.NewFakeSink(40)
	var pauses []time.Duration

	err := simulateTransfer(context.Background(), sink, testTransfer(), func(d time.Duration) {
		pauses = append(pauses, d)
	})
	require.NoError(t, err)

	assert.Equal(t, []time.Duration{250 * time.Millisecond, 250 * time.Millisecond, 250 * time.Millisecond, 250 * time.Millisecond}, pauses)
	assert.Equal(t, "Downloading 4.0 kB / 4.0 kB", sink.Line(0))
	assert.Equal(t, "["+strings.Repeat("#", 30)+"] 100.00%", sink.Line(1))
	assert.Equal(t, 2, sink.CursorRow(), "cursor ends below the finished bar")
}

func TestSimulateTransfer_Headers(t *testing.T) {
	sink := termtest.NewFakeSink(40)

	require.NoError(t, simulateTransfer(context.Background(), sink, testTransfer(), func(time.Duration) {}))

	var headers []string
	for _, w := range sink.WriteLog() {
		if strings.HasPrefix(w.Text, "Downloading") {
			headers = append(headers, w.Text)
		}
	}
	assert.Equal(t, []string{
		"Downloading 0 B / 4.0 kB",
		"Downloading 1.0 kB / 4.0 kB",
		"Downloading 2.0 kB / 4.0 kB",
		"Downloading 3.0 kB / 4.0 kB",
		"Downloading 4.0 kB / 4.0 kB",
	}, headers)
}

func TestSimulateTransfer_NoHeader(t *testing.T) {
	sink := termtest.NewFakeSink(40)
	opts := testTransfer()
	opts.Header = false

	require.NoError(t, simulateTransfer(context.Background(), sink, opts, func(time.Duration) {}))

	assert.Equal(t, "["+strings.Repeat("#", 30)+"] 100.00%", sink.Line(0))
	assert.Equal(t, 1, sink.CursorRow())
}

func TestSimulateTransfer_Cancelled(t *testing.T) {
	sink := termtest.NewFakeSink(40)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := simulateTransfer(ctx, sink, testTransfer(), func(time.Duration) {
		t.Fatal("should not pause after cancellation")
	})

	require.NoError(t, err)
	assert.Zero(t, sink.WriteCount())
}

func TestSimulateTransfer_CancelMidway(t *testing.T) {
	sink := termtest.NewFakeSink(40)
	ctx, cancel := context.WithCancel(context.Background())
	pauses := 0

	err := simulateTransfer(ctx, sink, testTransfer(), func(time.Duration) {
		pauses++
		if pauses == 2 {
			cancel()
		}
	})

	require.NoError(t, err)
	assert.Equal(t, "Downloading 1.0 kB / 4.0 kB", sink.Line(0))
	assert.Contains(t, sink.Line(1), "25.00%")
	assert.Equal(t, 2, sink.CursorRow(), "a cancelled bar is still finished")
}

func TestTransferHeader(t *testing.T) {
	assert.Equal(t, "Copying 0 B / 64 MB", transferHeader("Copying", 0, 64_000_000))
	assert.Equal(t, "Copying 1.5 GB / 1.5 GB", transferHeader("Copying", 1_500_000_000, 1_500_000_000))
}

func TestTransferred(t *testing.T) {
	const exabyte = 1_000_000_000_000_000_000

	tests := []struct {
		name  string
		total uint64
		step  int
		steps int
		want  uint64
	}{
		{"start", 4000, 0, 4, 0},
		{"quarter", 4000, 1, 4, 1000},
		{"rounds down", 10, 1, 3, 3},
		{"end", 4000, 4, 4, 4000},
		{"exabyte near the end", exabyte, 59, 60, 983_333_333_333_333_333},
		{"max uint64 halfway", math.MaxUint64, 1, 2, math.MaxUint64 / 2},
		{"max uint64 end", math.MaxUint64, 60, 60, math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, transferred(tt.total, tt.step, tt.steps))
		})
	}

	assert.Equal(t, "Copying 500 PB / 1.0 EB",
		transferHeader("Copying", transferred(exabyte, 30, 60), exabyte))
}

func TestBarCommand(t *testing.T) {
	out, stderr, code := executeCommand(t, "", "bar", "--no-color", "--duration", "0", "--steps", "2", "--size", "2KB")

	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "Downloading 2.0 kB / 2.0 kB")
	assert.Contains(t, out, "100.00%")
	assert.Contains(t, out, "✓")
}

func TestBarCommand_FlagErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad size", []string{"--size", "huge"}, "doesn't look like a size"},
		{"zero steps", []string{"--steps", "0"}, "--steps must be positive"},
		{"negative steps", []string{"--steps=-3"}, "got -3"},
		{"negative duration", []string{"--duration=-1s"}, "--duration"},
		{"bad fill", []string{"--fill-char", "ab"}, "Invalid fill character"},
		{"bad color", []string{"--fill-color", "plaid"}, "Unknown color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, code := executeCommand(t, "", append([]string{"bar"}, tt.args...)...)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestBarOptionsFromFlags_UsesConfig(t *testing.T) {
	t.Setenv("TERMKIT_PROGRESS_FILL_CHAR", "=")
	t.Setenv("TERMKIT_PROGRESS_FILL_COLOR", "blue")
	t.Setenv("TERMKIT_PROGRESS_MARGIN", "6")

	var captured transferOptions
	barCmd.RunE = wrapBarRunE(t, &captured)

	_, stderr, code := executeCommand(t, "", "bar", "--color", "red")
	require.Equal(t, 0, code, stderr)

	assert.Equal(t, '=', captured.FillChar)
	assert.Equal(t, terminal.Blue, captured.FillColor)
	assert.Equal(t, terminal.Red, captured.Foreground)
	assert.Equal(t, 6, captured.Margin)
	assert.Equal(t, uint64(64_000_000), captured.Total)
}

// wrapBarRunE swaps the bar command's RunE for one that records the parsed
// options instead of drawing.
func wrapBarRunE(t *testing.T, captured *transferOptions) func(cmd *cobra.Command, args []string) error {
	original := barCmd.RunE
	t.Cleanup(func() { barCmd.RunE = original })
	return func(cmd *cobra.Command, args []string) error {
		opts, err := barOptionsFromFlags(cmd)
		*captured = opts
		return err
	}
}
