package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rileyhilliard/termkit/internal/config"
	"github.com/rileyhilliard/termkit/internal/errors"
	"github.com/rileyhilliard/termkit/internal/logger"
	"github.com/rileyhilliard/termkit/internal/terminal"
	"github.com/rileyhilliard/termkit/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags
var (
	configFlag  string
	noColorFlag bool
	verboseFlag bool
)

// loaded holds the resolved config for the running command.
var loaded *config.Loaded

var rootCmd = &cobra.Command{
	Use:   "termkit",
	Short: "Progress bars and spinners for the terminal",
	Long: `termkit draws progress bars and spinners that redraw in place.

Run a command behind a spinner, or try the bar with a simulated transfer.
Defaults come from .termkit.yaml (see 'termkit config init') and can be
overridden with TERMKIT_* environment variables.

Examples:
  termkit spin -- make build
  termkit spin --title "Installing" --elapsed -- npm ci
  termkit bar --size 256MB --duration 5s`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.EnableDebug(verboseFlag)

		l, err := config.LoadOrDefault(configFlag)
		if err != nil {
			return err
		}
		if err := config.Validate(l.Config); err != nil {
			return err
		}
		loaded = l

		if colorMode() == config.ColorNever {
			ui.DisableColors()
		}
		logger.Default().Debug("config: %s", displayPath(l.Path))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default: ./.termkit.yaml, then ~/.config/termkit/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "print debug logging")
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	if code, ok := errors.GetExitCode(err); ok {
		return code
	}

	var tkErr *errors.Error
	if stderrors.As(err, &tkErr) {
		fmt.Fprint(stderr, tkErr.Error())
	} else {
		fmt.Fprintf(stderr, "%s %s\n", ui.SymbolFail, err)
	}
	if isUnknownCommandError(err) {
		fmt.Fprintln(stderr, "\n  Run 'termkit --help' to see available commands")
	}
	return 1
}

// isUnknownCommandError reports whether cobra rejected the command line itself.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}

// currentConfig returns the loaded config, or defaults when a command runs
// without the root pre-run (tests).
func currentConfig() *config.Config {
	if loaded == nil {
		return config.DefaultConfig()
	}
	return loaded.Config
}

// colorMode folds --no-color and NO_COLOR into the configured mode.
func colorMode() string {
	if noColorFlag {
		return config.ColorNever
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return config.ColorNever
	}
	return currentConfig().Output.Color
}

// newSink creates the ANSI sink for w honoring the color mode.
func newSink(w io.Writer) *terminal.ANSI {
	var opts []terminal.Option
	switch colorMode() {
	case config.ColorNever:
		opts = append(opts, terminal.WithProfile(termenv.Ascii))
	case config.ColorAlways:
		opts = append(opts, terminal.WithProfile(termenv.ANSI))
	}
	return terminal.NewANSI(w, opts...)
}

// parseColorFlag resolves a --color style flag, falling back to the
// configured name when the flag was not given.
func parseColorFlag(cmd *cobra.Command, flag, value, configured string) (terminal.Color, error) {
	name := configured
	if cmd.Flags().Changed(flag) {
		name = value
	}
	return terminal.ParseColor(name)
}

func displayPath(p string) string {
	if p == "" {
		return "(defaults)"
	}
	return p
}
