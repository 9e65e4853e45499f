package config

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/rileyhilliard/termkit/internal/errors"
	"github.com/rileyhilliard/termkit/internal/terminal"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but termkit only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade termkit or lower the 'version' field")
	}

	if err := validateProgress(cfg.Progress); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Invalid 'progress' settings", "Check the 'progress' section in your "+ConfigFileName)
	}

	if err := validateSpinner(cfg.Spinner); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Invalid 'spinner' settings", "Check the 'spinner' section in your "+ConfigFileName)
	}

	if err := validateOutput(cfg.Output); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Invalid 'output' settings", "Check the 'output' section in your "+ConfigFileName)
	}

	return nil
}

func validateProgress(p ProgressConfig) error {
	if _, err := terminal.ParseColor(p.Foreground); err != nil {
		return fmt.Errorf("foreground: unknown color '%s'", p.Foreground)
	}
	if _, err := terminal.ParseColor(p.FillColor); err != nil {
		return fmt.Errorf("fill_color: unknown color '%s'", p.FillColor)
	}
	if _, err := FillRune(p.FillChar); err != nil {
		return err
	}
	if p.Margin < 0 {
		return fmt.Errorf("margin must be zero or more, got %d", p.Margin)
	}
	return nil
}

func validateSpinner(s SpinnerConfig) error {
	if _, err := terminal.ParseColor(s.Foreground); err != nil {
		return fmt.Errorf("foreground: unknown color '%s'", s.Foreground)
	}
	if s.UpdateInterval < 0 {
		return fmt.Errorf("update_interval must be positive, got %s", s.UpdateInterval)
	}
	return nil
}

func validateOutput(o OutputConfig) error {
	switch o.Color {
	case ColorAuto, ColorAlways, ColorNever, "":
		return nil
	}
	return fmt.Errorf("color must be 'auto', 'always' or 'never', got '%s'", o.Color)
}

// FillRune converts the fill_char setting to a rune. Empty selects the
// zero rune so the renderer uses its default.
func FillRune(s string) (rune, error) {
	if s == "" {
		return 0, nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) {
		return 0, fmt.Errorf("fill_char must be a single character, got '%s'", s)
	}
	if unicode.IsSpace(r) || unicode.IsControl(r) {
		return 0, fmt.Errorf("fill_char must be visible, got %q", r)
	}
	return r, nil
}
