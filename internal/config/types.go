package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .termkit.yaml configuration file.
type Config struct {
	Version  int            `yaml:"version" mapstructure:"version"`
	Progress ProgressConfig `yaml:"progress" mapstructure:"progress"`
	Spinner  SpinnerConfig  `yaml:"spinner" mapstructure:"spinner"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
}

// ProgressConfig sets the defaults for determinate progress bars.
type ProgressConfig struct {
	// Foreground colors the header, brackets and percentage.
	Foreground string `yaml:"foreground" mapstructure:"foreground"`

	// FillColor colors the filled portion of the bar.
	FillColor string `yaml:"fill_color" mapstructure:"fill_color"`

	// FillChar is the single character drawn for each filled cell.
	FillChar string `yaml:"fill_char" mapstructure:"fill_char"`

	// Margin is the number of columns reserved beside the bar for the
	// brackets and percentage.
	Margin int `yaml:"margin" mapstructure:"margin"`
}

// SpinnerConfig sets the defaults for indeterminate progress.
type SpinnerConfig struct {
	Foreground     string        `yaml:"foreground" mapstructure:"foreground"`
	UpdateInterval time.Duration `yaml:"update_interval" mapstructure:"update_interval"`
	ShowElapsed    bool          `yaml:"show_elapsed" mapstructure:"show_elapsed"`
}

// MarshalYAML writes the interval as a duration string ("50ms") rather than
// nanoseconds so the file round-trips through viper.
func (s SpinnerConfig) MarshalYAML() (interface{}, error) {
	return struct {
		Foreground     string `yaml:"foreground"`
		UpdateInterval string `yaml:"update_interval"`
		ShowElapsed    bool   `yaml:"show_elapsed"`
	}{
		Foreground:     s.Foreground,
		UpdateInterval: s.UpdateInterval.String(),
		ShowElapsed:    s.ShowElapsed,
	}, nil
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// Color modes for OutputConfig.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Progress: ProgressConfig{
			Foreground: "white",
			FillColor:  "green",
			FillChar:   "█",
			Margin:     10,
		},
		Spinner: SpinnerConfig{
			Foreground:     "cyan",
			UpdateInterval: 50 * time.Millisecond,
			ShowElapsed:    true,
		},
		Output: OutputConfig{
			Color: ColorAuto,
		},
	}
}
