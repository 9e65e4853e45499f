package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rileyhilliard/termkit/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".termkit.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/termkit"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. TERMKIT_SPINNER_FOREGROUND.
	EnvPrefix = "TERMKIT"
)

// Sources for a resolved setting.
const (
	SourceDefault = "default"
	SourceFile    = "file"
	SourceEnv     = "env"
)

// Loaded is a resolved config together with where each value came from.
type Loaded struct {
	Config *Config
	Path   string // Empty when no file was found
	v      *viper.Viper
}

// Load reads config from the specified path. Environment overrides apply on
// top of the file.
func Load(path string) (*Config, error) {
	l, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	return l.Config, nil
}

func loadFile(path string) (*Loaded, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'termkit config init' to create a config file, or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	cfg, err := parseConfig(v, path)
	if err != nil {
		return nil, err
	}
	return &Loaded{Config: cfg, Path: path, v: v}, nil
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .termkit.yaml in current directory
// 3. ~/.config/termkit/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		explicit = ExpandPath(explicit)
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	if path := GlobalPath(); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", nil
}

// GlobalPath returns ~/.config/termkit/config.yaml, or "" when the home
// directory is unknown.
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
}

// LoadOrDefault loads config from the found path, or returns defaults (with
// environment overrides) if no file exists.
func LoadOrDefault(explicit string) (*Loaded, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}

	if path == "" {
		v := newViper()
		cfg, err := parseConfig(v, "environment")
		if err != nil {
			return nil, err
		}
		return &Loaded{Config: cfg, v: v}, nil
	}

	return loadFile(path)
}

// Source reports where the value for a dotted key came from.
func (l *Loaded) Source(key string) string {
	if l.v == nil {
		return SourceDefault
	}
	if _, ok := os.LookupEnv(EnvName(key)); ok {
		return SourceEnv
	}
	if l.v.InConfig(key) {
		return SourceFile
	}
	return SourceDefault
}

// Settings returns every known key with its effective value.
func (l *Loaded) Settings() map[string]string {
	out := make(map[string]string, len(settingKeys))
	for _, key := range Keys() {
		out[key] = l.v.GetString(key)
	}
	return out
}

// Keys lists the dotted setting keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(settingKeys))
	for k := range settingKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DefaultValue returns the built-in default for key, or "" if the key is unknown.
func DefaultValue(key string) string {
	v, ok := settingKeys[key]
	if !ok {
		return ""
	}
	return fmt.Sprint(v)
}

// settingKeys holds the default for every key so env overrides resolve even
// when the file omits the key.
var settingKeys = map[string]interface{}{
	"version":                 CurrentConfigVersion,
	"progress.foreground":     "white",
	"progress.fill_color":     "green",
	"progress.fill_char":      "█",
	"progress.margin":         10,
	"spinner.foreground":      "cyan",
	"spinner.update_interval": "50ms",
	"spinner.show_elapsed":    true,
	"output.color":            ColorAuto,
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, def := range settingKeys {
		v.SetDefault(key, def)
	}
	return v
}

// EnvName returns the environment variable that overrides key.
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	return cfg, nil
}
