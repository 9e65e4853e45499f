package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rileyhilliard/termkit/internal/config"
	"github.com/rileyhilliard/termkit/internal/errors"
	"github.com/rileyhilliard/termkit/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pipedPrompter(input string) *ui.Prompter {
	return ui.NewPrompter(strings.NewReader(input), &bytes.Buffer{})
}

func TestConfigInit_NewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	var out bytes.Buffer

	require.NoError(t, configInit(pipedPrompter(""), &out, path, false))

	assert.Contains(t, out.String(), "Wrote "+path)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestConfigInit_ExistingFile(t *testing.T) {
	tests := []struct {
		name        string
		answer      string
		force       bool
		overwritten bool
	}{
		{"declined", "n\n", false, false},
		{"default is no", "\n", false, false},
		{"accepted", "y\n", false, true},
		{"forced", "", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), config.ConfigFileName)
			require.NoError(t, os.WriteFile(path, []byte("# mine\n"), 0644))
			var out bytes.Buffer

			require.NoError(t, configInit(pipedPrompter(tt.answer), &out, path, tt.force))

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			if tt.overwritten {
				assert.Contains(t, string(data), "progress:")
			} else {
				assert.Equal(t, "# mine\n", string(data))
				assert.Contains(t, out.String(), "Cancelled.")
			}
		})
	}
}

func TestConfigInit_InvalidAnswer(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("# mine\n"), 0644))

	err := configInit(pipedPrompter("perhaps\n"), &bytes.Buffer{}, path, false)

	assert.True(t, errors.IsCode(err, errors.ErrInvalidArgument))
}

func TestConfigSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)

	require.NoError(t, configSet(path, "spinner.foreground", "magenta"))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "magenta", cfg.Spinner.Foreground)
	assert.Equal(t, "green", cfg.Progress.FillColor, "missing file is created with defaults")
}

func TestConfigSet_InvalidValueRollsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	require.NoError(t, config.WriteDefault(path, false))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	err = configSet(path, "progress.fill_char", "ab")

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestConfigSet_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)

	err := configSet(path, "progress.speed", "fast")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown setting")
}

func TestConfigShow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("spinner:\n  foreground: red\n"), 0644))

	l, err := config.LoadOrDefault(path)
	require.NoError(t, err)

	var out bytes.Buffer
	configShow(&out, l)

	assert.Contains(t, out.String(), "Config: "+path)
	assert.Contains(t, out.String(), "spinner.foreground")
	assert.Contains(t, out.String(), "red")
	assert.Contains(t, out.String(), "file")
	assert.Contains(t, out.String(), "progress.margin")
}

func TestConfigCommands(t *testing.T) {
	out, stderr, code := executeCommand(t, "", "config", "init")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "Wrote")

	_, err := os.Stat(config.ConfigFileName)
	require.NoError(t, err)

	out, stderr, code = executeCommand(t, "", "config", "show")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "(defaults)")
	assert.Contains(t, out, "spinner.update_interval")
}

func TestConfigSetCommand(t *testing.T) {
	out, stderr, code := executeCommand(t, "", "config", "set", "output.color", "never")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "output.color = never")

	cfg, err := config.Load(config.ConfigFileName)
	require.NoError(t, err)
	assert.Equal(t, config.ColorNever, cfg.Output.Color)
}

func TestConfigKeys(t *testing.T) {
	plainOutput(t)
	var out bytes.Buffer

	configKeys(&out)

	for _, key := range config.Keys() {
		assert.Contains(t, out.String(), key)
	}
	assert.Contains(t, out.String(), "TERMKIT_SPINNER_UPDATE_INTERVAL")
	assert.Contains(t, out.String(), "50ms")
}
