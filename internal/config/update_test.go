package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rileyhilliard/termkit/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ConfigFileName)

	require.NoError(t, WriteDefault(path, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "# termkit configuration")
	assert.Contains(t, content, "update_interval: 50ms")
	assert.Contains(t, content, "fill_color: green")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestWriteDefault_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0644))

	err := WriteDefault(path, false)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))

	require.NoError(t, WriteDefault(path, true))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "progress:")
}

func TestSetValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	content := `# my settings
version: 1
spinner:
  foreground: cyan # favourite
  update_interval: 50ms
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	require.NoError(t, SetValue(path, "spinner.update_interval", "200ms"))
	require.NoError(t, SetValue(path, "progress.margin", "14"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# my settings")
	assert.Contains(t, string(data), "# favourite")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 200*time.Millisecond, cfg.Spinner.UpdateInterval)
	assert.Equal(t, "cyan", cfg.Spinner.Foreground)
	assert.Equal(t, 14, cfg.Progress.Margin)
}

func TestSetValue_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, nil, 0644))

	require.NoError(t, SetValue(path, "output.color", "never"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ColorNever, cfg.Output.Color)
}

func TestSetValue_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0644))

	err := SetValue(path, "spinner.speed", "fast")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestSetValue_NotASection(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("spinner: fast\n"), 0644))

	err := SetValue(path, "spinner.foreground", "red")
	assert.Error(t, err)
}

func TestSetValue_MissingFile(t *testing.T) {
	err := SetValue(filepath.Join(t.TempDir(), "missing.yaml"), "output.color", "never")
	assert.Error(t, err)
}
