package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletion(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{"bash", "__start_termkit"},
		{"zsh", "#compdef termkit"},
		{"fish", "complete -c termkit"},
		{"powershell", "Register-ArgumentCompleter"},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			out, _, code := executeCommand(t, "", "completion", tt.shell)
			require.Equal(t, 0, code)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestCompletion_InvalidShell(t *testing.T) {
	_, stderr, code := executeCommand(t, "", "completion", "tcsh")

	assert.Equal(t, 1, code)
	assert.True(t, strings.Contains(stderr, "invalid argument"), stderr)
}

func TestConfigSetCompletesKeys(t *testing.T) {
	keys, _ := configSetCmd.ValidArgsFunction(configSetCmd, nil, "")
	assert.Contains(t, keys, "spinner.foreground")

	values, _ := configSetCmd.ValidArgsFunction(configSetCmd, []string{"spinner.foreground"}, "")
	assert.Empty(t, values)
}
