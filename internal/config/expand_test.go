package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TERMKIT_TEST_DIR", "/srv/app")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"bare tilde", "~", home},
		{"tilde path", "~/.termkit.yaml", filepath.Join(home, ".termkit.yaml")},
		{"absolute", "/etc/termkit.yaml", "/etc/termkit.yaml"},
		{"relative", "conf/termkit.yaml", "conf/termkit.yaml"},
		{"other user unchanged", "~bob/x", "~bob/x"},
		{"env var", "$TERMKIT_TEST_DIR/.termkit.yaml", "/srv/app/.termkit.yaml"},
		{"braced env var", "${TERMKIT_TEST_DIR}/conf.yaml", "/srv/app/conf.yaml"},
		{"HOME var", "${HOME}/termkit.yaml", filepath.Join(home, "termkit.yaml")},
		{"unset var is empty", "${TERMKIT_TEST_UNSET}/x.yaml", "/x.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.input))
		})
	}
}
