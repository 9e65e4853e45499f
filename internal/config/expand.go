package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath resolves a config path given on the command line: $VAR and
// ${VAR} references are replaced from the environment, then a leading ~ or
// ~/ becomes the current user's home directory. ~user is left alone.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}
	path = os.ExpandEnv(path)

	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
}
