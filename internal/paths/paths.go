// Package paths resolves dela's on-disk layout under the user's home
// directory.
//
// dela keeps exactly one piece of persisted state: the allowlist TOML file
// at ~/.dela/allowlist.toml (§3, §6). Everything else is recomputed from
// scratch on every invocation.
//
// Environment variables:
//   - HOME: read indirectly via homedir.Dir
//   - DELA_HOME: overrides the dela home directory (default: ~/.dela)
package paths

import (
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/delacli/dela/internal/config"
)

// DelaHome returns the dela home directory, honoring DELA_HOME.
func DelaHome() string {
	if h := os.Getenv(config.DelaHomeOverrideEnv); h != "" {
		return h
	}
	home, err := homedir.Dir()
	if err != nil {
		return config.DelaDirName
	}
	return filepath.Join(home, config.DelaDirName)
}

// AllowlistPath returns the absolute path to allowlist.toml.
func AllowlistPath() string {
	return filepath.Join(DelaHome(), config.AllowlistFileName)
}

// EnsureDelaHome creates ~/.dela (and parents) if it does not already exist.
func EnsureDelaHome() error {
	return os.MkdirAll(DelaHome(), config.DefaultDirPerms)
}
