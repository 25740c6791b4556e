// Package shadow implements the shadow detector (C3, spec.md §4.3): for a
// given task name, decide whether a shell builtin (for the active shell) or
// a PATH executable of the same name would intercept it before dela's
// command-not-found handler ever runs.
//
// The PATH walk follows the same left-to-right os.Getenv("PATH")-splitting
// idiom used throughout the teacher's internal/osutil and
// cmd/xplat/cmd/os_which.go for locating binaries.
package shadow

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/delacli/dela/internal/config"
	"github.com/delacli/dela/internal/types"
)

// ShellFromEnv derives the active shell identity from the SHELL environment
// variable's basename (spec.md §4.3). Unknown or unset values return "".
func ShellFromEnv() string {
	sh := strings.ToLower(filepath.Base(os.Getenv("SHELL")))
	for _, known := range config.SupportedShells {
		if sh == known {
			return known
		}
	}
	return ""
}

// Detect decides a task name's shadow status for the given shell identity
// (normally shadow.ShellFromEnv()). Precedence: ShellBuiltin >
// PathExecutable — a builtin shadow is reported even when a PATH executable
// of the same name also exists, because the shell never reaches the PATH
// lookup (§4.3).
func Detect(shellName, taskName string) *types.Shadow {
	if isBuiltin(shellName, taskName) {
		return &types.Shadow{Kind: types.ShadowShellBuiltin, ShellName: shellName}
	}
	if path, ok := findOnPath(taskName); ok {
		return &types.Shadow{Kind: types.ShadowPathExecutable, ExecutablePath: path}
	}
	return nil
}

func isBuiltin(shellName, taskName string) bool {
	builtins, ok := config.Builtins[shellName]
	if !ok {
		return false
	}
	_, found := builtins[taskName]
	return found
}

// findOnPath walks PATH left-to-right and returns the first executable
// regular file whose name matches taskName.
func findOnPath(taskName string) (string, bool) {
	pathEnv := os.Getenv("PATH")
	for _, dir := range filepath.SplitList(pathEnv) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, taskName)
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		if isExecutable(info) {
			return candidate, true
		}
	}
	return "", false
}

func isExecutable(info os.FileInfo) bool {
	return info.Mode()&0111 != 0
}
