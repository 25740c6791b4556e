// Package config provides centralized defaults shared by dela's components.
//
// This package defines:
// - The directory/file name layout under ~/.dela
// - The package.json lockfile sniffing priority order (§4.2)
// - Per-shell builtin tables used by the shadow detector (§4.3)
// - Maven's fixed lifecycle phase list and Travis's curated phase keys (§4.1)
// - Exit codes for the CLI dispatcher (§4.8, §7)
//
// Environment variables:
//   - DELA_HOME: Override the dela home directory (default: ~/.dela)
//   - DELA_NON_INTERACTIVE: Disable the C7 interactive approval prompt
//   - DELA_AUTO_ALLOW: Equivalent to passing --allow 2 to allow-command
//   - DELA_LOG_LEVEL: zerolog level (default: info, or warn on non-TTY)
package config

import (
	"os"
	"path/filepath"
)

// === Default permissions ===

const (
	// DefaultDirPerms is the permission mode for directories dela creates.
	DefaultDirPerms = 0755

	// DefaultFilePerms is the permission mode for files dela creates.
	DefaultFilePerms = 0644
)

// === Dela home ===

// DelaDirName is the directory name under the user's home directory.
const DelaDirName = ".dela"

// AllowlistFileName is the TOML allowlist file name within DelaDirName.
const AllowlistFileName = "allowlist.toml"

// DelaHomeOverrideEnv is the environment variable that overrides DelaHome.
const DelaHomeOverrideEnv = "DELA_HOME"

// === Environment variables read by the allowlist/approval flow (§4.6) ===

const (
	EnvNonInteractive = "DELA_NON_INTERACTIVE"
	EnvAutoAllow      = "DELA_AUTO_ALLOW"
	EnvTaskRunning    = "DELA_TASK_RUNNING"
	EnvLogLevel       = "DELA_LOG_LEVEL"
)

// === package.json runner resolution (§4.2) ===

// LockfilePriority is the order in which lockfiles are sniffed in the same
// directory as package.json to pick a concrete JS/TS runner. The first
// lockfile found wins; absence of all four defaults to npm.
var LockfilePriority = []struct {
	Lockfile string
	Runner   string
}{
	{"bun.lockb", "bun"},
	{"pnpm-lock.yaml", "pnpm"},
	{"yarn.lock", "yarn"},
	{"package-lock.json", "npm"},
}

// === Shell builtins for the shadow detector (§4.3) ===

// Builtins maps a shell basename to its fixed set of builtin command names.
// Unknown shells (not one of these four keys) are treated as having no
// builtins, per spec.md §4.3.
var Builtins = map[string]map[string]struct{}{
	"zsh":  set("cd", "echo", "pwd", "export", "alias", "unalias", "source", ".", "eval", "exec", "exit", "fg", "bg", "jobs", "kill", "read", "set", "unset", "shift", "test", "[", "true", "false", "type", "umask", "wait", "history", "fc", "pushd", "popd", "dirs", "let", "local", "typeset", "declare", "function", "return", "break", "continue", "trap", "ulimit", "times", "hash", "builtin", "command", "enable", "disable", "zmodload", "autoload"),
	"bash": set("cd", "echo", "pwd", "export", "alias", "unalias", "source", ".", "eval", "exec", "exit", "fg", "bg", "jobs", "kill", "read", "set", "unset", "shift", "test", "[", "true", "false", "type", "umask", "wait", "history", "fc", "pushd", "popd", "dirs", "let", "local", "typeset", "declare", "function", "return", "break", "continue", "trap", "ulimit", "times", "hash", "builtin", "command", "caller", "mapfile", "readarray", "compgen", "complete"),
	"fish": set("cd", "echo", "pwd", "export", "alias", "source", "eval", "exec", "exit", "fg", "bg", "jobs", "kill", "read", "set", "test", "true", "false", "type", "umask", "wait", "history", "pushd", "popd", "dirs", "function", "return", "break", "continue", "status", "builtin", "command", "and", "or", "not", "begin", "end", "switch", "case", "for", "while", "if", "else"),
	"pwsh": set("cd", "Set-Location", "Get-Location", "echo", "Write-Output", "pwd", "export", "Set-Item", "alias", "Set-Alias", "exit", "Exit-PSSession", "kill", "Stop-Process", "read", "Read-Host", "Set-Variable", "Remove-Variable", "test", "Test-Path", "true", "false", "Get-Command", "wait", "Wait-Process", "history", "Get-History", "function", "return", "break", "continue", "trap", "Clear-History"),
}

func set(items ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(items))
	for _, it := range items {
		m[it] = struct{}{}
	}
	return m
}

// SupportedShells are the shells configure-shell/shadow-detection recognize.
var SupportedShells = []string{"zsh", "bash", "fish", "pwsh"}

// === Maven pom.xml fixed lifecycle phases (§4.1) ===

// MavenLifecyclePhases is the fixed set of Maven lifecycle phases a user
// could invoke directly, always emitted regardless of pom.xml content.
var MavenLifecyclePhases = []string{"clean", "compile", "test", "package", "install", "verify"}

// === Travis curated phase keys (§4.1) ===

// TravisPhaseKeys is the curated set of named phases recognized in .travis.yml;
// only phases actually present in the file are emitted as tasks.
var TravisPhaseKeys = []string{
	"install", "script", "before_install", "before_script", "after_success",
	"after_failure", "after_script", "before_deploy", "deploy", "before_cache",
}

// === Exit codes (§4.8, §7) ===

const (
	ExitOK               = 0
	ExitIOError          = 2
	ExitUnsupportedShell = 2
	ExitNotFound         = 10
	ExitRunnerUnavailable = 11
	ExitAmbiguous        = 12
	ExitDenied           = 20
	ExitRequiresApproval = 21
)

// DelaHome returns the dela home directory, honoring DelaHomeOverrideEnv.
// Callers that need the cross-platform home-directory lookup use
// internal/paths.DelaHome instead; this helper exists for code (like tests)
// that only needs the override semantics without the homedir dependency.
func DelaHome() string {
	if h := os.Getenv(DelaHomeOverrideEnv); h != "" {
		return h
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return DelaDirName
	}
	return filepath.Join(home, DelaDirName)
}
