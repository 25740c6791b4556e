// Package delaerr defines dela's error taxonomy (spec.md §7) as sentinel
// errors checked with errors.Is, plus the mapping from error to process
// exit code used by cmd/dela's dispatcher. No package below cmd/dela panics
// or os.Exits directly; every operation returns one of these (wrapped with
// context via fmt.Errorf("...: %w", ...)) and only the dispatcher decides
// how to surface it.
package delaerr

import (
	"errors"

	"github.com/delacli/dela/internal/config"
)

var (
	// ErrNotFound means no task matches the requested name.
	ErrNotFound = errors.New("not found")

	// ErrAmbiguous means the name matches multiple tasks by source_name and
	// none by unique_name.
	ErrAmbiguous = errors.New("ambiguous")

	// ErrRunnerUnavailable means the resolved runner's short-name is not on PATH.
	ErrRunnerUnavailable = errors.New("runner unavailable")

	// ErrRequiresApproval means allow-command ran non-interactively without
	// --allow and the allowlist decision was Unknown. Its message always
	// contains the literal substring "requires approval" per §4.6/§7.
	ErrRequiresApproval = errors.New("requires approval")

	// ErrDenied means the allowlist decision was Deny.
	ErrDenied = errors.New("denied")

	// ErrUnsupportedShell means configure-shell was invoked for a shell
	// outside config.SupportedShells.
	ErrUnsupportedShell = errors.New("unsupported shell")

	// ErrIO wraps filesystem failures on the allowlist file or an rc file.
	ErrIO = errors.New("io error")
)

// ExitCode maps an error produced by the core packages to a process exit
// code, per spec.md §4.8/§7. A nil error maps to config.ExitOK. An
// unrecognized non-nil error maps to 1, matching "no panics escape; all
// other errors are reported at the top-level dispatcher".
func ExitCode(err error) int {
	switch {
	case err == nil:
		return config.ExitOK
	case errors.Is(err, ErrNotFound):
		return config.ExitNotFound
	case errors.Is(err, ErrRunnerUnavailable):
		return config.ExitRunnerUnavailable
	case errors.Is(err, ErrAmbiguous):
		return config.ExitAmbiguous
	case errors.Is(err, ErrDenied):
		return config.ExitDenied
	case errors.Is(err, ErrRequiresApproval):
		return config.ExitRequiresApproval
	case errors.Is(err, ErrUnsupportedShell):
		return config.ExitUnsupportedShell
	case errors.Is(err, ErrIO):
		return config.ExitIOError
	default:
		return 1
	}
}
