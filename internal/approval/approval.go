// Package approval implements the interactive approval prompt (C7,
// spec.md §4.6): presented when is_allowed returns Unknown, stdin is a
// TTY, and DELA_NON_INTERACTIVE is unset.
package approval

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/delacli/dela/internal/allowlist"
	"github.com/delacli/dela/internal/config"
	"github.com/delacli/dela/internal/delaerr"
	"github.com/delacli/dela/internal/types"
)

// Choice is one of the five prompt options (spec.md §4.6).
type Choice int

const (
	ChoiceAllowOnce Choice = iota
	ChoiceAllowTask
	ChoiceAllowFile
	ChoiceAllowDirectory
	ChoiceDeny
)

// IsInteractive reports whether the approval prompt should run: stdin is a
// TTY and DELA_NON_INTERACTIVE is unset.
func IsInteractive() bool {
	if os.Getenv(config.EnvNonInteractive) != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdin.Fd())
}

// AutoAllowChoice returns the --allow-equivalent choice implied by
// DELA_AUTO_ALLOW=1, or -1 if not set.
func AutoAllowChoice() int {
	if os.Getenv(config.EnvAutoAllow) == "1" {
		return int(ChoiceAllowFile)
	}
	return -1
}

// Resolve decides the outcome for a task whose allowlist status is Unknown:
// explicitChoice, if >= 0 (from --allow N or DELA_AUTO_ALLOW), is honored
// without prompting; otherwise, if the session is interactive, the user is
// prompted on r/w; otherwise the call fails with ErrRequiresApproval.
func Resolve(task types.Task, explicitChoice int, r io.Reader, w io.Writer) (allowlist.Decision, error) {
	var choice Choice
	switch {
	case explicitChoice >= 0:
		choice = Choice(explicitChoice)
	case IsInteractive():
		fmt.Fprintln(w, "requires approval")
		c, err := prompt(task, r, w)
		if err != nil {
			return allowlist.Unknown, err
		}
		choice = c
	default:
		return allowlist.Unknown, fmt.Errorf("task %q %w", task.UniqueName, delaerr.ErrRequiresApproval)
	}

	return apply(task, choice)
}

func prompt(task types.Task, r io.Reader, w io.Writer) (Choice, error) {
	dir := filepath.Dir(task.FilePath)
	fmt.Fprintln(w, "0) Allow once")
	fmt.Fprintln(w, "1) Allow this task")
	fmt.Fprintf(w, "2) Allow any command from %s\n", task.FilePath)
	fmt.Fprintf(w, "3) Allow any command from %s\n", dir)
	fmt.Fprintln(w, "4) Deny")

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return 0, fmt.Errorf("read approval choice: %w", delaerr.ErrIO)
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || n < 0 || n > 4 {
		return 0, fmt.Errorf("invalid approval choice: %w", delaerr.ErrIO)
	}
	return Choice(n), nil
}

// apply persists choice's entry (1-4) and reports the resulting decision.
// Choice 0 (allow once) persists nothing.
func apply(task types.Task, choice Choice) (allowlist.Decision, error) {
	switch choice {
	case ChoiceAllowOnce:
		return allowlist.Allow, nil

	case ChoiceAllowTask:
		err := allowlist.AddEntry(allowlist.Entry{
			Path:  task.FilePath,
			Scope: allowlist.ScopeTask,
			Tasks: []string{task.SourceName},
		})
		return allowlist.Allow, err

	case ChoiceAllowFile:
		err := allowlist.AddEntry(allowlist.Entry{Path: task.FilePath, Scope: allowlist.ScopeFile})
		return allowlist.Allow, err

	case ChoiceAllowDirectory:
		err := allowlist.AddEntry(allowlist.Entry{Path: filepath.Dir(task.FilePath), Scope: allowlist.ScopeDirectory})
		return allowlist.Allow, err

	case ChoiceDeny:
		err := allowlist.AddEntry(allowlist.Entry{Path: task.FilePath, Scope: allowlist.ScopeDeny})
		return allowlist.Deny, err

	default:
		return allowlist.Unknown, fmt.Errorf("unrecognized approval choice %d", choice)
	}
}
