package command

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/delacli/dela/internal/config"
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd())
}

// alreadyRunning reports whether this invocation is nested inside a
// dr/command-not-found eval already in flight (DELA_TASK_RUNNING=1),
// printing a diagnostic note to stderr when it is. get-command and
// allow-command both refuse to recurse rather than risk the shell-side
// handler evaluating its own output a second time.
func alreadyRunning() bool {
	if os.Getenv(config.EnvTaskRunning) != "1" {
		return false
	}
	fmt.Fprintln(os.Stderr, "dela: refusing to run recursively (DELA_TASK_RUNNING=1)")
	return true
}
