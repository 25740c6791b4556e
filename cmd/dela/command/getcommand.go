package command

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/delacli/dela/internal/buildcmd"
	"github.com/delacli/dela/internal/delaerr"
	"github.com/delacli/dela/internal/disambiguate"
	"github.com/delacli/dela/internal/discovery"
	"github.com/delacli/dela/internal/types"
)

var getCommandCmd = &cobra.Command{
	Use:                "get-command <name> [-- args…]",
	Short:              "Print the shell command for a resolved task, without executing it",
	Args:               cobra.MinimumNArgs(1),
	DisableFlagParsing: true,
	RunE:               runGetCommand,
}

func runGetCommand(cmd *cobra.Command, args []string) error {
	if alreadyRunning() {
		return nil
	}
	task, argv, err := resolveNamedTask(args)
	if err != nil {
		return err
	}
	if !task.RunnerAvailable {
		return fmt.Errorf("%w: %s", delaerr.ErrRunnerUnavailable, task.Runner.ShortName())
	}
	fmt.Fprint(cmd.OutOrStdout(), buildcmd.Build(task, argv))
	return nil
}

// resolveNamedTask discovers tasks in cwd and applies the addressing rule
// (spec.md §4.5) to args[0], returning the matched task and the remaining
// argv tokens (args[1:], with a leading "--" stripped if present).
func resolveNamedTask(args []string) (types.Task, []string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return types.Task{}, nil, err
	}
	result := discovery.Discover(cwd)

	// A leading "--" (as dr's `get-command -- <name> <args…>` invocation
	// sends) only separates cobra flags from positionals; strip it before
	// reading the task name.
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	name := args[0]
	rest := args[1:]
	if len(rest) > 0 && rest[0] == "--" {
		rest = rest[1:]
	}

	task, err := disambiguate.Resolve(result.Tasks, name)
	if err != nil {
		return types.Task{}, nil, err
	}
	return task, rest, nil
}
