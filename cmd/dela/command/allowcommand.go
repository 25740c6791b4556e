package command

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/delacli/dela/internal/allowlist"
	"github.com/delacli/dela/internal/approval"
	"github.com/delacli/dela/internal/delaerr"
	"github.com/delacli/dela/internal/disambiguate"
	"github.com/delacli/dela/internal/discovery"
	"github.com/delacli/dela/internal/types"
)

var allowFlag int

var allowCommandCmd = &cobra.Command{
	Use:   "allow-command <name>",
	Short: "Check or interactively record allowlist approval for a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runAllowCommand,
}

func init() {
	allowCommandCmd.Flags().IntVar(&allowFlag, "allow", -1, "non-interactive approval choice (0-4, same numbering as the prompt)")
}

func runAllowCommand(cmd *cobra.Command, args []string) error {
	if alreadyRunning() {
		return nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	result := discovery.Discover(cwd)

	task, err := disambiguate.Resolve(result.Tasks, args[0])
	if err != nil {
		return err
	}

	return decideAllowed(task)
}

// decideAllowed implements allow-command's semantics (spec.md §4.7).
func decideAllowed(task types.Task) error {
	doc, err := allowlist.Load()
	if err != nil {
		return err
	}

	switch allowlist.IsAllowed(doc, task) {
	case allowlist.Allow:
		return nil
	case allowlist.Deny:
		return fmt.Errorf("%w: %s", delaerr.ErrDenied, task.UniqueName)
	default:
		choice := allowFlag
		if choice < 0 {
			choice = approval.AutoAllowChoice()
		}
		decision, err := approval.Resolve(task, choice, os.Stdin, os.Stderr)
		if err != nil {
			return err
		}
		if decision == allowlist.Deny {
			return fmt.Errorf("%w: %s", delaerr.ErrDenied, task.UniqueName)
		}
		return nil
	}
}
