package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/delacli/dela/internal/delaerr"
	"github.com/delacli/dela/internal/shadow"
	"github.com/delacli/dela/internal/shellintegration"
)

var configureShellCmd = &cobra.Command{
	Use:   "configure-shell",
	Short: "Print the shell integration snippet for $SHELL",
	RunE:  runConfigureShell,
}

func runConfigureShell(cmd *cobra.Command, args []string) error {
	shellName := shadow.ShellFromEnv()
	snippet, ok := shellintegration.Snippet(shellName, "dela")
	if !ok {
		return fmt.Errorf("%w: %q", delaerr.ErrUnsupportedShell, shellName)
	}
	fmt.Fprint(cmd.OutOrStdout(), snippet)
	return nil
}
