// Package command wires dela's six subcommands (C9, spec.md §4.8) onto a
// cobra root command and maps returned errors to process exit codes via
// internal/delaerr.
package command

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/delacli/dela/internal/delaerr"
)

var version = "dev"

// SetVersion sets the version string printed by --version, set from main.
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:     "dela",
	Short:   "Discover and run tasks across Makefile, package.json, Taskfile.yml, and more",
	Version: version,
	Long: `dela unifies task discovery and invocation across heterogeneous
build and task files (Makefile, package.json, pyproject.toml, Taskfile.yml,
pom.xml, Gradle, GitHub Actions, docker-compose, CMake, Travis, Justfile)
behind one command-not-found shell integration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	// PersistentPreRunE raises the global zerolog level once flags are
	// parsed: internal/bootstrap's init() already ran at process start
	// (before any flag was visible), so --verbose is honored here instead,
	// overriding that default for the rest of this invocation.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, err := cmd.Flags().GetBool("verbose")
		if err == nil && verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose logging")
	rootCmd.AddCommand(initCmd, configureShellCmd, listCmd, getCommandCmd, allowCommandCmd, runCmd)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd.Version = version
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	fmt.Fprintln(os.Stderr, "dela:", err)
	return delaerr.ExitCode(err)
}
