package command

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	homedir "github.com/mitchellh/go-homedir"

	"github.com/delacli/dela/internal/allowlist"
	"github.com/delacli/dela/internal/delaerr"
	"github.com/delacli/dela/internal/paths"
	"github.com/delacli/dela/internal/shadow"
	"github.com/delacli/dela/internal/shellintegration"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create ~/.dela and append the shell integration line to your rc file",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	if err := paths.EnsureDelaHome(); err != nil {
		return fmt.Errorf("%w: %v", delaerr.ErrIO, err)
	}

	if !fileExists(paths.AllowlistPath()) {
		if err := allowlist.Save(&allowlist.Document{}); err != nil {
			return err
		}
	}

	shellName := shadow.ShellFromEnv()
	if shellName == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "~/.dela initialized. Could not detect a supported shell from $SHELL; run 'dela configure-shell' manually.")
		return nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return fmt.Errorf("%w: %v", delaerr.ErrIO, err)
	}
	rcPath, ok := shellintegration.RcFilePath(shellName, home)
	if !ok {
		return fmt.Errorf("%w: %s", delaerr.ErrUnsupportedShell, shellName)
	}

	line := shellintegration.IntegrationLine("dela")
	if existing, err := os.ReadFile(rcPath); err == nil && strings.Contains(string(existing), line) {
		fmt.Fprintf(cmd.OutOrStdout(), "~/.dela initialized. Integration line already present in %s.\n", rcPath)
		return nil
	}
	if err := ensureLineInFile(rcPath, line); err != nil {
		return fmt.Errorf("%w: %v", delaerr.ErrIO, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "~/.dela initialized. Added integration line to %s (restart your shell or source it).\n", rcPath)
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ensureLineInFile appends line to path, creating parent directories and the
// file as needed, unless line is already present.
func ensureLineInFile(path, line string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if strings.Contains(string(existing), line) {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if len(existing) > 0 && !strings.HasSuffix(string(existing), "\n") {
		if _, err := f.WriteString("\n"); err != nil {
			return err
		}
	}
	_, err = f.WriteString(line + "\n")
	return err
}
