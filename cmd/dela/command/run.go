package command

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/delacli/dela/internal/buildcmd"
	"github.com/delacli/dela/internal/config"
	"github.com/delacli/dela/internal/delaerr"
)

var runCmd = &cobra.Command{
	Use:                "run <name> [args…]",
	Short:              "Resolve, approve, and execute a task",
	Args:               cobra.MinimumNArgs(1),
	DisableFlagParsing: true,
	RunE:               runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	task, argv, err := resolveNamedTask(args)
	if err != nil {
		return err
	}

	if err := decideAllowed(task); err != nil {
		return err
	}
	if !task.RunnerAvailable {
		return fmt.Errorf("%w: %s", delaerr.ErrRunnerUnavailable, task.Runner.ShortName())
	}

	builtCommand := buildcmd.Build(task, argv)
	code, err := spawn(builtCommand)
	if err != nil {
		return fmt.Errorf("%w: %v", delaerr.ErrIO, err)
	}
	os.Exit(code)
	return nil
}

// spawn runs the user's shell as "<shell> -c <builtCommand>", inheriting
// the caller's environment and working directory, and forwards SIGINT and
// SIGTERM to the child's process group while waiting (spec.md §4.7, §5).
func spawn(builtCommand string) (int, error) {
	shellPath := preferredShell()

	child := exec.Command(shellPath, "-c", builtCommand)
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr
	child.Env = append(os.Environ(), config.EnvTaskRunning+"=1")
	child.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := child.Start(); err != nil {
		return 0, err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	done := make(chan error, 1)
	go func() { done <- child.Wait() }()

	for {
		select {
		case sig := <-sigCh:
			if s, ok := sig.(syscall.Signal); ok {
				syscall.Kill(-child.Process.Pid, s)
			}
		case err := <-done:
			if err == nil {
				return 0, nil
			}
			if exitErr, ok := err.(*exec.ExitError); ok {
				return exitErr.ExitCode(), nil
			}
			return 0, err
		}
	}
}

// preferredShell returns the shell `run` spawns the built command through:
// $SHELL if set, else the first sh on PATH, else /bin/sh.
func preferredShell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	if path, err := exec.LookPath("sh"); err == nil {
		return path
	}
	return filepath.Join("/bin", "sh")
}
