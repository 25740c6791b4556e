package command

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delacli/dela/internal/delaerr"
	"github.com/delacli/dela/internal/runner"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}

func newTestCmd() *cobra.Command {
	c := &cobra.Command{}
	c.SetOut(&bytes.Buffer{})
	return c
}

func TestRunGetCommand_PrintsBuiltCommandForMakeTask(t *testing.T) {
	runner.ResetCache()
	defer runner.ResetCache()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Makefile"), []byte("build:\n\techo hi\n"), 0o644))
	chdir(t, dir)
	t.Setenv("PATH", os.Getenv("PATH")) // keep real PATH so "make" resolves if installed

	cmd := newTestCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)

	err := runGetCommand(cmd, []string{"build"})
	if err != nil {
		require.ErrorIs(t, err, delaerr.ErrRunnerUnavailable, "only acceptable failure is make missing from PATH in this sandbox")
		return
	}
	absMakefile, _ := filepath.Abs(filepath.Join(dir, "Makefile"))
	assert.Equal(t, "make -f "+absMakefile+" build", buf.String())
}

func TestRunGetCommand_UnknownTaskIsNotFound(t *testing.T) {
	runner.ResetCache()
	defer runner.ResetCache()

	dir := t.TempDir()
	chdir(t, dir)

	cmd := newTestCmd()
	err := runGetCommand(cmd, []string{"nonexistent"})
	require.Error(t, err)
	assert.ErrorIs(t, err, delaerr.ErrNotFound)
}

func TestRunGetCommand_StripsLeadingDashDash(t *testing.T) {
	runner.ResetCache()
	defer runner.ResetCache()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"scripts": {"build": "webpack"}}`), 0o644))
	chdir(t, dir)
	t.Setenv("PATH", os.Getenv("PATH"))

	cmd := newTestCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)

	err := runGetCommand(cmd, []string{"--", "build"})
	if err != nil {
		require.ErrorIs(t, err, delaerr.ErrRunnerUnavailable)
		return
	}
	assert.Contains(t, buf.String(), "run build")
}
