package command

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delacli/dela/internal/allowlist"
	"github.com/delacli/dela/internal/config"
	"github.com/delacli/dela/internal/delaerr"
	"github.com/delacli/dela/internal/runner"
)

func withDelaHome(t *testing.T) {
	t.Helper()
	t.Setenv(config.DelaHomeOverrideEnv, t.TempDir())
}

func TestRunAllowCommand_NonInteractiveWithAllowFlagPersistsFileScope(t *testing.T) {
	runner.ResetCache()
	defer runner.ResetCache()
	withDelaHome(t)
	t.Setenv(config.EnvNonInteractive, "1")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Makefile"), []byte("build:\n\techo hi\n"), 0o644))
	chdir(t, dir)

	allowFlag = 2 // ChoiceAllowFile
	defer func() { allowFlag = -1 }()

	cmd := newTestCmd()
	err := runAllowCommand(cmd, []string{"build"})
	require.NoError(t, err)

	doc, err := allowlist.Load()
	require.NoError(t, err)
	require.Len(t, doc.Entries, 1)
	assert.Equal(t, allowlist.ScopeFile, doc.Entries[0].Scope)
}

func TestRunAllowCommand_NonInteractiveWithoutAllowFlagRequiresApproval(t *testing.T) {
	runner.ResetCache()
	defer runner.ResetCache()
	withDelaHome(t)
	t.Setenv(config.EnvNonInteractive, "1")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Makefile"), []byte("build:\n\techo hi\n"), 0o644))
	chdir(t, dir)

	allowFlag = -1

	cmd := newTestCmd()
	err := runAllowCommand(cmd, []string{"build"})
	require.Error(t, err)
	assert.ErrorIs(t, err, delaerr.ErrRequiresApproval)
	assert.True(t, strings.Contains(err.Error(), "requires approval"))
}

func TestRunAllowCommand_DenyEntryShortCircuitsWithoutPrompt(t *testing.T) {
	runner.ResetCache()
	defer runner.ResetCache()
	withDelaHome(t)
	t.Setenv(config.EnvNonInteractive, "1")

	dir := t.TempDir()
	makefile := filepath.Join(dir, "Makefile")
	require.NoError(t, os.WriteFile(makefile, []byte("build:\n\techo hi\n"), 0o644))
	chdir(t, dir)

	absMakefile, err := filepath.Abs(makefile)
	require.NoError(t, err)
	require.NoError(t, allowlist.Save(&allowlist.Document{Entries: []allowlist.Entry{
		{Path: absMakefile, Scope: allowlist.ScopeDeny},
	}}))

	allowFlag = -1
	cmd := newTestCmd()
	err = runAllowCommand(cmd, []string{"build"})
	require.Error(t, err)
	assert.ErrorIs(t, err, delaerr.ErrDenied)
}

func TestRunAllowCommand_AlreadyAllowedIsIdempotent(t *testing.T) {
	runner.ResetCache()
	defer runner.ResetCache()
	withDelaHome(t)
	t.Setenv(config.EnvNonInteractive, "1")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Makefile"), []byte("build:\n\techo hi\n"), 0o644))
	chdir(t, dir)

	allowFlag = 2
	defer func() { allowFlag = -1 }()

	cmd := newTestCmd()
	require.NoError(t, runAllowCommand(cmd, []string{"build"}))
	require.NoError(t, runAllowCommand(cmd, []string{"build"}))

	doc, err := allowlist.Load()
	require.NoError(t, err)
	assert.Len(t, doc.Entries, 1, "second allow-command must not append a duplicate entry")
}
