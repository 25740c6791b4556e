package command

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delacli/dela/internal/runner"
)

func TestRunList_MarksAmbiguousAndShadowedTasksWithFootnotes(t *testing.T) {
	runner.ResetCache()
	defer runner.ResetCache()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Makefile"), []byte("test:\n\techo hi\n\ncd:\n\techo hi\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"scripts": {"test": "jest"}}`), 0o644))
	chdir(t, dir)

	binDir := t.TempDir()
	t.Setenv("PATH", binDir)
	t.Setenv("SHELL", "/bin/zsh")

	cmd := newTestCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)

	require.NoError(t, runList(cmd, nil))
	out := buf.String()

	assert.Contains(t, out, "‖")
	assert.Contains(t, out, "†")
	assert.Contains(t, out, "Duplicate") // duplicate footnote section heading text is flexible

	for _, line := range splitLines(out) {
		if strings.Contains(line, "(make)") && strings.Contains(line, "†") {
			if strings.HasPrefix(strings.TrimSpace(line), "test-") {
				assert.Contains(t, line, "‖", "test is defined in two files, so it keeps the ambiguity marker alongside the shadow marker")
			} else {
				assert.NotContains(t, line, "‖", "a shadowed-but-unique source_name must not get the ambiguity marker")
			}
		}
	}
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

func TestRunList_EmptyDirectoryPrintsNothingButSucceeds(t *testing.T) {
	runner.ResetCache()
	defer runner.ResetCache()
	chdir(t, t.TempDir())

	cmd := newTestCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)

	require.NoError(t, runList(cmd, nil))
	assert.Empty(t, buf.String())
}
