package allowlist

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delacli/dela/internal/config"
	"github.com/delacli/dela/internal/types"
)

func withDelaHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.DelaHomeOverrideEnv, home)
	return home
}

func TestLoad_MissingFileReturnsEmptyDocument(t *testing.T) {
	withDelaHome(t)
	doc, err := Load()
	require.NoError(t, err)
	assert.Empty(t, doc.Entries)
}

func TestSaveThenLoad_RoundTrips(t *testing.T) {
	withDelaHome(t)
	doc := &Document{Entries: []Entry{{Path: "/repo/Makefile", Scope: ScopeFile}}}
	require.NoError(t, Save(doc))

	got, err := Load()
	require.NoError(t, err)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, "/repo/Makefile", got.Entries[0].Path)
	assert.Equal(t, ScopeFile, got.Entries[0].Scope)
}

func TestIsAllowed_DenyBeatsDirectoryAndFile(t *testing.T) {
	doc := &Document{Entries: []Entry{
		{Path: "/repo", Scope: ScopeDirectory},
		{Path: "/repo/Makefile", Scope: ScopeFile},
		{Path: "/repo/Makefile", Scope: ScopeDeny},
	}}
	task := types.Task{FilePath: "/repo/Makefile", SourceName: "build"}
	assert.Equal(t, Deny, IsAllowed(doc, task))
}

func TestIsAllowed_DirectoryCoversNestedFile(t *testing.T) {
	doc := &Document{Entries: []Entry{
		{Path: "/repo", Scope: ScopeDirectory},
	}}
	task := types.Task{FilePath: "/repo/sub/Makefile", SourceName: "build"}
	assert.Equal(t, Allow, IsAllowed(doc, task))
}

func TestIsAllowed_TaskScopeRequiresNameMatch(t *testing.T) {
	doc := &Document{Entries: []Entry{
		{Path: "/repo/Makefile", Scope: ScopeTask, Tasks: []string{"build"}},
	}}
	build := types.Task{FilePath: "/repo/Makefile", SourceName: "build"}
	test := types.Task{FilePath: "/repo/Makefile", SourceName: "test"}
	assert.Equal(t, Allow, IsAllowed(doc, build))
	assert.Equal(t, Unknown, IsAllowed(doc, test))
}

func TestIsAllowed_NoMatchIsUnknown(t *testing.T) {
	doc := &Document{}
	task := types.Task{FilePath: "/repo/Makefile", SourceName: "build"}
	assert.Equal(t, Unknown, IsAllowed(doc, task))
}

func TestAddEntry_TaskScopeMergesIntoExistingEntry(t *testing.T) {
	withDelaHome(t)
	require.NoError(t, AddEntry(Entry{Path: "/repo/Makefile", Scope: ScopeTask, Tasks: []string{"build"}}))
	require.NoError(t, AddEntry(Entry{Path: "/repo/Makefile", Scope: ScopeTask, Tasks: []string{"test"}}))

	doc, err := Load()
	require.NoError(t, err)
	require.Len(t, doc.Entries, 1)
	assert.ElementsMatch(t, []string{"build", "test"}, doc.Entries[0].Tasks)
}

func TestAddEntry_IsIdempotentForSameTask(t *testing.T) {
	withDelaHome(t)
	require.NoError(t, AddEntry(Entry{Path: "/repo/Makefile", Scope: ScopeTask, Tasks: []string{"build"}}))
	require.NoError(t, AddEntry(Entry{Path: "/repo/Makefile", Scope: ScopeTask, Tasks: []string{"build"}}))

	doc, err := Load()
	require.NoError(t, err)
	require.Len(t, doc.Entries, 1)
	assert.Len(t, doc.Entries[0].Tasks, 1)
}

func TestSave_CreatesDelaHomeIfMissing(t *testing.T) {
	home := t.TempDir()
	nested := filepath.Join(home, "nested")
	t.Setenv(config.DelaHomeOverrideEnv, nested)

	require.NoError(t, Save(&Document{}))
	_, err := Load()
	require.NoError(t, err)
}
