package disambiguate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delacli/dela/internal/types"
)

func task(source string, runner types.Runner) types.Task {
	return types.Task{SourceName: source, UniqueName: source, Runner: runner, FilePath: "/repo/" + string(runner)}
}

func TestDisambiguate_UnambiguousUnshadowedKeepsSourceName(t *testing.T) {
	tasks := []types.Task{task("build", types.RunnerMake)}
	out := Disambiguate(tasks)
	assert.Equal(t, "build", out[0].UniqueName)
	assert.False(t, out[0].IsAmbiguous())
}

func TestDisambiguate_TwoWaySplitGrowsSuffixFromRunnerName(t *testing.T) {
	tasks := []types.Task{
		task("test", types.RunnerMake),
		task("test", types.RunnerNpm),
	}
	out := Disambiguate(tasks)
	assert.Equal(t, "test-m", out[0].UniqueName)
	assert.Equal(t, "test-n", out[1].UniqueName)
	assert.True(t, out[0].IsAmbiguous())
	assert.True(t, out[1].IsAmbiguous())
}

func TestDisambiguate_SharedRunnerShortNameExtendsInLockstep(t *testing.T) {
	tasks := []types.Task{
		task("build", types.RunnerTask),
		task("build", types.RunnerTask),
	}
	out := Disambiguate(tasks)
	names := map[string]bool{out[0].UniqueName: true, out[1].UniqueName: true}
	assert.Len(t, names, 2, "both tasks must receive distinct unique names")
	for _, n := range []string{out[0].UniqueName, out[1].UniqueName} {
		assert.Contains(t, n, "build-task")
	}
}

func TestDisambiguate_ShadowedSingletonStillGetsSuffixed(t *testing.T) {
	tasks := []types.Task{task("cd", types.RunnerMake)}
	tasks[0].Shadow = &types.Shadow{Kind: types.ShadowShellBuiltin, ShellName: "zsh"}

	out := Disambiguate(tasks)
	assert.True(t, out[0].IsAmbiguous())
	assert.Equal(t, "cd-m", out[0].UniqueName)
}

func TestDisambiguate_ResultHasPairwiseDistinctNames(t *testing.T) {
	tasks := []types.Task{
		task("build", types.RunnerMake),
		task("build", types.RunnerNpm),
		task("build", types.RunnerGradle),
		task("test", types.RunnerMake),
	}
	out := Disambiguate(tasks)

	seen := make(map[string]struct{})
	for _, tk := range out {
		_, dup := seen[tk.UniqueName]
		assert.False(t, dup, "duplicate unique_name %q", tk.UniqueName)
		seen[tk.UniqueName] = struct{}{}
		assert.True(t, len(tk.UniqueName) >= len(tk.SourceName))
	}
}

func TestDisambiguate_IsIdempotent(t *testing.T) {
	tasks := []types.Task{
		task("build", types.RunnerMake),
		task("build", types.RunnerNpm),
		task("test", types.RunnerMake),
	}
	once := Disambiguate(tasks)
	twice := Disambiguate(once)
	for i := range once {
		assert.Equal(t, once[i].UniqueName, twice[i].UniqueName)
	}
}

func TestResolve_MatchesUniqueNameFirst(t *testing.T) {
	tasks := Disambiguate([]types.Task{
		task("build", types.RunnerMake),
		task("build", types.RunnerNpm),
	})
	got, err := Resolve(tasks, tasks[0].UniqueName)
	require.NoError(t, err)
	assert.Equal(t, tasks[0].UniqueName, got.UniqueName)
}

func TestResolve_AmbiguousSourceNameFailsWithoutUniqueMatch(t *testing.T) {
	tasks := Disambiguate([]types.Task{
		task("build", types.RunnerMake),
		task("build", types.RunnerNpm),
	})
	_, err := Resolve(tasks, "build")
	require.Error(t, err)
}

func TestResolve_UnknownNameIsNotFound(t *testing.T) {
	tasks := Disambiguate([]types.Task{task("build", types.RunnerMake)})
	_, err := Resolve(tasks, "nonexistent")
	require.Error(t, err)
}
