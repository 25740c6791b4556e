// Package runner implements runner resolution (C2, spec.md §4.2): mapping a
// definition family to a concrete Runner by examining lockfiles/ancillary
// signals, and probing whether that runner's binary is available on PATH.
package runner

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/delacli/dela/internal/config"
	"github.com/delacli/dela/internal/types"
)

// fixedFamily maps the families whose runner never varies by host signal.
var fixedFamily = map[types.DefinitionFamily]types.Runner{
	types.FamilyMakefile:      types.RunnerMake,
	types.FamilyMavenPom:      types.RunnerMvn,
	types.FamilyGradle:        types.RunnerGradle,
	types.FamilyGithubActions: types.RunnerAct,
	types.FamilyDockerCompose: types.RunnerCompose,
	types.FamilyCMake:         types.RunnerCMake,
	types.FamilyTravis:        types.RunnerTravis,
	types.FamilyJustfile:      types.RunnerJust,
	types.FamilyTaskfile:      types.RunnerTask,
}

// Resolve decides which concrete runner a task family dispatches to
// (spec.md §4.2). filePath is the definition file's absolute path (used for
// package.json lockfile sniffing). fileContent is the raw bytes of that
// same file (used for pyproject.toml content inspection); callers that
// don't have it for other families may pass nil.
func Resolve(family types.DefinitionFamily, filePath string, fileContent []byte) types.Runner {
	if r, ok := fixedFamily[family]; ok {
		return r
	}

	switch family {
	case types.FamilyPackageJSON:
		return resolvePackageJSONRunner(filePath)
	case types.FamilyPyprojectToml:
		return resolvePyprojectRunner(fileContent)
	default:
		return ""
	}
}

// resolvePackageJSONRunner sniffs lockfiles in the same directory as
// package.json, in config.LockfilePriority order, defaulting to npm.
func resolvePackageJSONRunner(packageJSONPath string) types.Runner {
	dir := filepath.Dir(packageJSONPath)
	for _, entry := range config.LockfilePriority {
		if _, err := os.Stat(filepath.Join(dir, entry.Lockfile)); err == nil {
			return types.Runner(entry.Runner)
		}
	}
	return types.RunnerNpm
}

// resolvePyprojectRunner inspects pyproject.toml content: [tool.poetry]
// present selects poetry; [tool.poe.tasks] present selects poe; otherwise uv.
func resolvePyprojectRunner(content []byte) types.Runner {
	var doc struct {
		Tool struct {
			Poetry map[string]any `toml:"poetry"`
			Poe    struct {
				Tasks map[string]any `toml:"tasks"`
			} `toml:"poe"`
		} `toml:"tool"`
	}
	if err := toml.Unmarshal(content, &doc); err != nil {
		return types.RunnerUv
	}
	if doc.Tool.Poetry != nil {
		return types.RunnerPoetry
	}
	if len(doc.Tool.Poe.Tasks) > 0 {
		return types.RunnerPoe
	}
	return types.RunnerUv
}
