package parsers

import (
	"sort"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/delacli/dela/internal/types"
)

// pyprojectDoc mirrors just the tables dela reads from pyproject.toml.
// [tool.poe.tasks] entries may be a bare command string or a table with a
// "help"/"cmd" field (poe-the-poet's "full task" form); both shapes decode
// cleanly into interface{} here and are normalized in ParsePyprojectToml.
type pyprojectDoc struct {
	Tool struct {
		Poetry struct {
			Scripts map[string]string `toml:"scripts"`
		} `toml:"poetry"`
		Poe struct {
			Tasks map[string]any `toml:"tasks"`
		} `toml:"poe"`
	} `toml:"tool"`
	Project struct {
		Scripts map[string]string `toml:"scripts"`
	} `toml:"project"`
}

// ParsePyprojectToml emits RawTasks from [tool.poetry.scripts],
// [project.scripts], and [tool.poe.tasks] (spec.md §4.1). The concrete
// runner (uv/poetry/poe) is chosen later by the runner resolver (C2), not
// here.
func ParsePyprojectToml(data []byte, path string) ([]types.RawTask, types.DefinitionFileStatus, string) {
	var doc pyprojectDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, types.StatusParseError, err.Error()
	}

	var tasks []types.RawTask
	tasks = append(tasks, sortedScriptTasks(doc.Tool.Poetry.Scripts, types.FamilyPyprojectToml)...)
	tasks = append(tasks, sortedScriptTasks(doc.Project.Scripts, types.FamilyPyprojectToml)...)

	names := make([]string, 0, len(doc.Tool.Poe.Tasks))
	for name := range doc.Tool.Poe.Tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		tasks = append(tasks, types.RawTask{
			SourceName:  name,
			Family:      types.FamilyPyprojectToml,
			Description: poeTaskDescription(doc.Tool.Poe.Tasks[name]),
		})
	}

	return tasks, types.StatusParsed, ""
}

func sortedScriptTasks(scripts map[string]string, family types.DefinitionFamily) []types.RawTask {
	if len(scripts) == 0 {
		return nil
	}
	names := make([]string, 0, len(scripts))
	for name := range scripts {
		names = append(names, name)
	}
	sort.Strings(names)

	tasks := make([]types.RawTask, 0, len(names))
	for _, name := range names {
		tasks = append(tasks, types.RawTask{SourceName: name, Family: family})
	}
	return tasks
}

func poeTaskDescription(v any) string {
	if table, ok := v.(map[string]any); ok {
		if help, ok := table["help"].(string); ok {
			return help
		}
	}
	return ""
}
