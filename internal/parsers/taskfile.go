package parsers

import (
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/delacli/dela/internal/types"
)

// taskfileDoc is the subset of Taskfile.yml's schema dela reads. Adapted
// from the teacher's internal/taskfile.Taskfile/Task structs (which decode
// the full authoring schema for generation/linting); dela only ever reads,
// so Deps/Cmds/Vars/Status are dropped.
type taskfileDoc struct {
	Tasks map[string]taskfileTask `yaml:"tasks"`
}

type taskfileTask struct {
	Desc    string `yaml:"desc"`
	Summary string `yaml:"summary"`
}

// ParseTaskfile emits one RawTask per key under top-level "tasks"; the
// description comes from desc, falling back to summary (spec.md §4.1).
func ParseTaskfile(data []byte, path string) ([]types.RawTask, types.DefinitionFileStatus, string) {
	var doc taskfileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, types.StatusParseError, err.Error()
	}

	names := make([]string, 0, len(doc.Tasks))
	for name := range doc.Tasks {
		names = append(names, name)
	}
	sort.Strings(names)

	tasks := make([]types.RawTask, 0, len(names))
	for _, name := range names {
		t := doc.Tasks[name]
		desc := t.Desc
		if desc == "" {
			desc = t.Summary
		}
		tasks = append(tasks, types.RawTask{
			SourceName:  name,
			Family:      types.FamilyTaskfile,
			Description: desc,
		})
	}
	return tasks, types.StatusParsed, ""
}
