package parsers

import (
	"gopkg.in/yaml.v3"

	"github.com/delacli/dela/internal/config"
	"github.com/delacli/dela/internal/types"
)

// ParseTravis emits one RawTask per curated phase key (config.TravisPhaseKeys)
// that is actually present as a top-level key in the file (spec.md §4.1).
func ParseTravis(data []byte, path string) ([]types.RawTask, types.DefinitionFileStatus, string) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, types.StatusParseError, err.Error()
	}

	var tasks []types.RawTask
	for _, phase := range config.TravisPhaseKeys {
		if _, ok := doc[phase]; ok {
			tasks = append(tasks, types.RawTask{
				SourceName: phase,
				Family:     types.FamilyTravis,
			})
		}
	}
	return tasks, types.StatusParsed, ""
}
