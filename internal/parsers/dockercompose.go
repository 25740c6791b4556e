package parsers

import (
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/delacli/dela/internal/types"
)

type composeDoc struct {
	Services map[string]composeService `yaml:"services"`
}

type composeService struct {
	Image string `yaml:"image"`
}

// ParseDockerCompose emits one RawTask per top-level service key; the
// description is the service's image if present (spec.md §4.1).
func ParseDockerCompose(data []byte, path string) ([]types.RawTask, types.DefinitionFileStatus, string) {
	var doc composeDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, types.StatusParseError, err.Error()
	}

	names := make([]string, 0, len(doc.Services))
	for name := range doc.Services {
		names = append(names, name)
	}
	sort.Strings(names)

	tasks := make([]types.RawTask, 0, len(names))
	for _, name := range names {
		tasks = append(tasks, types.RawTask{
			SourceName:  name,
			Family:      types.FamilyDockerCompose,
			Description: doc.Services[name].Image,
		})
	}
	return tasks, types.StatusParsed, ""
}
