package parsers

import (
	"encoding/json"
	"sort"

	"github.com/delacli/dela/internal/types"
)

// packageJSON is the minimal shape dela cares about; every other field is
// ignored per spec.md §4.1.
type packageJSON struct {
	Scripts map[string]string `json:"scripts"`
}

// ParsePackageJSON emits one RawTask per key under top-level "scripts".
// Malformed JSON yields ParseError.
func ParsePackageJSON(data []byte, path string) ([]types.RawTask, types.DefinitionFileStatus, string) {
	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, types.StatusParseError, err.Error()
	}

	if len(pkg.Scripts) == 0 {
		return nil, types.StatusParsed, ""
	}

	names := make([]string, 0, len(pkg.Scripts))
	for name := range pkg.Scripts {
		names = append(names, name)
	}
	sort.Strings(names)

	tasks := make([]types.RawTask, 0, len(names))
	for _, name := range names {
		tasks = append(tasks, types.RawTask{
			SourceName: name,
			Family:     types.FamilyPackageJSON,
		})
	}
	return tasks, types.StatusParsed, ""
}
