package parsers

import (
	"regexp"
	"strings"

	"github.com/delacli/dela/internal/types"
)

// justRecipeRE matches a recipe header: a bare (unindented, non-assignment)
// name optionally followed by parameters, then a colon. Assignment lines
// ("name := value") are excluded by requiring the colon not be followed by
// "=" and not be part of "::=".
var justRecipeRE = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_-]*)[^:=]*:(?:[^=:]|$)`)

// ParseJustfile emits one RawTask per recipe (spec.md §4.1). The Justfile
// filename lookup is done by the discovery engine, not here; it tries the
// exact names "Justfile" and "justfile" only, so other capitalizations are
// not found.
func ParseJustfile(data []byte, path string) ([]types.RawTask, types.DefinitionFileStatus, string) {
	var tasks []types.RawTask
	seen := make(map[string]struct{})

	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "\t") || strings.HasPrefix(line, "    ") {
			continue // recipe body, indented
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "@") {
			continue
		}

		m := justRecipeRE.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		name := m[1]
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		tasks = append(tasks, types.RawTask{SourceName: name, Family: types.FamilyJustfile})
	}

	return tasks, types.StatusParsed, ""
}
