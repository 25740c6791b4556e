package parsers

import (
	"regexp"

	"github.com/delacli/dela/internal/types"
)

// gradleTaskRE matches the syntactic task declaration forms spec.md §4.1
// names: `task foo { ... }`, `tasks.register("foo") { ... }`, and the
// generic form `tasks.register<T>("foo") { ... }`. Collisions within the
// same file are intentionally permitted here — the disambiguator (C5)
// resolves them.
var gradleTaskRE = regexp.MustCompile(`(?:^|\s)task\s+([A-Za-z_][A-Za-z0-9_]*)\s*[({]|tasks\.register(?:<[^>]*>)?\(\s*["']([A-Za-z_][A-Za-z0-9_]*)["']`)

// ParseGradle emits one RawTask per syntactic task declaration found by
// regex scan, not a full Groovy/Kotlin parse (spec.md §4.1 fixes only the
// output contract, not the parser's internal grammar).
func ParseGradle(data []byte, path string) ([]types.RawTask, types.DefinitionFileStatus, string) {
	matches := gradleTaskRE.FindAllStringSubmatch(string(data), -1)
	if len(matches) == 0 {
		return nil, types.StatusParsed, ""
	}

	tasks := make([]types.RawTask, 0, len(matches))
	for _, m := range matches {
		name := m[1]
		if name == "" {
			name = m[2]
		}
		if name == "" {
			continue
		}
		tasks = append(tasks, types.RawTask{
			SourceName: name,
			Family:     types.FamilyGradle,
		})
	}
	return tasks, types.StatusParsed, ""
}
