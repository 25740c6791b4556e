package parsers

import (
	"regexp"

	"github.com/delacli/dela/internal/types"
)

// cmakeTargetRE captures add_custom_target(name [ALL] [COMMENT "..."] ...),
// allowing arbitrary content (dependencies, commands) between the name and
// an optional trailing COMMENT clause, all on one statement.
var cmakeTargetRE = regexp.MustCompile(`(?s)add_custom_target\s*\(\s*([A-Za-z0-9_-]+)([^)]*)\)`)
var cmakeCommentRE = regexp.MustCompile(`COMMENT\s+"([^"]*)"`)

// ParseCMake emits one RawTask per add_custom_target(name ...) statement;
// description comes from a trailing COMMENT "..." clause (spec.md §4.1).
func ParseCMake(data []byte, path string) ([]types.RawTask, types.DefinitionFileStatus, string) {
	matches := cmakeTargetRE.FindAllStringSubmatch(string(data), -1)
	if len(matches) == 0 {
		return nil, types.StatusParsed, ""
	}

	tasks := make([]types.RawTask, 0, len(matches))
	for _, m := range matches {
		name := m[1]
		desc := ""
		if cm := cmakeCommentRE.FindStringSubmatch(m[2]); cm != nil {
			desc = cm[1]
		}
		tasks = append(tasks, types.RawTask{
			SourceName:  name,
			Family:      types.FamilyCMake,
			Description: desc,
		})
	}
	return tasks, types.StatusParsed, ""
}
