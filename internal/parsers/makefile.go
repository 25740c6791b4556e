package parsers

import (
	"regexp"
	"strings"

	"github.com/delacli/dela/internal/types"
)

// strictTargetRE matches an explicit Makefile rule line: one or more
// whitespace-separated target names, a single or double colon (double-colon
// rules count; a ":=" assignment does not), followed by optional dependencies.
var strictTargetRE = regexp.MustCompile(`^([^\s:=#][^:=]*?)\s*:{1,2}(?:[^=]|$)`)

// fallbackTargetRE is looser: it accepts any line that merely looks like
// "name:" even inside unusual formatting the strict scanner rejected.
var fallbackTargetRE = regexp.MustCompile(`^\s*([A-Za-z0-9_./%-]+)\s*:`)

// ParseMakefile emits one RawTask per explicit, non-pattern rule target
// (spec.md §4.1). It tolerates comments, ifeq/ifneq/endif conditional
// blocks (by treating them as ordinary non-matching lines), and trailing
// text after targets. Targets starting with "." (e.g. .PHONY) or containing
// "%" are skipped.
//
// When the strict scanner recovers zero targets, a looser fallback regex is
// applied; its output is tagged Parsed only if it recovered at least one
// plausible target, otherwise ParseError.
func ParseMakefile(data []byte, path string) ([]types.RawTask, types.DefinitionFileStatus, string) {
	tasks := scanMakefileTargets(data, strictTargetRE)
	if len(tasks) > 0 {
		return tasks, types.StatusParsed, ""
	}

	tasks = scanMakefileTargets(data, fallbackTargetRE)
	if len(tasks) > 0 {
		return tasks, types.StatusParsed, ""
	}

	return nil, types.StatusParseError, "no targets recovered from Makefile"
}

func scanMakefileTargets(data []byte, re *regexp.Regexp) []types.RawTask {
	var tasks []types.RawTask
	seen := make(map[string]struct{})

	lines := strings.Split(string(data), "\n")
	for _, line := range lines {
		if isRecipeOrCommentLine(line) {
			continue
		}
		// Strip a trailing line comment (# not inside a variable reference
		// like $(VAR) is good enough here; Makefiles rarely quote '#').
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}

		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		for _, name := range strings.Fields(m[1]) {
			if shouldSkipMakeTarget(name) {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			tasks = append(tasks, types.RawTask{
				SourceName: name,
				Family:     types.FamilyMakefile,
			})
		}
	}
	return tasks
}

func isRecipeOrCommentLine(line string) bool {
	if strings.HasPrefix(line, "\t") {
		return true
	}
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}

func shouldSkipMakeTarget(name string) bool {
	if name == "" {
		return true
	}
	if strings.HasPrefix(name, ".") {
		return true
	}
	if strings.Contains(name, "%") {
		return true
	}
	return false
}
