// Package buildcmd implements the command builder (C8, spec.md §4.7):
// synthesize the shell command line that invokes a task's resolved runner.
package buildcmd

import (
	"strings"

	"github.com/delacli/dela/internal/types"
)

// Build produces the shell command string for task with the given extra
// argv tokens, per the per-runner rules in spec.md §4.7.
func Build(task types.Task, argv []string) string {
	switch task.Runner {
	case types.RunnerMake:
		return joinArgs(append([]string{"make", "-f", task.FilePath, task.SourceName}, argv...)...)

	case types.RunnerNpm, types.RunnerPnpm, types.RunnerYarn, types.RunnerBun:
		parts := []string{string(task.Runner), "run", task.SourceName}
		if len(argv) > 0 {
			hasDashDash := false
			for _, a := range argv {
				if a == "--" {
					hasDashDash = true
					break
				}
			}
			if hasDashDash {
				parts = append(parts, argv...)
			} else {
				parts = append(parts, "--")
				parts = append(parts, argv...)
			}
		}
		return joinArgs(parts...)

	case types.RunnerUv:
		return joinArgs(append([]string{"uv", "run", task.SourceName}, argv...)...)
	case types.RunnerPoetry:
		return joinArgs(append([]string{"poetry", "run", task.SourceName}, argv...)...)
	case types.RunnerPoe:
		return joinArgs(append([]string{"poe", task.SourceName}, argv...)...)
	case types.RunnerTask:
		return joinArgs(append([]string{"task", task.SourceName}, argv...)...)
	case types.RunnerJust:
		return joinArgs(append([]string{"just", task.SourceName}, argv...)...)

	case types.RunnerMvn:
		return joinArgs("mvn", task.SourceName)

	case types.RunnerGradle:
		return joinArgs(append([]string{"gradle", task.SourceName}, argv...)...)

	case types.RunnerAct:
		return joinArgs(append([]string{"act", "-W", task.FilePath}, argv...)...)

	case types.RunnerCompose:
		return joinArgs(append([]string{"docker", "compose", "run", task.SourceName}, argv...)...)

	case types.RunnerCMake:
		return joinArgs("cmake", "--build", ".", "--target", task.SourceName)

	case types.RunnerTravis:
		return joinArgs("travis", task.SourceName)

	default:
		return joinArgs(append([]string{task.SourceName}, argv...)...)
	}
}

// joinArgs quotes each non-empty token per spec.md §4.7 and joins with
// spaces, dropping any empty tokens produced by callers that pass a bare
// joined argv string for the make case.
func joinArgs(tokens ...string) string {
	var out []string
	for _, t := range tokens {
		if t == "" {
			continue
		}
		out = append(out, quote(t))
	}
	return strings.Join(out, " ")
}

// needsQuoting mirrors the POSIX shell metacharacter set dela's argv
// tokens must be defended against.
const shellMeta = " \t\n|&;()<>$`\\\"'*?[]#~"

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	return strings.ContainsAny(s, shellMeta)
}

// quote wraps s in single quotes if it contains whitespace or a shell
// metacharacter, escaping embedded single quotes as '\'' (spec.md §4.7).
func quote(s string) string {
	if !needsQuoting(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
