// Package parsers implements the per-format definition-file parsers (C1,
// spec.md §4.1). Each parser is a pure function of (bytes, absolute_path):
// it never touches the filesystem beyond the bytes it was handed (the one
// exception, package.json lockfile sniffing, lives in internal/runner, not
// here), and it never returns a Go error for "file missing" — that is the
// discovery engine's concern. A parser reports its own fate through the
// returned DefinitionFileStatus.
//
// Registration is a static table keyed by filename glob, following the
// "tagged variants behind a uniform function-shaped contract" design note
// in spec.md §9, and the teacher's internal/taskfile.Parse shape (YAML
// decode into a tagged struct, with RawContent/Lines kept around for
// fallback scanning).
package parsers

import "github.com/delacli/dela/internal/types"

// ParseFunc parses one definition file's bytes into RawTasks.
type ParseFunc func(data []byte, path string) ([]types.RawTask, types.DefinitionFileStatus, string)

// Entry binds the file(s) one discovery step resolves to the family and
// parser that handle it. Exactly one of Candidates/GlobPatterns is set:
//   - Candidates holds filenames tried in order in the working directory;
//     the first that exists wins and is parsed alone (e.g. the Justfile
//     entry's ["Justfile", "justfile"] lookup, which matches those two
//     exact spellings only).
//   - GlobPatterns holds doublestar patterns resolved under the working
//     directory; every match is parsed independently (GithubActions: every
//     .github/workflows/*.yml|*.yaml file is its own task source).
type Entry struct {
	Candidates   []string
	GlobPatterns []string
	Family       types.DefinitionFamily
	Parse        ParseFunc
}

// Registry is the static table the discovery engine (C4) walks in order.
// Order here defines the default family discovery order from spec.md §4.4.
var Registry = []Entry{
	{Candidates: []string{"Makefile"}, Family: types.FamilyMakefile, Parse: ParseMakefile},
	{Candidates: []string{"package.json"}, Family: types.FamilyPackageJSON, Parse: ParsePackageJSON},
	{Candidates: []string{"pyproject.toml"}, Family: types.FamilyPyprojectToml, Parse: ParsePyprojectToml},
	{Candidates: []string{"Taskfile.yml"}, Family: types.FamilyTaskfile, Parse: ParseTaskfile},
	{Candidates: []string{"pom.xml"}, Family: types.FamilyMavenPom, Parse: ParsePom},
	{Candidates: []string{"build.gradle"}, Family: types.FamilyGradle, Parse: ParseGradle},
	{Candidates: []string{"build.gradle.kts"}, Family: types.FamilyGradle, Parse: ParseGradle},
	{GlobPatterns: []string{".github/workflows/*.yml", ".github/workflows/*.yaml"}, Family: types.FamilyGithubActions, Parse: ParseGithubActionsWorkflow},
	{Candidates: []string{"docker-compose.yml"}, Family: types.FamilyDockerCompose, Parse: ParseDockerCompose},
	{Candidates: []string{"compose.yml"}, Family: types.FamilyDockerCompose, Parse: ParseDockerCompose},
	{Candidates: []string{"CMakeLists.txt"}, Family: types.FamilyCMake, Parse: ParseCMake},
	{Candidates: []string{".travis.yml"}, Family: types.FamilyTravis, Parse: ParseTravis},
	{Candidates: []string{"Justfile", "justfile"}, Family: types.FamilyJustfile, Parse: ParseJustfile},
}
