// Package types defines dela's normalized task model (spec.md §3): Task,
// DefinitionFile, DiscoveredTasks, the Runner enum, and the Shadow variant.
// These are plain data types produced fresh by every process invocation
// (I4: tasks are never mutated after discovery completes).
package types

import "fmt"

// DefinitionFamily identifies the file format a task was parsed from.
type DefinitionFamily string

const (
	FamilyMakefile      DefinitionFamily = "Makefile"
	FamilyPackageJSON   DefinitionFamily = "PackageJson"
	FamilyPyprojectToml DefinitionFamily = "PyprojectToml"
	FamilyTaskfile      DefinitionFamily = "Taskfile"
	FamilyMavenPom      DefinitionFamily = "MavenPom"
	FamilyGradle        DefinitionFamily = "Gradle"
	FamilyGithubActions DefinitionFamily = "GithubActions"
	FamilyDockerCompose DefinitionFamily = "DockerCompose"
	FamilyCMake         DefinitionFamily = "CMake"
	FamilyTravis        DefinitionFamily = "Travis"
	FamilyJustfile      DefinitionFamily = "Justfile"
	FamilyShellScript   DefinitionFamily = "ShellScript"
)

// Runner identifies a concrete build/task-runner program (GLOSSARY).
type Runner string

const (
	RunnerMake    Runner = "make"
	RunnerNpm     Runner = "npm"
	RunnerPnpm    Runner = "pnpm"
	RunnerYarn    Runner = "yarn"
	RunnerBun     Runner = "bun"
	RunnerUv      Runner = "uv"
	RunnerPoetry  Runner = "poetry"
	RunnerPoe     Runner = "poe"
	RunnerTask    Runner = "task"
	RunnerMvn     Runner = "mvn"
	RunnerGradle  Runner = "gradle"
	RunnerAct     Runner = "act"
	RunnerCompose Runner = "compose"
	RunnerCMake   Runner = "cmake"
	RunnerTravis  Runner = "travis"
	RunnerJust    Runner = "just"
)

// ShortName returns the runner's stable short-name, used for PATH
// availability probing (§4.2) and in list output; disambiguation suffixes
// are grown from SuffixSeed instead (§4.5). For every runner
// except compose (whose binary invocation is the two words "docker compose")
// the short name is the PATH-probed executable name.
func (r Runner) ShortName() string {
	if r == RunnerCompose {
		return "docker"
	}
	return string(r)
}

// SuffixSeed is the identifier the disambiguator grows suffixes from (§4.5).
// This is distinct from ShortName for compose: disambiguation suffixes are
// derived from "compose", not from the "docker" PATH probe target, so that
// ambiguous task names don't collide on a one-character "d" suffix shared
// with nothing else but stay readable.
func (r Runner) SuffixSeed() string {
	return string(r)
}

// ShadowKind distinguishes the two ways a task name can be shadowed (§4.3).
type ShadowKind int

const (
	ShadowNone ShadowKind = iota
	ShadowShellBuiltin
	ShadowPathExecutable
)

// Shadow records why a task name would never reach dela's command-not-found
// handler. Precedence: ShellBuiltin > PathExecutable (§4.3).
type Shadow struct {
	Kind ShadowKind
	// ShellName is set when Kind == ShadowShellBuiltin.
	ShellName string
	// ExecutablePath is set when Kind == ShadowPathExecutable.
	ExecutablePath string
}

func (s *Shadow) String() string {
	if s == nil {
		return ""
	}
	switch s.Kind {
	case ShadowShellBuiltin:
		return fmt.Sprintf("shadowed by %s shell builtin", s.ShellName)
	case ShadowPathExecutable:
		return fmt.Sprintf("shadowed by executable at %s", s.ExecutablePath)
	default:
		return ""
	}
}

// Task is the normalized, addressable unit produced by discovery (§3).
type Task struct {
	SourceName        string
	UniqueName        string
	Runner            Runner
	DefinitionFamily  DefinitionFamily
	FilePath          string
	Description       string
	Shadow            *Shadow
	RunnerAvailable   bool
}

// IsAmbiguous reports whether this task's UniqueName required suffixing,
// i.e. it differs from SourceName (I2/I3 invariants, §4.5).
func (t *Task) IsAmbiguous() bool {
	return t.UniqueName != t.SourceName
}

// DefinitionFileStatus is the outcome of attempting to resolve/parse one
// definition file (§3).
type DefinitionFileStatus int

const (
	StatusParsed DefinitionFileStatus = iota
	StatusParseError
	StatusNotReadable
	StatusNotFound
	StatusNotImplemented
)

func (s DefinitionFileStatus) String() string {
	switch s {
	case StatusParsed:
		return "Parsed"
	case StatusParseError:
		return "ParseError"
	case StatusNotReadable:
		return "NotReadable"
	case StatusNotFound:
		return "NotFound"
	case StatusNotImplemented:
		return "NotImplemented"
	default:
		return "Unknown"
	}
}

// DefinitionFile is retained on DiscoveredTasks for diagnostic display even
// when zero tasks were extracted from it (§3).
type DefinitionFile struct {
	Path    string
	Family  DefinitionFamily
	Status  DefinitionFileStatus
	Message string // set when Status is ParseError or NotReadable
}

// DiscoveredTasks is the canonical result of one discovery pass (§3).
type DiscoveredTasks struct {
	Tasks  []Task
	Files  []DefinitionFile
	Errors []string
}

// RawTask is a parser's output before runner/shadow/uniqueness enrichment
// (§4.1): {source_name, definition_family, description?}.
type RawTask struct {
	SourceName  string
	Family      DefinitionFamily
	Description string
}
