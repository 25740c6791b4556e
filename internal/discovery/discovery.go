// Package discovery implements the discovery engine (C4, spec.md §4.4):
// enumerate definition files in a working directory, fan parsing out to
// the C1 parsers, enrich with the C2 runner resolver and C3 shadow
// detector, and hand the result to the C5 disambiguator.
//
// Discovery walks parsers.Registry — the single static table of discovery
// steps (§9's "one static registration table" design note) — rather than
// maintaining a second, parallel list of its own.
//
// The .github/workflows/*.{yml,yaml} glob step is grounded on the
// teacher's internal/osutil/glob.go (doublestar.Glob over os.DirFS), which
// is reused here via internal/osutil.GlobIn.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/delacli/dela/internal/disambiguate"
	"github.com/delacli/dela/internal/osutil"
	"github.com/delacli/dela/internal/parsers"
	"github.com/delacli/dela/internal/runner"
	"github.com/delacli/dela/internal/shadow"
	"github.com/delacli/dela/internal/types"
)

// Discover scans cwd for every supported definition file, parses each,
// enriches the resulting tasks with runner/shadow/availability metadata,
// and returns the disambiguated DiscoveredTasks set.
func Discover(cwd string) types.DiscoveredTasks {
	shellName := shadow.ShellFromEnv()

	var files []types.DefinitionFile
	var tasks []types.Task
	var errs []string

	for _, entry := range parsers.Registry {
		var efiles []types.DefinitionFile
		var etasks []types.Task
		var eerrs []string

		if len(entry.GlobPatterns) > 0 {
			efiles, etasks, eerrs = discoverGlob(cwd, entry, shellName)
		} else {
			efiles, etasks, eerrs = discoverCandidate(cwd, entry, shellName)
		}

		files = append(files, efiles...)
		tasks = append(tasks, etasks...)
		errs = append(errs, eerrs...)
	}

	tasks = disambiguate.Disambiguate(tasks)

	return types.DiscoveredTasks{Tasks: tasks, Files: files, Errors: errs}
}

// discoverCandidate resolves the first of entry.Candidates that exists in
// cwd and parses it alone (spec.md §4.4 step 1-2; the exact-name
// Justfile/justfile lookup is the only multi-candidate entry).
func discoverCandidate(cwd string, entry parsers.Entry, shellName string) ([]types.DefinitionFile, []types.Task, []string) {
	path, content, status, msg := resolveCandidates(cwd, entry.Candidates)
	if status == types.StatusNotFound {
		// Absent files are not recorded as DefinitionFiles (§3: "Retained...
		// for diagnostic display even when zero tasks"; a wholly-absent
		// file has nothing to diagnose).
		return nil, nil, nil
	}

	df := types.DefinitionFile{Path: path, Family: entry.Family, Status: status, Message: msg}
	if status != types.StatusParsed {
		var errs []string
		if msg != "" {
			errs = append(errs, fmt.Sprintf("%s: %s", path, msg))
		}
		return []types.DefinitionFile{df}, nil, errs
	}

	raw, parseStatus, parseMsg := entry.Parse(content, path)
	df.Status = parseStatus
	df.Message = parseMsg
	if parseStatus != types.StatusParsed {
		var errs []string
		if parseMsg != "" {
			errs = append(errs, fmt.Sprintf("%s: %s", path, parseMsg))
		}
		return []types.DefinitionFile{df}, nil, errs
	}

	return []types.DefinitionFile{df}, buildTasks(raw, path, content, shellName), nil
}

// resolveCandidates tries each candidate filename in cwd and returns the
// first match's absolute path and contents, or StatusNotFound if none exist.
func resolveCandidates(cwd string, candidates []string) (path string, content []byte, status types.DefinitionFileStatus, msg string) {
	for _, name := range candidates {
		p := filepath.Join(cwd, name)
		data, err := os.ReadFile(p)
		if err == nil {
			return p, data, types.StatusParsed, ""
		}
		if !os.IsNotExist(err) {
			return p, nil, types.StatusNotReadable, err.Error()
		}
	}
	return "", nil, types.StatusNotFound, ""
}

// discoverGlob resolves every file matching entry.GlobPatterns under cwd
// and parses each independently (GithubActions: every workflow file under
// .github/workflows is its own task source, top-level only per spec.md §9's
// Open Question decision — see DESIGN.md).
func discoverGlob(cwd string, entry parsers.Entry, shellName string) ([]types.DefinitionFile, []types.Task, []string) {
	var matches []string
	for _, pattern := range entry.GlobPatterns {
		m, err := osutil.GlobIn(cwd, pattern)
		if err != nil {
			continue
		}
		matches = append(matches, m...)
	}
	sort.Strings(matches)

	var files []types.DefinitionFile
	var tasks []types.Task
	var errs []string

	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			files = append(files, types.DefinitionFile{Path: path, Family: entry.Family, Status: types.StatusNotReadable, Message: err.Error()})
			errs = append(errs, fmt.Sprintf("%s: %s", path, err.Error()))
			continue
		}

		raw, status, msg := entry.Parse(data, path)
		files = append(files, types.DefinitionFile{Path: path, Family: entry.Family, Status: status, Message: msg})
		if status != types.StatusParsed {
			if msg != "" {
				errs = append(errs, fmt.Sprintf("%s: %s", path, msg))
			}
			continue
		}
		tasks = append(tasks, buildTasks(raw, path, data, shellName)...)
	}

	return files, tasks, errs
}

// buildTasks joins RawTasks with resolved runner, availability, and shadow
// metadata, deduplicating RawTasks from the same file that share a
// source_name (retain first), per spec.md §4.4 steps 3–4.
func buildTasks(raw []types.RawTask, path string, content []byte, shellName string) []types.Task {
	seen := make(map[string]struct{})
	tasks := make([]types.Task, 0, len(raw))
	for _, rt := range raw {
		if _, dup := seen[rt.SourceName]; dup {
			continue
		}
		seen[rt.SourceName] = struct{}{}

		r := runner.Resolve(rt.Family, path, content)
		tasks = append(tasks, types.Task{
			SourceName:       rt.SourceName,
			UniqueName:       rt.SourceName,
			Runner:           r,
			DefinitionFamily: rt.Family,
			FilePath:         path,
			Description:      rt.Description,
			Shadow:           shadow.Detect(shellName, rt.SourceName),
			RunnerAvailable:  runner.Available(r),
		})
	}
	return tasks
}
