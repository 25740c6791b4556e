// Package allowlist implements the allowlist store (C6, spec.md §4.6):
// load/save ~/.dela/allowlist.toml and decide Allow/Deny/Unknown for a task.
//
// The file is TOML, decoded/encoded with go-toml/v2 (already a direct
// dependency via internal/runner's pyproject.toml inspection), and rewritten
// atomically via internal/osutil.AtomicWriteFile — the same
// temp-file-then-rename idiom the teacher's config persistence favors.
package allowlist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/delacli/dela/internal/config"
	"github.com/delacli/dela/internal/delaerr"
	"github.com/delacli/dela/internal/osutil"
	"github.com/delacli/dela/internal/paths"
	"github.com/delacli/dela/internal/types"
)

// Scope is the granularity at which an allowlist entry grants or denies.
type Scope string

const (
	ScopeTask      Scope = "Task"
	ScopeFile      Scope = "File"
	ScopeDirectory Scope = "Directory"
	ScopeDeny      Scope = "Deny"
)

// Entry is one row of ~/.dela/allowlist.toml.
type Entry struct {
	Path  string   `toml:"path"`
	Scope Scope    `toml:"scope"`
	Tasks []string `toml:"tasks,omitempty"`
}

// Document is the top-level shape of allowlist.toml.
type Document struct {
	Entries []Entry `toml:"entries"`
}

// Decision is the outcome of IsAllowed.
type Decision int

const (
	Unknown Decision = iota
	Allow
	Deny
)

// Load reads ~/.dela/allowlist.toml, returning an empty Document if the
// file does not yet exist.
func Load() (*Document, error) {
	path := paths.AllowlistPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Document{}, nil
		}
		return nil, fmt.Errorf("read allowlist: %w: %v", delaerr.ErrIO, err)
	}
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse allowlist: %w: %v", delaerr.ErrIO, err)
	}
	return &doc, nil
}

// Save atomically rewrites ~/.dela/allowlist.toml with doc's contents.
func Save(doc *Document) error {
	if err := paths.EnsureDelaHome(); err != nil {
		return fmt.Errorf("create dela home: %w: %v", delaerr.ErrIO, err)
	}
	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode allowlist: %w: %v", delaerr.ErrIO, err)
	}
	if err := osutil.AtomicWriteFile(paths.AllowlistPath(), data, config.DefaultFilePerms); err != nil {
		return fmt.Errorf("write allowlist: %w: %v", delaerr.ErrIO, err)
	}
	return nil
}

// AddEntry appends entry to the persisted allowlist, merging into an
// existing Task-scoped entry for the same path when one already exists
// rather than creating a duplicate row.
func AddEntry(entry Entry) error {
	doc, err := Load()
	if err != nil {
		return err
	}

	if entry.Scope == ScopeTask {
		for i := range doc.Entries {
			e := &doc.Entries[i]
			if e.Scope == ScopeTask && e.Path == entry.Path {
				if !containsString(e.Tasks, entry.Tasks[0]) {
					e.Tasks = append(e.Tasks, entry.Tasks[0])
				}
				return Save(doc)
			}
		}
	}

	doc.Entries = append(doc.Entries, entry)
	return Save(doc)
}

// IsAllowed evaluates the decision function from spec.md §4.6 against a
// task's file path and source name. Precedence: Deny > Directory > File > Task.
func IsAllowed(doc *Document, task types.Task) Decision {
	filePath := task.FilePath

	var matching []Entry
	for _, e := range doc.Entries {
		switch e.Scope {
		case ScopeDirectory:
			if isAncestor(e.Path, filePath) {
				matching = append(matching, e)
			}
		case ScopeFile, ScopeTask, ScopeDeny:
			if samePath(e.Path, filePath) {
				matching = append(matching, e)
			}
		}
	}

	for _, e := range matching {
		if e.Scope == ScopeDeny {
			return Deny
		}
	}
	for _, e := range matching {
		if e.Scope == ScopeDirectory {
			return Allow
		}
	}
	for _, e := range matching {
		if e.Scope == ScopeFile {
			return Allow
		}
	}
	for _, e := range matching {
		if e.Scope == ScopeTask && containsString(e.Tasks, task.SourceName) {
			return Allow
		}
	}
	return Unknown
}

func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}

// isAncestor reports whether dir is an ancestor directory of (or equal to)
// path, using a clean, separator-aware prefix comparison.
func isAncestor(dir, path string) bool {
	dir = filepath.Clean(dir)
	path = filepath.Clean(path)
	if dir == path {
		return true
	}
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func containsString(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
