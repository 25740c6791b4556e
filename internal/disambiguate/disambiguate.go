// Package disambiguate implements the disambiguator (C5, spec.md §4.5): it
// assigns a final, unique unique_name to every Task in a discovery pass.
//
// The algorithm is a pure sort-then-scan over an immutable input slice
// (spec.md §9's design note prefers this over graph propagation, for
// determinism and cheapness), grounded on the same "partition, then grow a
// derived identifier greedily" shape as the teacher's disambiguation-free
// codebase has no direct analogue for — this package is new, built to
// spec.md §4.5's exact algorithm rather than adapted from a teacher file.
package disambiguate

import (
	"fmt"
	"strconv"

	"github.com/delacli/dela/internal/delaerr"
	"github.com/delacli/dela/internal/types"
)

// Disambiguate returns a copy of tasks with UniqueName assigned per
// spec.md §4.5: every task in a source_name partition of size ≥ 2, and
// every shadowed task, receives a suffixed unique_name. Assignment order
// within a partition follows tasks' input (discovery) order.
func Disambiguate(tasks []types.Task) []types.Task {
	out := make([]types.Task, len(tasks))
	copy(out, tasks)

	taken := make(map[string]struct{}, len(out))
	for _, t := range out {
		taken[t.SourceName] = struct{}{}
	}

	partitions := make(map[string][]int)
	var order []string
	for i, t := range out {
		if _, seen := partitions[t.SourceName]; !seen {
			order = append(order, t.SourceName)
		}
		partitions[t.SourceName] = append(partitions[t.SourceName], i)
	}

	// Partitions are processed in discovery order (first-occurrence order of
	// each source_name), not Go's randomized map order, so that cross-
	// partition suffix collisions resolve identically across runs.
	for _, name := range order {
		idxs := partitions[name]
		needsSuffix := len(idxs) >= 2
		if !needsSuffix {
			i := idxs[0]
			if out[i].Shadow == nil {
				continue
			}
		}
		assignSuffixes(out, idxs, name, taken)
	}

	return out
}

// assignSuffixes grows each task's suffix from its runner short-name one
// character at a time, in lockstep across the partition, until every
// resulting <source_name>-<suffix> is globally unique; ties remaining after
// the whole short-name is consumed break with a numeric tiebreaker in
// discovery order.
func assignSuffixes(tasks []types.Task, idxs []int, sourceName string, taken map[string]struct{}) {
	seeds := make([]string, len(idxs))
	for k, i := range idxs {
		seed := tasks[i].Runner.SuffixSeed()
		if seed == "" {
			seed = "x"
		}
		seeds[k] = seed
	}

	assigned := make([]bool, len(idxs))
	current := make([]string, len(idxs))
	remaining := len(idxs)

	for length := 1; remaining > 0; length++ {
		// Build this round's candidate suffix per unassigned task.
		candidates := make([]string, len(idxs))
		counts := make(map[string]int)
		for k := range idxs {
			if assigned[k] {
				continue
			}
			seed := seeds[k]
			var c string
			if length <= len(seed) {
				c = seed[:length]
			} else {
				c = seed // exhausted; numeric tiebreak handles the rest below
			}
			candidates[k] = c
			counts[c]++
		}

		exhausted := length > maxLen(seeds)

		for k := range idxs {
			if assigned[k] {
				continue
			}
			c := candidates[k]
			unique := counts[c] == 1
			name := sourceName + "-" + c
			_, collides := taken[name]

			if unique && !collides {
				current[k] = c
				assigned[k] = true
				taken[name] = struct{}{}
				remaining--
				continue
			}

			if exhausted {
				// Whole short-name consumed and still colliding: append a
				// numeric tiebreaker in discovery order.
				n := 1
				for {
					candidate := c + strconv.Itoa(n)
					fullName := sourceName + "-" + candidate
					if _, exists := taken[fullName]; !exists {
						current[k] = candidate
						assigned[k] = true
						taken[fullName] = struct{}{}
						remaining--
						break
					}
					n++
				}
			}
		}
	}

	for k, i := range idxs {
		tasks[i].UniqueName = sourceName + "-" + current[k]
	}
}

// Resolve applies the addressing rule shared by get-command, allow-command,
// and run (spec.md §4.5): name is matched against unique_name first; failing
// that, against source_name, where exactly one match succeeds and more than
// one fails with ErrAmbiguous.
func Resolve(tasks []types.Task, name string) (types.Task, error) {
	for _, t := range tasks {
		if t.UniqueName == name {
			return t, nil
		}
	}

	var matches []types.Task
	for _, t := range tasks {
		if t.SourceName == name {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return types.Task{}, fmt.Errorf("%q: %w", name, delaerr.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return types.Task{}, fmt.Errorf("%q matches multiple tasks; use a unique name: %w", name, delaerr.ErrAmbiguous)
	}
}

func maxLen(ss []string) int {
	m := 0
	for _, s := range ss {
		if len(s) > m {
			m = len(s)
		}
	}
	return m
}
