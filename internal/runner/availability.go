package runner

import (
	"os/exec"
	"sync"

	"github.com/delacli/dela/internal/types"
)

// availabilityCache memoizes PATH lookups for the lifetime of the process,
// matching original_source's is_runner_available memoization (SPEC_FULL.md
// Supplemented Features #3) and spec.md §4.2's "Probing is cached in-process
// to avoid repeated PATH walks."
type availabilityCache struct {
	mu    sync.Mutex
	cache map[string]bool
}

var defaultCache = &availabilityCache{cache: make(map[string]bool)}

// Available reports whether r's short-name resolves to an executable on
// PATH, memoized per short-name for this process.
func Available(r types.Runner) bool {
	return defaultCache.available(r.ShortName())
}

func (c *availabilityCache) available(shortName string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.cache[shortName]; ok {
		return v
	}
	_, err := exec.LookPath(shortName)
	v := err == nil
	c.cache[shortName] = v
	return v
}

// ResetCache clears the memoization table. Tests use this to simulate a
// fresh process invocation within the same test binary.
func ResetCache() {
	defaultCache.mu.Lock()
	defer defaultCache.mu.Unlock()
	defaultCache.cache = make(map[string]bool)
}
