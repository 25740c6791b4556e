package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRegistry_EveryEntryIsWellFormed guards the single source of truth
// internal/discovery walks: each entry sets exactly one of
// Candidates/GlobPatterns, and both Family and Parse are non-zero.
func TestRegistry_EveryEntryIsWellFormed(t *testing.T) {
	for _, e := range Registry {
		hasCandidates := len(e.Candidates) > 0
		hasGlobs := len(e.GlobPatterns) > 0
		assert.True(t, hasCandidates != hasGlobs, "entry for %s must set exactly one of Candidates/GlobPatterns", e.Family)
		assert.NotEmpty(t, e.Family)
		assert.NotNil(t, e.Parse)
	}
}

// TestRegistry_MatchesSpecDiscoveryOrder pins the family discovery order
// from spec.md §4.4.
func TestRegistry_MatchesSpecDiscoveryOrder(t *testing.T) {
	var families []string
	for _, e := range Registry {
		families = append(families, string(e.Family))
	}
	assert.Equal(t, []string{
		"Makefile",
		"PackageJson",
		"PyprojectToml",
		"Taskfile",
		"MavenPom",
		"Gradle",
		"Gradle",
		"GithubActions",
		"DockerCompose",
		"DockerCompose",
		"CMake",
		"Travis",
		"Justfile",
	}, families)
}
