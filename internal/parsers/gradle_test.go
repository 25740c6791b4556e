package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/delacli/dela/internal/types"
)

func TestParseGradle_MatchesAllDeclarationForms(t *testing.T) {
	data := []byte(`
task hello {
    doLast { println "hi" }
}

tasks.register("world") {
    group = "build"
}

tasks.register<Copy>("copyFiles") {
    from "src"
}
`)
	tasks, status, _ := ParseGradle(data, "build.gradle")
	assert.Equal(t, types.StatusParsed, status)
	var names []string
	for _, tk := range tasks {
		names = append(names, tk.SourceName)
	}
	assert.ElementsMatch(t, []string{"hello", "world", "copyFiles"}, names)
}

func TestParseGradle_NoDeclarationsIsParsedEmpty(t *testing.T) {
	tasks, status, _ := ParseGradle([]byte("apply plugin: 'java'\n"), "build.gradle")
	assert.Equal(t, types.StatusParsed, status)
	assert.Empty(t, tasks)
}

func TestParseGradle_PermitsCollisionsWithinSameFile(t *testing.T) {
	data := []byte(`
task build {}
tasks.register("build") {}
`)
	tasks, _, _ := ParseGradle(data, "build.gradle")
	assert.Len(t, tasks, 2, "collisions within one file are the disambiguator's job, not the parser's")
}
