package parsers

import (
	"encoding/xml"

	"github.com/delacli/dela/internal/config"
	"github.com/delacli/dela/internal/types"
)

type pomProject struct {
	Profiles struct {
		Profile []struct {
			ID string `xml:"id"`
		} `xml:"profile"`
	} `xml:"profiles"`
	Build pomBuild `xml:"build"`
}

type pomBuild struct {
	Plugins struct {
		Plugin []pomPlugin `xml:"plugin"`
	} `xml:"plugins"`
}

type pomPlugin struct {
	ArtifactID string `xml:"artifactId"`
	Executions struct {
		Execution []struct {
			Goals struct {
				Goal []string `xml:"goal"`
			} `xml:"goals"`
		} `xml:"execution"`
	} `xml:"executions"`
}

// ParsePom emits the fixed Maven lifecycle phases, plus one RawTask per
// declared <profile><id> as "profile:<id>", plus one per plugin execution
// goal as "<artifact>:<goal>" (spec.md §4.1, supplemented per
// SPEC_FULL.md from original_source/src/parsers/pom.rs's behavior).
func ParsePom(data []byte, path string) ([]types.RawTask, types.DefinitionFileStatus, string) {
	var tasks []types.RawTask
	for _, phase := range config.MavenLifecyclePhases {
		tasks = append(tasks, types.RawTask{SourceName: phase, Family: types.FamilyMavenPom})
	}

	var proj pomProject
	if err := xml.Unmarshal(data, &proj); err != nil {
		// Lifecycle phases are always valid even if the rest of the
		// document is malformed; still, a document dela cannot parse at
		// all degrades gracefully to ParseError with the phases dropped,
		// matching "status = ParseError" for files the parser could not
		// make sense of (§4.1).
		return nil, types.StatusParseError, err.Error()
	}

	for _, p := range proj.Profiles.Profile {
		if p.ID == "" {
			continue
		}
		tasks = append(tasks, types.RawTask{
			SourceName: "profile:" + p.ID,
			Family:     types.FamilyMavenPom,
		})
	}

	for _, plugin := range proj.Build.Plugins.Plugin {
		if plugin.ArtifactID == "" {
			continue
		}
		for _, ex := range plugin.Executions.Execution {
			for _, goal := range ex.Goals.Goal {
				if goal == "" {
					continue
				}
				tasks = append(tasks, types.RawTask{
					SourceName: plugin.ArtifactID + ":" + goal,
					Family:     types.FamilyMavenPom,
				})
			}
		}
	}

	return tasks, types.StatusParsed, ""
}
