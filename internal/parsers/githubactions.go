package parsers

import (
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/delacli/dela/internal/types"
)

type workflowDoc struct {
	Name string `yaml:"name"`
}

// ParseGithubActionsWorkflow emits one RawTask per workflow file, named by
// the workflow's "name" field (falling back to the file stem) with
// description "<workflow name>" (spec.md §4.1). Jobs within the workflow
// are not enumerated individually.
func ParseGithubActionsWorkflow(data []byte, path string) ([]types.RawTask, types.DefinitionFileStatus, string) {
	var doc workflowDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, types.StatusParseError, err.Error()
	}

	name := strings.TrimSpace(doc.Name)
	if name == "" {
		base := filepath.Base(path)
		name = strings.TrimSuffix(strings.TrimSuffix(base, ".yaml"), ".yml")
	}

	return []types.RawTask{{
		SourceName:  name,
		Family:      types.FamilyGithubActions,
		Description: name,
	}}, types.StatusParsed, ""
}
