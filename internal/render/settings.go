package render

import (
	"encoding/json"

	"github.com/pelletier/go-toml/v2"

	"github.com/pabloism0x/kael/internal/errors"
	"github.com/pabloism0x/kael/internal/matcher"
	"github.com/pabloism0x/kael/internal/paths"
	"github.com/pabloism0x/kael/internal/prd"
)

// Settings is the generated settings manifest. It reflects the MCP server
// list from the PRD and the final skill/agent/command selections.
//
// Field order matters for the TOML encoding: plain arrays must precede the
// [project] table or they would be attributed to it.
type Settings struct {
	MCP      []string        `json:"mcp" toml:"mcp"`
	Skills   []string        `json:"skills" toml:"skills"`
	Agents   []string        `json:"agents" toml:"agents"`
	Commands []string        `json:"commands" toml:"commands"`
	Project  ProjectSettings `json:"project" toml:"project"`
}

// ProjectSettings describes the project inside the settings manifest.
type ProjectSettings struct {
	Name      string `json:"name" toml:"name"`
	Language  string `json:"language" toml:"language"`
	Framework string `json:"framework,omitempty" toml:"framework,omitempty"`
	Database  string `json:"database,omitempty" toml:"database,omitempty"`
	Type      string `json:"type" toml:"type"`
}

// renderSettings marshals the settings manifest in the assistant's native
// format: JSON for claude, TOML for codex and gemini.
func renderSettings(p *prd.PRD, sel *matcher.SelectionSet, assistant string) ([]byte, error) {
	s := buildSettings(p, sel)

	switch assistant {
	case paths.AssistantClaude:
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "marshaling settings JSON")
		}
		return append(data, '\n'), nil
	default:
		data, err := toml.Marshal(s)
		if err != nil {
			return nil, errors.Wrap(err, "marshaling settings TOML")
		}
		return data, nil
	}
}

func buildSettings(p *prd.PRD, sel *matcher.SelectionSet) Settings {
	return Settings{
		MCP:      nonNil(p.MCP),
		Skills:   nonNil(sel.Skills()),
		Agents:   nonNil(sel.Agents()),
		Commands: nonNil(sel.Commands()),
		Project: ProjectSettings{
			Name:      p.Name,
			Language:  p.Stack.Language,
			Framework: p.Stack.Framework,
			Database:  p.Stack.Database,
			Type:      p.Type,
		},
	}
}

// nonNil keeps empty lists as [] rather than null in the JSON output.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
