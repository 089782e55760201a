// Package catalog provides the embedded component registry.
//
// The registry ships inside the binary via go:embed and is read-only for the
// lifetime of the process. Components are keyed by identifier within their
// kind; identifiers may contain slashes which become subdirectories in both
// the registry layout and the generated output tree.
//
// Registry layout:
//
//	registry/skills/<id>/SKILL.md
//	registry/agents/<id>.md
//	registry/commands/<id>.md
//	registry/templates/<name>
package catalog

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/pabloism0x/kael/internal/errors"
)

//go:embed all:registry
var registryFS embed.FS

// Kind identifies the kind of catalog component.
type Kind string

// Component kind constants.
const (
	KindSkill   Kind = "skill"
	KindAgent   Kind = "agent"
	KindCommand Kind = "command"
)

// Kinds returns all component kinds in canonical order.
func Kinds() []Kind {
	return []Kind{KindSkill, KindAgent, KindCommand}
}

// Dir returns the registry subdirectory for the kind ("skills", "agents",
// "commands"). The same names are used for output subdirectories.
func (k Kind) Dir() string {
	switch k {
	case KindSkill:
		return "skills"
	case KindAgent:
		return "agents"
	case KindCommand:
		return "commands"
	}
	return ""
}

// String returns the kind label used in messages.
func (k Kind) String() string {
	return string(k)
}

// payloadPath maps a component identifier to its path inside the registry.
//
//   - skill "rust/async-patterns" -> "registry/skills/rust/async-patterns/SKILL.md"
//   - agent "_base/architect"     -> "registry/agents/_base/architect.md"
//   - command "init"              -> "registry/commands/init.md"
func payloadPath(kind Kind, id string) string {
	switch kind {
	case KindSkill:
		return path.Join("registry", kind.Dir(), id, "SKILL.md")
	default:
		return path.Join("registry", kind.Dir(), id+".md")
	}
}

// Get returns the payload of a component.
// Returns ErrNotFound if the identifier has no payload in the registry.
func Get(kind Kind, id string) (string, error) {
	data, err := registryFS.ReadFile(payloadPath(kind, id))
	if err != nil {
		return "", errors.Wrapf(errors.ErrNotFound, "%s %q", kind, id)
	}
	return string(data), nil
}

// Has reports whether a component exists in the registry.
func Has(kind Kind, id string) bool {
	_, err := Get(kind, id)
	return err == nil
}

// List returns the sorted identifiers of all components of a kind.
func List(kind Kind) []string {
	root := path.Join("registry", kind.Dir())
	var ids []string

	_ = fs.WalkDir(registryFS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel := strings.TrimPrefix(p, root+"/")
		switch kind {
		case KindSkill:
			// skills/<id>/SKILL.md -> <id>
			if path.Base(rel) == "SKILL.md" {
				ids = append(ids, path.Dir(rel))
			}
		default:
			// agents/<id>.md -> <id>
			if strings.HasSuffix(rel, ".md") {
				ids = append(ids, strings.TrimSuffix(rel, ".md"))
			}
		}
		return nil
	})

	sort.Strings(ids)
	return ids
}

// Template returns an embedded template by name (e.g. "instructions.md.tmpl").
func Template(name string) (string, error) {
	data, err := registryFS.ReadFile(path.Join("registry", "templates", name))
	if err != nil {
		return "", errors.Wrapf(errors.ErrNotFound, "template %q", name)
	}
	return string(data), nil
}
