package matcher

import (
	"github.com/pabloism0x/kael/internal/catalog"
)

// SelectionSet holds the chosen catalog identifiers for one PRD: three
// ordered, deduplicated sequences (skills, agents, commands). Insertion order
// reflects rule evaluation order; an identifier selected by two rules keeps
// its first-seen position. Each identifier also records the rule or override
// that selected it, so the renderer can report the source of an unknown
// identifier.
type SelectionSet struct {
	skills   []string
	agents   []string
	commands []string

	seen    map[string]bool
	origins map[string]string
}

func newSelectionSet() *SelectionSet {
	return &SelectionSet{
		seen:    make(map[string]bool),
		origins: make(map[string]string),
	}
}

// add appends an identifier unless the same (kind, id) pair is already
// present. The first rule to select an identifier wins its position and its
// recorded origin.
func (s *SelectionSet) add(kind catalog.Kind, id, origin string) {
	key := string(kind) + "\x00" + id
	if s.seen[key] {
		return
	}
	s.seen[key] = true
	s.origins[key] = origin

	switch kind {
	case catalog.KindSkill:
		s.skills = append(s.skills, id)
	case catalog.KindAgent:
		s.agents = append(s.agents, id)
	case catalog.KindCommand:
		s.commands = append(s.commands, id)
	}
}

// Skills returns the selected skill identifiers in rule-evaluation order.
func (s *SelectionSet) Skills() []string {
	return s.skills
}

// Agents returns the selected agent identifiers in rule-evaluation order.
func (s *SelectionSet) Agents() []string {
	return s.agents
}

// Commands returns the selected command identifiers in rule-evaluation order.
func (s *SelectionSet) Commands() []string {
	return s.commands
}

// IDs returns the selected identifiers of the given kind.
func (s *SelectionSet) IDs(kind catalog.Kind) []string {
	switch kind {
	case catalog.KindSkill:
		return s.skills
	case catalog.KindAgent:
		return s.agents
	case catalog.KindCommand:
		return s.commands
	}
	return nil
}

// Origin returns the rule or override that selected an identifier, or an
// empty string if the identifier is not in the set.
func (s *SelectionSet) Origin(kind catalog.Kind, id string) string {
	return s.origins[string(kind)+"\x00"+id]
}

// Contains reports whether the identifier is selected for the given kind.
func (s *SelectionSet) Contains(kind catalog.Kind, id string) bool {
	return s.seen[string(kind)+"\x00"+id]
}

// Len returns the total number of selected identifiers across all kinds.
func (s *SelectionSet) Len() int {
	return len(s.skills) + len(s.agents) + len(s.commands)
}
