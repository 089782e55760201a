// Package render turns a PRD and a SelectionSet into an OutputTree: the
// complete mapping from output-relative file paths to file content.
//
// Rendering is pure (no I/O beyond the embedded registry) and all-or-nothing:
// a selected identifier without a catalog payload aborts the whole render
// with an UnknownComponentError, and no partial tree is returned. For equal
// inputs the produced tree is byte-identical on every call.
package render

import (
	"fmt"
	"path"

	"github.com/pabloism0x/kael/internal/catalog"
	"github.com/pabloism0x/kael/internal/errors"
	"github.com/pabloism0x/kael/internal/matcher"
	"github.com/pabloism0x/kael/internal/paths"
	"github.com/pabloism0x/kael/internal/prd"
)

// OutputTree maps posix-style relative paths to rendered file content.
// Iteration order (via Paths) is the insertion order, which is fixed by the
// renderer: instructions file, settings file, then skills, agents, and
// commands in SelectionSet order.
type OutputTree struct {
	order []string
	files map[string][]byte
}

func newOutputTree() *OutputTree {
	return &OutputTree{files: make(map[string][]byte)}
}

func (t *OutputTree) add(p string, content []byte) {
	if _, exists := t.files[p]; !exists {
		t.order = append(t.order, p)
	}
	t.files[p] = content
}

// Paths returns all output paths in deterministic render order.
func (t *OutputTree) Paths() []string {
	return t.order
}

// File returns the content for a path, or nil if the path is not in the tree.
func (t *OutputTree) File(p string) []byte {
	return t.files[p]
}

// Len returns the number of files in the tree.
func (t *OutputTree) Len() int {
	return len(t.order)
}

// UnknownComponentError reports a selected identifier with no catalog
// payload. Source names the matching rule or override that selected it.
type UnknownComponentError struct {
	Kind   catalog.Kind
	ID     string
	Source string
}

func (e *UnknownComponentError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("unknown %s %q", e.Kind, e.ID)
	}
	return fmt.Sprintf("unknown %s %q (selected by %s)", e.Kind, e.ID, e.Source)
}

// Unwrap marks the error as a not-found condition for errors.Is checks.
func (e *UnknownComponentError) Unwrap() error {
	return errors.ErrNotFound
}

// Render produces the full OutputTree for an assistant: instructions file,
// settings manifest, and one file per selected component.
func Render(p *prd.PRD, sel *matcher.SelectionSet, assistant string) (*OutputTree, error) {
	tree, err := RenderDocs(p, sel, assistant)
	if err != nil {
		return nil, err
	}

	configDir := paths.ConfigDir(assistant)
	for _, kind := range catalog.Kinds() {
		for _, id := range sel.IDs(kind) {
			payload, err := catalog.Get(kind, id)
			if err != nil {
				return nil, &UnknownComponentError{
					Kind:   kind,
					ID:     id,
					Source: sel.Origin(kind, id),
				}
			}
			tree.add(componentPath(configDir, kind, id), []byte(payload))
		}
	}

	return tree, nil
}

// RenderDocs produces only the instructions file and the settings manifest.
// This is the regenerate operation: component payloads are left untouched.
func RenderDocs(p *prd.PRD, sel *matcher.SelectionSet, assistant string) (*OutputTree, error) {
	if !paths.ValidAssistant(assistant) {
		return nil, errors.Newf("unknown assistant %q", assistant)
	}

	configDir := paths.ConfigDir(assistant)

	instructions, err := renderInstructions(p, sel, configDir)
	if err != nil {
		return nil, err
	}

	settings, err := renderSettings(p, sel, assistant)
	if err != nil {
		return nil, err
	}

	tree := newOutputTree()
	tree.add(paths.InstructionFile(assistant), instructions)
	tree.add(path.Join(configDir, paths.SettingsFile(assistant)), settings)
	return tree, nil
}

// componentPath maps a selected identifier to its output path. Identifier
// segments before the last "/" become directory segments.
//
//   - skill "rust/async-patterns" -> "<configDir>/skills/rust/async-patterns/SKILL.md"
//   - agent "_base/architect"     -> "<configDir>/agents/_base/architect.md"
//   - command "init"              -> "<configDir>/commands/init.md"
func componentPath(configDir string, kind catalog.Kind, id string) string {
	switch kind {
	case catalog.KindSkill:
		return path.Join(configDir, kind.Dir(), id, "SKILL.md")
	default:
		return path.Join(configDir, kind.Dir(), id+".md")
	}
}
