// Package prd defines the PRD document model and its parser.
//
// A PRD file is a markdown document with YAML frontmatter. The frontmatter
// carries the structured project metadata (name, stack, type, features,
// constraints, explicit skill/agent overrides) that drives component
// selection; the markdown body is free-form prose split into
// heading-delimited sections.
package prd

import (
	"bytes"
	"os"
	"strings"

	"github.com/pabloism0x/kael/internal/errors"
	"github.com/pabloism0x/kael/pkg/frontmatter"
)

// Languages supported by the catalog's language-derived matching rules.
const (
	LanguageRust       = "rust"
	LanguageTypescript = "typescript"
	LanguagePython     = "python"
	LanguageGo         = "go"
)

// Project types supported by the catalog's type-derived matching rules.
const (
	TypeLibrary = "library"
	TypeCli     = "cli"
	TypeWeb     = "web"
	TypeApi     = "api"
	TypeMobile  = "mobile"
)

// Experience levels accepted in team metadata.
const (
	ExperienceJunior = "junior"
	ExperienceMid    = "mid"
	ExperienceSenior = "senior"
)

var validLanguages = map[string]bool{
	LanguageRust:       true,
	LanguageTypescript: true,
	LanguagePython:     true,
	LanguageGo:         true,
}

var validTypes = map[string]bool{
	TypeLibrary: true,
	TypeCli:     true,
	TypeWeb:     true,
	TypeApi:     true,
	TypeMobile:  true,
}

var validExperiences = map[string]bool{
	ExperienceJunior: true,
	ExperienceMid:    true,
	ExperienceSenior: true,
}

// PRD is the validated frontmatter of a PRD document. All fields are
// immutable once constructed; the matcher and renderer only read them.
type PRD struct {
	// Name is the project identifier. Required, non-empty.
	Name string `yaml:"name"`

	// Description is optional free text shown in the instructions document.
	Description string `yaml:"description"`

	// Stack describes the technology stack.
	Stack Stack `yaml:"stack"`

	// Type is the project type (library, cli, web, api, mobile). Required.
	Type string `yaml:"type"`

	// Features are free-form tags rendered as a bullet list. Matching hints
	// only; they are not required to map to any catalog entry.
	Features []string `yaml:"features"`

	// Constraints are passed through verbatim into rendered output,
	// order-preserving, no dedup.
	Constraints []string `yaml:"constraints"`

	// Agents, when present, replaces agent auto-matching entirely.
	// nil means absent; a pointer to an empty slice means "no agents".
	Agents *[]string `yaml:"agents"`

	// Skills, when present, replaces skill auto-matching entirely.
	// nil means absent; a pointer to an empty slice means "no skills".
	Skills *[]string `yaml:"skills"`

	// MCP lists MCP server identifiers passed through to the settings
	// manifest without any matching logic.
	MCP []string `yaml:"mcp"`

	// Team is optional metadata with no effect on selection.
	Team *Team `yaml:"team"`
}

// Stack describes the technology stack of the project.
type Stack struct {
	// Language is the primary implementation language. Required.
	Language string `yaml:"language"`

	// Framework is an optional framework name (e.g. "nextjs").
	Framework string `yaml:"framework"`

	// Database is an optional database name.
	Database string `yaml:"database"`

	// Infra holds deployment/platform tags (e.g. "docker", "kubernetes").
	Infra []string `yaml:"infra"`
}

// Team is optional team metadata, passthrough only.
type Team struct {
	Size       int    `yaml:"size"`
	Experience string `yaml:"experience"`
}

// Section is one heading-delimited section of the PRD body.
type Section struct {
	// Heading is the plain text of the heading.
	Heading string

	// Level is the heading level (1 for #, 2 for ##, ...).
	Level int

	// Content is the plain text between this heading and the next.
	Content string
}

// Document is a fully parsed PRD file: validated frontmatter plus the
// markdown body split into sections.
type Document struct {
	PRD      PRD
	Sections []Section
}

// HasSkillsOverride reports whether the skills override field is present,
// including the explicitly empty case.
func (p *PRD) HasSkillsOverride() bool {
	return p.Skills != nil
}

// HasAgentsOverride reports whether the agents override field is present,
// including the explicitly empty case.
func (p *PRD) HasAgentsOverride() bool {
	return p.Agents != nil
}

// ParseFile reads and parses a PRD file from disk.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading PRD file")
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return doc, nil
}

// Parse parses PRD content: YAML frontmatter into the PRD struct, markdown
// body into sections. Returns an error if the frontmatter is missing,
// malformed, or fails validation.
func Parse(content []byte) (*Document, error) {
	var p PRD
	body, err := frontmatter.MustParse(bytes.NewReader(content), &p)
	if err != nil {
		if errors.Is(err, frontmatter.ErrMissingFrontmatter) {
			return nil, errors.Wrap(errors.ErrInvalidPRD, "PRD must start with YAML frontmatter (---)")
		}
		if errors.Is(err, frontmatter.ErrUnclosedFrontmatter) {
			return nil, errors.Wrap(errors.ErrInvalidPRD, "missing closing frontmatter delimiter (---)")
		}
		return nil, errors.Wrap(err, "parsing frontmatter")
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &Document{
		PRD:      p,
		Sections: parseBody(body),
	}, nil
}

// Validate checks required fields and closed enum sets. The matcher itself
// never fails on unrecognized values; validation happens once here.
func (p *PRD) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.Wrap(errors.ErrInvalidPRD, "name is required")
	}
	if p.Stack.Language == "" {
		return errors.Wrap(errors.ErrInvalidPRD, "stack.language is required")
	}
	if !validLanguages[p.Stack.Language] {
		return errors.Wrapf(errors.ErrInvalidPRD,
			"unknown language %q (valid: rust, typescript, python, go)", p.Stack.Language)
	}
	if p.Type == "" {
		return errors.Wrap(errors.ErrInvalidPRD, "type is required")
	}
	if !validTypes[p.Type] {
		return errors.Wrapf(errors.ErrInvalidPRD,
			"unknown type %q (valid: library, cli, web, api, mobile)", p.Type)
	}
	if p.Team != nil && p.Team.Experience != "" && !validExperiences[p.Team.Experience] {
		return errors.Wrapf(errors.ErrInvalidPRD,
			"unknown experience %q (valid: junior, mid, senior)", p.Team.Experience)
	}
	return nil
}
