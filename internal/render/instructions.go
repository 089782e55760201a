package render

import (
	"bytes"
	"path"
	"strings"
	"text/template"

	"github.com/pabloism0x/kael/internal/catalog"
	"github.com/pabloism0x/kael/internal/errors"
	"github.com/pabloism0x/kael/internal/matcher"
	"github.com/pabloism0x/kael/internal/prd"
)

// instructionsTemplate is the name of the embedded instructions template.
const instructionsTemplate = "instructions.md.tmpl"

// fragment holds the language-conditional development hints rendered into the
// instructions document.
type fragment struct {
	Build string
	Test  string
	Lint  string
	Style []string
}

// languageFragments maps stack.language to its development fragment.
// Unrecognized languages render with no fragment.
var languageFragments = map[string]*fragment{
	prd.LanguageRust: {
		Build: "cargo build",
		Test:  "cargo test",
		Lint:  "cargo clippy -- -D warnings",
		Style: []string{
			"Follow Rust 2021 edition idioms",
			"No unwrap() outside tests",
			"Run cargo fmt before committing",
		},
	},
	prd.LanguageTypescript: {
		Build: "pnpm build",
		Test:  "pnpm test",
		Lint:  "pnpm lint",
		Style: []string{
			"TypeScript strict mode is non-negotiable",
			"No any without an inline justification",
			"Prefer named exports",
		},
	},
	prd.LanguagePython: {
		Build: "uv sync",
		Test:  "pytest",
		Lint:  "ruff check .",
		Style: []string{
			"Type annotations on all public functions",
			"Keep modules small and flat",
			"Format with ruff format",
		},
	},
	prd.LanguageGo: {
		Build: "go build ./...",
		Test:  "go test -race ./...",
		Lint:  "golangci-lint run",
		Style: []string{
			"gofmt is law; no exceptions",
			"Accept interfaces, return structs",
			"Wrap errors with operation context",
		},
	},
}

// instructionsContext is the data handed to the instructions template.
type instructionsContext struct {
	Name        string
	Description string
	Language    string
	Framework   string
	Database    string
	Infra       []string
	Type        string
	Features    []string
	Constraints []string
	Fragment    *fragment
	SkillRefs   []string
	AgentRefs   []string
	CommandRefs []string
	MCP         []string
}

func renderInstructions(p *prd.PRD, sel *matcher.SelectionSet, configDir string) ([]byte, error) {
	src, err := catalog.Template(instructionsTemplate)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(instructionsTemplate).Funcs(template.FuncMap{
		"join": strings.Join,
	}).Parse(src)
	if err != nil {
		return nil, errors.Wrap(err, "parsing instructions template")
	}

	ctx := buildInstructionsContext(p, sel, configDir)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return nil, errors.Wrap(err, "rendering instructions")
	}

	return collapseBlankLines(buf.Bytes()), nil
}

func buildInstructionsContext(p *prd.PRD, sel *matcher.SelectionSet, configDir string) *instructionsContext {
	ctx := &instructionsContext{
		Name:        p.Name,
		Description: p.Description,
		Language:    p.Stack.Language,
		Framework:   p.Stack.Framework,
		Database:    p.Stack.Database,
		Infra:       p.Stack.Infra,
		Type:        p.Type,
		Features:    p.Features,
		Constraints: p.Constraints,
		Fragment:    languageFragments[p.Stack.Language],
		MCP:         p.MCP,
	}

	for _, id := range sel.Skills() {
		ctx.SkillRefs = append(ctx.SkillRefs, path.Join(configDir, "skills", id, "SKILL.md"))
	}
	for _, id := range sel.Agents() {
		ctx.AgentRefs = append(ctx.AgentRefs, path.Join(configDir, "agents", id+".md"))
	}
	for _, id := range sel.Commands() {
		ctx.CommandRefs = append(ctx.CommandRefs, "/"+id)
	}

	return ctx
}

// collapseBlankLines normalizes the rendered document: omitted optional
// sections must not leave more than one consecutive blank line, the document
// must not start with blank lines, and it ends with exactly one newline.
func collapseBlankLines(src []byte) []byte {
	s := string(src)
	s = strings.ReplaceAll(s, "\r\n", "\n")

	var b strings.Builder
	blanks := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			blanks++
			if blanks > 1 {
				continue
			}
			b.WriteString("\n")
			continue
		}
		blanks = 0
		b.WriteString(line)
		b.WriteString("\n")
	}

	out := strings.TrimLeft(b.String(), "\n")
	out = strings.TrimRight(out, "\n") + "\n"
	return []byte(out)
}
