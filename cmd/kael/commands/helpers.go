package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/pabloism0x/kael/internal/errors"
	"github.com/pabloism0x/kael/internal/paths"
	"github.com/pabloism0x/kael/internal/prd"
	"github.com/pabloism0x/kael/internal/project"
)

var (
	glyphCreated     = color.New(color.FgGreen).Sprint("+")
	glyphOverwritten = color.New(color.FgYellow).Sprint("~")
	glyphSkipped     = color.New(color.FgHiBlack).Sprint("-")
)

// printResults writes one status line per written path.
func printResults(w io.Writer, results []project.Result) {
	for _, r := range results {
		glyph := glyphCreated
		switch r.Status {
		case project.StatusOverwritten:
			glyph = glyphOverwritten
		case project.StatusSkipped:
			glyph = glyphSkipped
		}
		fmt.Fprintf(w, "  %s %s (%s)\n", glyph, r.Path, r.Status)
	}
}

// resolveAssistant picks the target assistant from the flag or config default.
func resolveAssistant(flagValue string) (string, error) {
	assistant := flagValue
	if assistant == "" {
		assistant = cfg.DefaultAssistant
	}
	if !paths.ValidAssistant(assistant) {
		err := errors.Newf("invalid assistant %q", assistant)
		return "", errors.NewUserError(err, "Valid assistants: claude, codex, gemini")
	}
	return assistant, nil
}

// loadPRD parses the descriptor from the flag value or the configured default.
func loadPRD(flagValue string) (*prd.PRD, error) {
	path := flagValue
	if path == "" {
		path = cfg.PRDFile
	}
	doc, err := prd.ParseFile(path)
	if err != nil {
		if errors.Is(err, errors.ErrInvalidPRD) {
			return nil, errors.NewUserError(err, "Fix the PRD frontmatter and retry")
		}
		return nil, errors.NewSystemError(err, fmt.Sprintf("Could not read %s", path))
	}
	return &doc.PRD, nil
}
