package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pabloism0x/kael/internal/errors"
	"github.com/pabloism0x/kael/internal/matcher"
	"github.com/pabloism0x/kael/internal/project"
	"github.com/pabloism0x/kael/internal/render"
)

var (
	generateFrom      string
	generateAssistant string
	generateDryRun    bool
	generateDir       string
)

func init() {
	generateCmd.Flags().StringVar(&generateFrom, "from", "", "path to the PRD file (default: prd_file from config)")
	generateCmd.Flags().StringVarP(&generateAssistant, "assistant", "a", "", "target assistant: claude, codex, gemini")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "print the rendered instructions instead of writing")
	generateCmd.Flags().StringVarP(&generateDir, "dir", "d", ".", "project directory to write into")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Re-render the instructions document and settings from the PRD",
	Long: `Render only the instructions document and settings file, overwriting
the existing ones. Skills, agents, and commands are left alone.

Use this after editing the PRD to refresh the generated documents
without disturbing the rest of the tree.`,
	Example: `  # Refresh CLAUDE.md and .claude/settings.json
  kael generate

  # Preview the rendered document without writing
  kael generate --dry-run`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func runGenerate(cobraCmd *cobra.Command, _ []string) error {
	p, err := loadPRD(generateFrom)
	if err != nil {
		return err
	}

	assistant, err := resolveAssistant(generateAssistant)
	if err != nil {
		return err
	}

	sel := matcher.Select(p)

	tree, err := render.RenderDocs(p, sel, assistant)
	if err != nil {
		return err
	}

	out := cobraCmd.OutOrStdout()

	if generateDryRun {
		for _, path := range tree.Paths() {
			fmt.Fprintf(out, "--- %s ---\n", path)
			_, _ = out.Write(tree.File(path))
		}
		return nil
	}

	// Documents are always refreshed; that is the point of the command.
	results, err := project.Write(tree, generateDir, true)
	if err != nil {
		return errors.NewSystemError(err, "Check permissions on the project directory")
	}

	fmt.Fprintf(out, "Regenerated documents for %s:\n", p.Name)
	printResults(out, results)

	return nil
}
