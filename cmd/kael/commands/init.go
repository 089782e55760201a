package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pabloism0x/kael/internal/errors"
	"github.com/pabloism0x/kael/internal/logging"
	"github.com/pabloism0x/kael/internal/matcher"
	"github.com/pabloism0x/kael/internal/project"
	"github.com/pabloism0x/kael/internal/render"
)

var (
	initFrom      string
	initAssistant string
	initForce     bool
	initDir       string
)

func init() {
	initCmd.Flags().StringVar(&initFrom, "from", "", "path to the PRD file (default: prd_file from config)")
	initCmd.Flags().StringVarP(&initAssistant, "assistant", "a", "", "target assistant: claude, codex, gemini")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing files")
	initCmd.Flags().StringVarP(&initDir, "dir", "d", ".", "project directory to write into")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate the full assistant configuration tree from a PRD",
	Long: `Parse the PRD, match skills, agents, and commands for its stack,
and write the complete configuration tree into the project directory.

Existing files are left untouched unless --force is given, so local
edits to generated files survive a re-run.`,
	Example: `  # Generate from ./PRD.md into the current directory
  kael init

  # Regenerate everything, overwriting local edits
  kael init --force

  # Use a different descriptor and assistant
  kael init --from docs/PRD.md --assistant codex`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cobraCmd *cobra.Command, _ []string) error {
	logger := logging.FromContext(cobraCmd.Context())

	p, err := loadPRD(initFrom)
	if err != nil {
		return err
	}

	assistant, err := resolveAssistant(initAssistant)
	if err != nil {
		return err
	}

	sel := matcher.Select(p)
	logger.Debug("matched components",
		"skills", len(sel.Skills()),
		"agents", len(sel.Agents()),
		"commands", len(sel.Commands()))

	tree, err := render.Render(p, sel, assistant)
	if err != nil {
		var unknown *render.UnknownComponentError
		if errors.As(err, &unknown) {
			return errors.NewUserError(err, "Check the skills/agents overrides in the PRD frontmatter")
		}
		return err
	}

	results, err := project.Write(tree, initDir, initForce)
	if err != nil {
		return errors.NewSystemError(err, "Check permissions on the project directory")
	}

	out := cobraCmd.OutOrStdout()
	fmt.Fprintf(out, "Generated %s configuration for %s:\n", assistant, p.Name)
	printResults(out, results)

	skipped := 0
	for _, r := range results {
		if r.Status == project.StatusSkipped {
			skipped++
		}
	}
	if skipped > 0 {
		fmt.Fprintf(out, "%d existing file(s) left untouched. Use --force to overwrite.\n", skipped)
	}

	return nil
}
