package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pabloism0x/kael/internal/catalog"
	"github.com/pabloism0x/kael/internal/errors"
	"github.com/pabloism0x/kael/internal/matcher"
)

var listFrom string

func init() {
	listCmd.Flags().StringVar(&listFrom, "from", "", "mark entries selected by this PRD file")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list <skills|agents|commands|all>",
	Short: "List the components available in the catalog",
	Long: `List the skills, agents, and slash commands shipped in the embedded
catalog. With --from, entries the given PRD selects are marked with an
asterisk and the matching rule that picked them.`,
	Example: `  # All skills in the catalog
  kael list skills

  # Everything, marking what PRD.md would select
  kael list all --from PRD.md`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"skills", "agents", "commands", "all"},
	RunE:      runList,
}

func runList(cobraCmd *cobra.Command, args []string) error {
	var kinds []catalog.Kind
	switch args[0] {
	case "skills":
		kinds = []catalog.Kind{catalog.KindSkill}
	case "agents":
		kinds = []catalog.Kind{catalog.KindAgent}
	case "commands":
		kinds = []catalog.Kind{catalog.KindCommand}
	case "all":
		kinds = catalog.Kinds()
	default:
		err := errors.Newf("unknown component type %q", args[0])
		return errors.NewUserError(err, "Valid types: skills, agents, commands, all")
	}

	var sel *matcher.SelectionSet
	if listFrom != "" {
		p, err := loadPRD(listFrom)
		if err != nil {
			return err
		}
		sel = matcher.Select(p)
	}

	out := cobraCmd.OutOrStdout()
	for _, kind := range kinds {
		if len(kinds) > 1 {
			fmt.Fprintf(out, "%s:\n", kind.Dir())
		}
		printKind(out, kind, sel)
	}

	return nil
}

func printKind(w io.Writer, kind catalog.Kind, sel *matcher.SelectionSet) {
	marked := color.New(color.FgGreen)
	for _, id := range catalog.List(kind) {
		if sel != nil && sel.Contains(kind, id) {
			mark := marked.Sprint("*")
			fmt.Fprintf(w, "  %s %s (%s)\n", mark, id, sel.Origin(kind, id))
			continue
		}
		fmt.Fprintf(w, "    %s\n", id)
	}
}
