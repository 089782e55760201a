package commands

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/pabloism0x/kael/internal/catalog"
	"github.com/pabloism0x/kael/internal/errors"
	"github.com/pabloism0x/kael/internal/paths"
	"github.com/pabloism0x/kael/pkg/fileutil"
)

var (
	addAssistant string
	addForce     bool
	addDir       string
)

func init() {
	addCmd.Flags().StringVarP(&addAssistant, "assistant", "a", "", "target assistant: claude, codex, gemini")
	addCmd.Flags().BoolVarP(&addForce, "force", "f", false, "overwrite an existing file")
	addCmd.Flags().StringVarP(&addDir, "dir", "d", ".", "project directory to write into")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <skill|agent|command> [name]",
	Short: "Install a single catalog component into the project",
	Long: `Copy one component out of the embedded catalog into the assistant's
configuration directory. Omit the name to pick interactively.`,
	Example: `  # Install a specific skill
  kael add skill rust/error-handling

  # Pick an agent interactively
  kael add agent`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runAdd,
}

func runAdd(cobraCmd *cobra.Command, args []string) error {
	kind, err := parseKindArg(args[0])
	if err != nil {
		return err
	}

	assistant, err := resolveAssistant(addAssistant)
	if err != nil {
		return err
	}

	var id string
	if len(args) == 2 {
		id = args[1]
	} else {
		id, err = pickComponent(kind)
		if err != nil || id == "" {
			return err
		}
	}

	content, err := catalog.Get(kind, id)
	if err != nil {
		return errors.NewUserError(err, fmt.Sprintf("Run 'kael list %ss' to see available components", kind))
	}

	target := filepath.Join(addDir, componentTarget(assistant, kind, id))
	if !addForce {
		if _, statErr := os.Stat(target); statErr == nil {
			err := errors.Wrapf(errors.ErrConfigExists, "%s already exists", target)
			return errors.NewUserError(err, "Use --force to overwrite")
		}
	}

	if err := paths.EnsureDir(filepath.Dir(target), 0o755); err != nil {
		return errors.NewSystemError(err, "Check permissions on the project directory")
	}
	if err := fileutil.AtomicWriteFile(target, []byte(content), 0o644); err != nil {
		return errors.NewSystemError(err, "Check permissions on the project directory")
	}

	fmt.Fprintf(cobraCmd.OutOrStdout(), "  %s %s\n", glyphCreated, target)
	return nil
}

// pickComponent runs the interactive fuzzy picker over the catalog.
// Returns an empty id when the user aborts.
func pickComponent(kind catalog.Kind) (string, error) {
	ids := catalog.List(kind)
	if len(ids) == 0 {
		return "", errors.Newf("catalog has no %ss", kind)
	}

	idx, err := fuzzyfinder.Find(
		ids,
		func(i int) string {
			return ids[i]
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			content, err := catalog.Get(kind, ids[i])
			if err != nil {
				return ""
			}
			return content
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", nil
		}
		return "", errors.Wrap(err, "interactive pick failed")
	}

	return ids[idx], nil
}

// parseKindArg maps a CLI argument to a catalog kind.
func parseKindArg(arg string) (catalog.Kind, error) {
	switch arg {
	case "skill":
		return catalog.KindSkill, nil
	case "agent":
		return catalog.KindAgent, nil
	case "command":
		return catalog.KindCommand, nil
	}
	err := errors.Newf("unknown component type %q", arg)
	return "", errors.NewUserError(err, "Valid types: skill, agent, command")
}

// componentTarget returns the project-relative path for a component,
// using forward slashes.
func componentTarget(assistant string, kind catalog.Kind, id string) string {
	configDir := paths.ConfigDir(assistant)
	if kind == catalog.KindSkill {
		return path.Join(configDir, kind.Dir(), id, "SKILL.md")
	}
	return path.Join(configDir, kind.Dir(), id+".md")
}
