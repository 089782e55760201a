package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pabloism0x/kael/internal/errors"
)

var (
	removeAssistant string
	removeDir       string
)

func init() {
	removeCmd.Flags().StringVarP(&removeAssistant, "assistant", "a", "", "target assistant: claude, codex, gemini")
	removeCmd.Flags().StringVarP(&removeDir, "dir", "d", ".", "project directory to remove from")
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove <skill|agent|command> <name>",
	Short: "Remove an installed component from the project",
	Long: `Delete one component file from the assistant's configuration
directory. Empty parent directories are pruned.`,
	Example: `  # Remove an installed skill
  kael remove skill rust/error-handling`,
	Args: cobra.ExactArgs(2),
	RunE: runRemove,
}

func runRemove(cobraCmd *cobra.Command, args []string) error {
	kind, err := parseKindArg(args[0])
	if err != nil {
		return err
	}

	assistant, err := resolveAssistant(removeAssistant)
	if err != nil {
		return err
	}

	target := filepath.Join(removeDir, componentTarget(assistant, kind, args[1]))
	if err := os.Remove(target); err != nil {
		if os.IsNotExist(err) {
			wrapped := errors.Wrapf(errors.ErrNotFound, "%s %q not installed", kind, args[1])
			return errors.NewUserError(wrapped, fmt.Sprintf("Run 'kael list %ss' to see the catalog", kind))
		}
		return errors.NewSystemError(err, "Check permissions on the project directory")
	}

	pruneEmptyDirs(filepath.Dir(target), removeDir)

	fmt.Fprintf(cobraCmd.OutOrStdout(), "  %s %s\n", glyphSkipped, target)
	return nil
}

// pruneEmptyDirs removes empty directories from dir up to (not including) stop.
func pruneEmptyDirs(dir, stop string) {
	stop = filepath.Clean(stop)
	for {
		dir = filepath.Clean(dir)
		if dir == stop || dir == "." || dir == string(filepath.Separator) {
			return
		}
		if err := os.Remove(dir); err != nil {
			return // not empty or not removable
		}
		dir = filepath.Dir(dir)
	}
}
