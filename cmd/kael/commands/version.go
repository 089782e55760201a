package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pabloism0x/kael/cmd"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version, commit, and build date of kael.`,
	Run: func(cobraCmd *cobra.Command, _ []string) {
		out := cobraCmd.OutOrStdout()
		fmt.Fprintf(out, "kael version %s\n", cmd.Version)
		fmt.Fprintf(out, "  commit: %s\n", cmd.Commit)
		fmt.Fprintf(out, "  built:  %s\n", cmd.Date)
	},
}
