package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List every move and the facelets it moves",
	Long: `List all moves the action table knows, one per line, with the number
of facelet positions each one moves.`,
	RunE: runActions,
}

func init() {
	rootCmd.AddCommand(actionsCmd)
}

func runActions(cmd *cobra.Command, args []string) error {
	table := newSimulator().Actions()
	out := cmd.OutOrStdout()

	for _, m := range table.Moves() {
		a, _ := table.Lookup(m)
		fmt.Fprintf(out, "%s\t%s\t%d\n", m.Notation(), m, len(a.Support()))
	}
	fmt.Fprintf(out, "%d actions\n", table.Len())
	return nil
}
