package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Print a solution (not implemented)",
	Long:  `Print a solving sequence for the current puzzle. No solver exists yet.`,
	RunE:  runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), newSimulator().Solve())
	return nil
}
