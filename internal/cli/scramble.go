package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aditya-r-m/twisty-tesseract"
)

var (
	scrambleLength int
	scrambleSeed   uint64
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Print a random move sequence",
	Long: `Print a random move sequence. No move is directly followed by its own
inverse. The same --seed always gives the same sequence.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "n", 20, "Number of moves")
	scrambleCmd.Flags().Uint64Var(&scrambleSeed, "seed", 0, "Random seed (default: random)")
}

func runScramble(cmd *cobra.Command, args []string) error {
	if scrambleLength < 0 {
		return fmt.Errorf("length must not be negative")
	}
	moves := tesseract.Scramble(newRand(scrambleSeed), scrambleLength)
	fmt.Fprintln(cmd.OutOrStdout(), tesseract.FormatMoves(moves))
	return nil
}
