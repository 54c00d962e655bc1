package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aditya-r-m/twisty-tesseract"
	"github.com/aditya-r-m/twisty-tesseract/internal/metrics"
)

var (
	projectView  string
	projectSign  int
	projectFrame int
)

var projectCmd = &cobra.Command{
	Use:   "project [moves...]",
	Short: "Print the drawing list after a sequence of moves",
	Long: `Apply the given moves to a solved puzzle and print the drawing list
("x,y,r,COLOR|...") for the resulting frame, farthest facelet first.

With --frame k the last move is shown in flight, k ticks into its animation.

Examples:
  tesseract project
  tesseract project 1wxy 0zyx --view z --sign -1
  tesseract project 1wxy --frame 10`,
	RunE: runProject,
}

func init() {
	rootCmd.AddCommand(projectCmd)
	projectCmd.Flags().StringVar(&projectView, "view", "", "View axis (w, x, y, z)")
	projectCmd.Flags().IntVar(&projectSign, "sign", 0, "View side (-1 or 1)")
	projectCmd.Flags().IntVar(&projectFrame, "frame", 0, "Show the last move this many ticks into its animation")
}

func runProject(cmd *cobra.Command, args []string) error {
	view, err := parseView(projectView, projectSign)
	if err != nil {
		return err
	}

	moves, err := parseMoveArgs(args)
	if err != nil {
		return err
	}

	sim := newSimulator()
	if projectFrame < 0 || projectFrame >= sim.Frames() {
		return fmt.Errorf("frame must be in [0, %d)", sim.Frames())
	}

	collector := metrics.New()
	collector.Attach(sim)
	for _, m := range moves {
		sim.Enqueue(m)
	}

	if projectFrame > 0 && len(moves) > 0 {
		for sim.Pending() > 1 {
			sim.Tick()
			collector.Tick()
		}
		for range projectFrame {
			sim.Tick()
			collector.Tick()
		}
	} else {
		settle(sim, collector)
	}

	return printFrame(cmd.OutOrStdout(), sim, collector, view)
}

// parseMoveArgs parses every token in args, rejecting the first malformed
// one. Arguments may hold several space-separated tokens.
func parseMoveArgs(args []string) ([]tesseract.Move, error) {
	var moves []tesseract.Move
	for _, arg := range args {
		for _, token := range strings.Fields(arg) {
			m, err := tesseract.ParseMove(token)
			if err != nil {
				return nil, err
			}
			moves = append(moves, m)
		}
	}
	return moves, nil
}
