package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/aditya-r-m/twisty-tesseract"
	"github.com/aditya-r-m/twisty-tesseract/internal/metrics"
	"github.com/aditya-r-m/twisty-tesseract/internal/storage"
)

var (
	replayLast     bool
	replayHeadless bool
	replayView     string
	replaySign     int
)

var replayCmd = &cobra.Command{
	Use:   "replay [session-id]",
	Short: "Replay a recorded session",
	Long: `Replay the moves of a recorded session into a fresh, solved puzzle.
The moves animate one after another in the player. Replays are never
journaled.

When stdout is not a terminal, or with --headless, the moves are settled and
the final drawing list is printed.

Usage:
  tesseract replay --last
  tesseract replay <session-id> --view x`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolVar(&replayLast, "last", false, "Replay the last session")
	replayCmd.Flags().BoolVar(&replayHeadless, "headless", false, "Print the final drawing list instead of animating")
	replayCmd.Flags().StringVar(&replayView, "view", "", "View axis (w, x, y, z)")
	replayCmd.Flags().IntVar(&replaySign, "sign", 0, "View side (-1 or 1)")
}

func runReplay(cmd *cobra.Command, args []string) error {
	view, err := parseView(replayView, replaySign)
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := resolveSession(storage.NewSessionRepository(db), args, replayLast)
	if err != nil {
		return err
	}

	records, err := storage.NewMoveRepository(db).GetBySession(session.SessionID)
	if err != nil {
		return fmt.Errorf("failed to get moves: %w", err)
	}
	moves := storage.Moves(records)
	if len(moves) < len(records) {
		logger.Warn("skipped unreadable moves", "session", session.SessionID, "count", len(records)-len(moves))
	}

	sim := replaySimulator(session)
	collector := metrics.New()
	collector.Attach(sim)
	for _, m := range moves {
		sim.Enqueue(m)
	}

	if replayHeadless || !isTerminal(cmd.OutOrStdout()) {
		settle(sim, collector)
		return printFrame(cmd.OutOrStdout(), sim, collector, view)
	}

	title := fmt.Sprintf("Replay %s (%d moves)", session.SessionID, len(moves))
	model := newPlayModel(sim, collector, view, cfg.Display.TickInterval, title)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("replay error: %w", err)
	}
	return nil
}

// replaySimulator builds a simulator that animates at the speed the session
// was recorded with, when the journal knows it.
func replaySimulator(session *storage.Session) *tesseract.Simulator {
	if session.AnimationFrames != nil && *session.AnimationFrames > 0 {
		return newSimulator(tesseract.WithAnimationFrames(*session.AnimationFrames))
	}
	return newSimulator()
}
