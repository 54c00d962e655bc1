package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/aditya-r-m/twisty-tesseract"
	"github.com/aditya-r-m/twisty-tesseract/internal/analysis"
	"github.com/aditya-r-m/twisty-tesseract/internal/storage"
)

var (
	sessionsLimit int
	showLast      bool
	showJSON      bool
	exportLast    bool
	exportFormat  string
	exportOutput  string
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Inspect recorded sessions",
	Long:  `Commands for listing and exporting sessions recorded with 'tesseract play --record'.`,
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	RunE:  runSessionsList,
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show [session-id]",
	Short: "Show statistics for a session",
	Long: `Display statistics for a recorded session:
- Duration, move count and moves per second
- Pauses between moves
- Wasted motion (moves undone at once, repeated turns)
- Most repeated move sequences

Use --last to show the most recent session.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSessionsShow,
}

var sessionsExportCmd = &cobra.Command{
	Use:   "export [session-id]",
	Short: "Export the moves of a session",
	Long: `Export the move sequence from a session in text or JSON format.

Examples:
  tesseract sessions export --last
  tesseract sessions export <session-id> --format json
  tesseract sessions export <session-id> -o moves.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSessionsExport,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)

	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsListCmd.Flags().IntVar(&sessionsLimit, "limit", 20, "Maximum number of sessions")

	sessionsCmd.AddCommand(sessionsShowCmd)
	sessionsShowCmd.Flags().BoolVar(&showLast, "last", false, "Show the last session")
	sessionsShowCmd.Flags().BoolVar(&showJSON, "json", false, "Print the statistics as JSON")

	sessionsCmd.AddCommand(sessionsExportCmd)
	sessionsExportCmd.Flags().BoolVar(&exportLast, "last", false, "Export the last session")
	sessionsExportCmd.Flags().StringVar(&exportFormat, "format", "txt", "Export format (txt, json)")
	sessionsExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}

func runSessionsList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := storage.NewSessionRepository(db).List(sessionsLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded. Start one with: tesseract play --record")
		return nil
	}

	moveRepo := storage.NewMoveRepository(db)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTARTED\tDURATION\tMOVES\tNOTES")
	for _, s := range sessions {
		count, err := moveRepo.Count(s.SessionID)
		if err != nil {
			return err
		}

		duration := "in progress"
		if s.DurationMs != nil {
			duration = (time.Duration(*s.DurationMs) * time.Millisecond).Round(time.Second).String()
		}
		notes := ""
		if s.Notes != nil {
			notes = *s.Notes
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			s.SessionID, s.StartedAt.Local().Format("2006-01-02 15:04:05"), duration, count, notes)
	}
	return w.Flush()
}

// resolveSession returns the session named by args, or the last one.
func resolveSession(sessions *storage.SessionRepository, args []string, last bool) (*storage.Session, error) {
	if len(args) == 0 && !last {
		return nil, fmt.Errorf("specify a session ID or --last")
	}

	var (
		s   *storage.Session
		err error
	)
	if last {
		s, err = sessions.GetLast()
	} else {
		s, err = sessions.Get(args[0])
	}
	if err != nil {
		return nil, err
	}
	if s == nil {
		if last {
			return nil, fmt.Errorf("no sessions found")
		}
		return nil, fmt.Errorf("session not found: %s", args[0])
	}
	return s, nil
}

func runSessionsShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := resolveSession(storage.NewSessionRepository(db), args, showLast)
	if err != nil {
		return err
	}

	records, err := storage.NewMoveRepository(db).GetBySession(session.SessionID)
	if err != nil {
		return fmt.Errorf("failed to get moves: %w", err)
	}

	steps := journalSteps(records)

	var durationMs int64
	if session.DurationMs != nil {
		durationMs = *session.DurationMs
	}
	summary := analysis.Summarize(session.SessionID, steps, durationMs)

	out := cmd.OutOrStdout()
	if showJSON {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "Session: %s\n", session.SessionID)
	fmt.Fprintf(out, "Started: %s\n", session.StartedAt.Local().Format("2006-01-02 15:04:05"))
	if session.Notes != nil {
		fmt.Fprintf(out, "Notes: %s\n", *session.Notes)
	}
	if session.ScrambleText != nil {
		fmt.Fprintf(out, "Scramble: %s\n", *session.ScrambleText)
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Duration: %s\n", (time.Duration(summary.DurationMs) * time.Millisecond).Round(time.Millisecond))
	fmt.Fprintf(out, "Moves: %d (net %d)\n", summary.TotalMoves, summary.NetMoves)
	fmt.Fprintf(out, "Moves/sec: %.2f\n", summary.MovesPerSecond)
	fmt.Fprintf(out, "Longest pause: %dms (%d over %dms)\n", summary.LongestPauseMs, summary.PauseCountOver, analysis.PauseThresholdMs)
	fmt.Fprintf(out, "Final state: %s, %d/%d cells solved\n", summary.Final.Phase, summary.Final.SolvedFaces, tesseract.Faces)
	fmt.Fprintf(out, "Layers: inner %d, outer %d, -inner %d, -outer %d\n",
		summary.LayerCounts[tesseract.LayerInner], summary.LayerCounts[tesseract.LayerOuter],
		summary.LayerCounts[tesseract.LayerNegative], summary.LayerCounts[tesseract.LayerNegative|tesseract.LayerOuter])

	rep := summary.Repetitions
	if len(rep.ImmediateCancellations) > 0 || len(rep.Runs) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Wasted moves: %d\n", rep.TotalWastedMoves)
		for _, c := range rep.ImmediateCancellations {
			fmt.Fprintf(out, "  #%d %s %s cancel\n", c.Index1, c.Move1, c.Move2)
		}
		for _, r := range rep.Runs {
			fmt.Fprintf(out, "  #%d %s x%d\n", r.StartIndex, r.Move, r.Count)
		}
	}

	if summary.NGrams != nil && len(summary.NGrams.TopNGrams) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Repeated sequences:")
		for n := 2; n <= 6; n++ {
			for _, ng := range summary.NGrams.TopNGrams[n] {
				fmt.Fprintf(out, "  %s x%d\n", strings.Join(ng.Sequence, " "), ng.Count)
			}
		}
	}

	return nil
}

func runSessionsExport(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := resolveSession(storage.NewSessionRepository(db), args, exportLast)
	if err != nil {
		return err
	}

	moves, err := storage.NewMoveRepository(db).GetBySession(session.SessionID)
	if err != nil {
		return fmt.Errorf("failed to get moves: %w", err)
	}

	// Format output
	var output string

	switch strings.ToLower(exportFormat) {
	case "txt":
		notations := make([]string, 0, len(moves))
		for _, m := range moves {
			notations = append(notations, m.Notation)
		}
		output = strings.Join(notations, " ")

	case "json":
		type MoveJSON struct {
			MoveIndex int    `json:"move_index"`
			TsMs      int64  `json:"ts_ms"`
			Notation  string `json:"notation"`
			Layer     int    `json:"layer"`
		}

		movesJSON := make([]MoveJSON, 0, len(moves))
		for _, m := range moves {
			movesJSON = append(movesJSON, MoveJSON{
				MoveIndex: m.MoveIndex,
				TsMs:      m.TsMs,
				Notation:  m.Notation,
				Layer:     m.Layer,
			})
		}

		data, err := json.MarshalIndent(movesJSON, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		output = string(data)

	default:
		return fmt.Errorf("unknown format: %s (use txt or json)", exportFormat)
	}

	if exportOutput == "" {
		fmt.Fprintln(cmd.OutOrStdout(), output)
		return nil
	}

	dir := filepath.Dir(exportOutput)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(exportOutput, []byte(output+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d moves to %s\n", len(moves), exportOutput)
	return nil
}

// journalSteps converts journaled moves to analysis steps, skipping rows
// whose notation no longer parses.
func journalSteps(records []storage.MoveRecord) []analysis.Step {
	steps := make([]analysis.Step, 0, len(records))
	for _, r := range records {
		m, err := r.Move()
		if err != nil {
			continue
		}
		steps = append(steps, analysis.Step{Move: m, TsMs: r.TsMs})
	}
	return steps
}
