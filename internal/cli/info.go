package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aditya-r-m/twisty-tesseract"
	"github.com/aditya-r-m/twisty-tesseract/internal/storage"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show configuration and journal status",
	Long:  `Display the resolved configuration, the puzzle dimensions and the session journal statistics.`,
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Tesseract Status")
	fmt.Fprintln(out, "================")
	fmt.Fprintln(out)

	sim := newSimulator()
	fmt.Fprintf(out, "Facelets: %d (%d cells of %d)\n", tesseract.Len, tesseract.Faces, tesseract.FaceSize)
	fmt.Fprintf(out, "Actions: %d\n", sim.Actions().Len())
	fmt.Fprintln(out)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Fprintln(out, "Config:")
	fmt.Fprint(out, string(data))
	fmt.Fprintln(out)

	path, err := cfg.DBPath()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Database: %s\n", path)

	db, err := openDB()
	if err != nil {
		fmt.Fprintf(out, "  unavailable: %v\n", err)
		return nil
	}
	defer db.Close()

	v, err := db.CurrentVersion()
	if err == nil {
		fmt.Fprintf(out, "Schema version: %d\n", v)
	}

	sessions := storage.NewSessionRepository(db)
	count, err := sessions.Count()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Total sessions: %d\n", count)

	last, err := sessions.GetLast()
	if err != nil {
		return err
	}
	if last != nil {
		fmt.Fprintf(out, "Last session: %s (%s)\n", last.SessionID, last.StartedAt.Local().Format(time.RFC3339))
	}

	return nil
}
