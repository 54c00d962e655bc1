// Package cli implements the command-line interface for tesseract.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aditya-r-m/twisty-tesseract"
	"github.com/aditya-r-m/twisty-tesseract/internal/config"
	"github.com/aditya-r-m/twisty-tesseract/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
	verbose    bool

	// Resolved in PersistentPreRunE
	cfg    config.Config
	logger *slog.Logger
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "tesseract",
	Short: "4-D twisty puzzle simulator",
	Long: `tesseract - a simulator for the 2x2x2x2 twisty tesseract.

Type moves like 1wxy (layer digit, then the axis of the cell, then the
plane of rotation), watch them animate in a projected view, journal
sessions to SQLite and replay them later.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if dbPath != "" {
			c.Storage.DBPath = dbPath
		}
		cfg = c
		logger = newLogger(cmd.ErrOrStderr(), cfg.Log.Level, verbose)
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.tesseract/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.tesseract/tesseract.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// newLogger builds the text logger on w. Verbose forces debug.
func newLogger(w io.Writer, level string, verbose bool) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// newSimulator builds a simulator from the resolved config. Later options
// override the config.
func newSimulator(extra ...tesseract.Option) *tesseract.Simulator {
	opts := append(cfg.SimulatorOptions(), tesseract.WithLogger(logger))
	return tesseract.New(append(opts, extra...)...)
}

// openDB opens the journal and applies pending migrations.
func openDB() (*storage.DB, error) {
	path, err := cfg.DBPath()
	if err != nil {
		return nil, err
	}

	db, err := storage.OpenMigrated(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	logger.Debug("opened journal", "path", path)
	return db, nil
}

// parseView resolves --view and --sign, falling back to the config.
func parseView(axis string, sign int) (tesseract.View, error) {
	v := cfg.View()
	if axis != "" {
		if len(axis) != 1 {
			return v, fmt.Errorf("%w: axis %q", tesseract.ErrInvalidView, axis)
		}
		a, ok := tesseract.ParseAxis(axis[0])
		if !ok {
			return v, fmt.Errorf("%w: axis %q", tesseract.ErrInvalidView, axis)
		}
		v.Axis = a
	}
	if sign != 0 {
		v.Sign = sign
	}
	if !v.Valid() {
		return v, fmt.Errorf("%w: sign %d", tesseract.ErrInvalidView, v.Sign)
	}
	return v, nil
}
