// Package config loads and validates tesseract settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/aditya-r-m/twisty-tesseract"
)

// dirName is the per-user directory holding the config file and journal.
const dirName = ".tesseract"

// validate is shared; validator.Validate caches struct metadata.
var validate = validator.New()

// Config contains all tesseract settings.
type Config struct {
	Simulator SimulatorConfig `yaml:"simulator"`
	Display   DisplayConfig   `yaml:"display"`
	Storage   StorageConfig   `yaml:"storage"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Log       LogConfig       `yaml:"log"`
}

// SimulatorConfig contains simulator settings.
type SimulatorConfig struct {
	AnimationFrames int  `yaml:"animation_frames" validate:"min=1,max=240"`
	MoveHistory     bool `yaml:"move_history"`
}

// DisplayConfig contains player settings.
type DisplayConfig struct {
	ViewAxis     string        `yaml:"view_axis" validate:"oneof=w x y z"`
	ViewSign     int           `yaml:"view_sign" validate:"oneof=-1 1"`
	TickInterval time.Duration `yaml:"tick_interval" validate:"min=1ms"`
}

// StorageConfig contains journal settings.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// MetricsConfig contains metrics settings. An empty File disables the dump.
type MetricsConfig struct {
	File string `yaml:"file"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Simulator: SimulatorConfig{
			AnimationFrames: tesseract.AnimationFrames,
			MoveHistory:     true,
		},
		Display: DisplayConfig{
			ViewAxis:     "w",
			ViewSign:     1,
			TickInterval: 33 * time.Millisecond,
		},
		Log: LogConfig{Level: "warn"},
	}
}

// Dir returns the per-user tesseract directory, creating it if needed.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, dirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return dir, nil
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config at path over the defaults. A missing file yields
// the defaults. An empty path uses DefaultPath.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults
	case err != nil:
		return cfg, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv("TESSERACT_DB"); v != "" {
		cfg.Storage.DBPath = v
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// View returns the configured projection view.
func (c Config) View() tesseract.View {
	var axis tesseract.Axis
	if c.Display.ViewAxis != "" {
		axis, _ = tesseract.ParseAxis(c.Display.ViewAxis[0])
	}
	return tesseract.View{Axis: axis, Sign: c.Display.ViewSign}
}

// DBPath returns the journal path, falling back to the per-user directory.
func (c Config) DBPath() (string, error) {
	if c.Storage.DBPath != "" {
		return c.Storage.DBPath, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tesseract.db"), nil
}

// SimulatorOptions returns the options for tesseract.New.
func (c Config) SimulatorOptions() []tesseract.Option {
	return []tesseract.Option{
		tesseract.WithAnimationFrames(c.Simulator.AnimationFrames),
		tesseract.WithMoveHistory(c.Simulator.MoveHistory),
	}
}
