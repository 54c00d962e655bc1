package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aditya-r-m/twisty-tesseract"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, tesseract.View{Axis: tesseract.W, Sign: 1}, cfg.View())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
simulator:
  animation_frames: 12
display:
  view_axis: z
  view_sign: -1
  tick_interval: 50ms
storage:
  db_path: /tmp/t.db
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Simulator.AnimationFrames)
	assert.True(t, cfg.Simulator.MoveHistory, "unset fields keep their default")
	assert.Equal(t, 50*time.Millisecond, cfg.Display.TickInterval)
	assert.Equal(t, tesseract.View{Axis: tesseract.Z, Sign: -1}, cfg.View())
	assert.Equal(t, "debug", cfg.Log.Level)

	db, err := cfg.DBPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/t.db", db)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"frames":   "simulator:\n  animation_frames: 0\n",
		"axis":     "display:\n  view_axis: q\n",
		"sign":     "display:\n  view_sign: 2\n",
		"interval": "display:\n  tick_interval: 0s\n",
		"level":    "log:\n  level: loud\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.ErrorContains(t, err, "invalid config")
		})
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "simulator: [\n"))
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestEnvOverridesDBPath(t *testing.T) {
	t.Setenv("TESSERACT_DB", "/var/tmp/env.db")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	db, err := cfg.DBPath()
	require.NoError(t, err)
	assert.Equal(t, "/var/tmp/env.db", db)
}

func TestSimulatorOptions(t *testing.T) {
	cfg := Default()
	cfg.Simulator.AnimationFrames = 5
	sim := tesseract.New(cfg.SimulatorOptions()...)
	assert.Equal(t, 5, sim.Frames())
}
