package cli

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aditya-r-m/twisty-tesseract"
	"github.com/aditya-r-m/twisty-tesseract/internal/analysis"
	"github.com/aditya-r-m/twisty-tesseract/internal/metrics"
	"github.com/aditya-r-m/twisty-tesseract/internal/recorder"
	"github.com/aditya-r-m/twisty-tesseract/internal/storage"
)

func newTestModel() *playModel {
	sim := tesseract.New(tesseract.WithAnimationFrames(3))
	view := tesseract.View{Axis: tesseract.W, Sign: 1}
	return newPlayModel(sim, metrics.New(), view, time.Millisecond, "test")
}

func TestPlayModelQueuesTypedMoves(t *testing.T) {
	m := newTestModel()

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1wxy 9ab")})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, m.sim.Pending())
	assert.Equal(t, "9ab", m.rejected)
	assert.Empty(t, m.input.Value())

	for range 3 {
		m.Update(tickMsg(time.Now()))
	}
	assert.True(t, m.sim.Idle())
	assert.Equal(t, []tesseract.Move{tesseract.OuterW}, m.sim.History())
	assert.Contains(t, m.View(), "1wxy")
}

func TestPlayModelViewKeys(t *testing.T) {
	m := newTestModel()

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, m.input.Focused())

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	assert.Equal(t, tesseract.Y, m.view.Axis)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, tesseract.Z, m.view.Axis)
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, tesseract.W, m.view.Axis)
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, tesseract.Z, m.view.Axis)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	assert.Equal(t, -1, m.view.Sign)

	want, err := m.sim.Frame(tesseract.View{Axis: tesseract.Z, Sign: -1})
	require.NoError(t, err)
	assert.Equal(t, want, m.sprites)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
}

func TestPlayModelReset(t *testing.T) {
	m := newTestModel()
	m.sim.Apply(tesseract.OuterW)
	require.False(t, m.sim.IsSolved())

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.True(t, m.sim.IsSolved())
}

func TestPlayModelResetStartsNewRecording(t *testing.T) {
	dir := t.TempDir()
	db, err := storage.OpenMigrated(filepath.Join(dir, "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	m := newTestModel()
	session := recorder.NewSession(db, nil, nil)
	first, err := session.Start("reset", "", "test", m.sim.Frames())
	require.NoError(t, err)
	session.Attach(m.sim)
	m.session = session

	m.sim.Apply(tesseract.OuterW)
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.True(t, m.sim.IsSolved())
	require.NoError(t, m.err)

	second := session.SessionID()
	require.NotEqual(t, first, second)
	assert.Equal(t, recorder.StateRecording, session.State())

	sessions := storage.NewSessionRepository(db)
	ended, err := sessions.Get(first)
	require.NoError(t, err)
	assert.NotNil(t, ended.EndedAt)
	current, err := sessions.Get(second)
	require.NoError(t, err)
	require.NotNil(t, current.Notes)
	assert.Equal(t, "reset", *current.Notes)

	m.sim.Apply(tesseract.InnerW)
	require.NoError(t, session.End())

	moves := storage.NewMoveRepository(db)
	journalSummary := func(id string) *analysis.SessionSummary {
		records, err := moves.GetBySession(id)
		require.NoError(t, err)
		return analysis.Summarize(id, journalSteps(records), 0)
	}

	before := journalSummary(first)
	assert.Equal(t, 1, before.TotalMoves)
	assert.Equal(t, tesseract.PhasePartial, before.Final.Phase)

	after := journalSummary(second)
	assert.Equal(t, 1, after.TotalMoves)
	assert.Equal(t, m.sim.Progress(), after.Final)
}

func TestCanvasPaintsSprites(t *testing.T) {
	sim := tesseract.New()
	sprites, err := sim.Frame(tesseract.View{Axis: tesseract.W, Sign: 1})
	require.NoError(t, err)

	c := NewCanvas(64, 32)
	c.Paint(sprites)
	assert.Greater(t, c.Count(), 0)
	assert.LessOrEqual(t, c.Count(), len(sprites))
	assert.Equal(t, 31, strings.Count(c.String(), "\n"))

	empty := NewCanvas(10, 5)
	empty.Paint([]tesseract.Sprite{{X: 1000, Y: 0}, {X: -301, Y: 0}})
	assert.Equal(t, 0, empty.Count())
}
