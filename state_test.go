package tesseract

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStateIsSolved(t *testing.T) {
	s := NewState()
	assert.True(t, s.IsSolved())
	assert.Equal(t, Faces, s.SolvedFaces())
	assert.Equal(t, PhaseSolved, ProgressOf(s).Phase)
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	_, table := buildTestTable(t)
	s := NewState().ApplyMove(table, OuterW)
	assert.False(t, s.IsSolved())
	// Both w cells and both z cells keep their color; the x and y cells
	// trade slabs.
	assert.Equal(t, 4, s.SolvedFaces())
	assert.Equal(t, PhasePartial, ProgressOf(s).Phase)
}

func TestApplyMovesContentAlongPermutation(t *testing.T) {
	_, table := buildTestTable(t)
	a, _ := table.Lookup(InnerW)
	s := NewState().Apply(a)
	for i, j := range a.Perm {
		assert.Equal(t, i, s[j])
	}
}

func TestFourQuarterTurnsReturnToSolved(t *testing.T) {
	_, table := buildTestTable(t)
	for _, m := range table.Moves() {
		s := NewState()
		for i := 0; i < 4; i++ {
			s = s.ApplyMove(table, m)
			if i < 3 {
				require.NotEqual(t, NewState(), s, "%s x %d", m, i+1)
			}
		}
		assert.Equal(t, NewState(), s, "%s x 4 should return to solved", m)
	}
}

func TestInverseUndoesMove(t *testing.T) {
	_, table := buildTestTable(t)
	start := NewState()
	for _, m := range Scramble(rand.New(rand.NewPCG(7, 7)), 10) {
		start = start.ApplyMove(table, m)
	}
	for _, m := range table.Moves() {
		s := start.ApplyMove(table, m).ApplyMove(table, m.Inverse())
		assert.Equal(t, start, s, "%s then %s", m, m.Inverse())
	}
}

func TestScrambleThenInverseReturnsToSolved(t *testing.T) {
	_, table := buildTestTable(t)
	moves := Scramble(rand.New(rand.NewPCG(3, 4)), 40)
	s := NewState()
	for _, m := range moves {
		s = s.ApplyMove(table, m)
	}
	require.False(t, s.IsSolved())
	for _, m := range InvertMoves(moves) {
		s = s.ApplyMove(table, m)
	}
	assert.True(t, s.IsSolved())
	t.Log("\n" + s.String())
}

func TestApplyUnknownMoveIsNoOp(t *testing.T) {
	_, table := buildTestTable(t)
	s := NewState().ApplyMove(table, OuterW)
	assert.Equal(t, s, s.ApplyMove(table, Move{Axis: W, From: W, To: X}))
}

func TestStateIsAlwaysAPermutation(t *testing.T) {
	_, table := buildTestTable(t)
	s := NewState()
	for _, m := range Scramble(rand.New(rand.NewPCG(9, 9)), 25) {
		s = s.ApplyMove(table, m)
	}
	var seen [Len]bool
	for _, home := range s {
		require.False(t, seen[home])
		seen[home] = true
	}
	// Every color still appears exactly FaceSize times.
	counts := make(map[Face]int)
	for i := range s {
		counts[s.Color(i)]++
	}
	for f := Face(0); f < Faces; f++ {
		assert.Equal(t, FaceSize, counts[f])
	}
}
