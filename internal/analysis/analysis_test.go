package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aditya-r-m/twisty-tesseract"
)

func steps(notation string, gapMs int64) []Step {
	moves := tesseract.ParseMoves(notation)
	out := make([]Step, len(moves))
	for i, m := range moves {
		out[i] = Step{Move: m, TsMs: int64(i) * gapMs}
	}
	return out
}

func TestRepetitionsFindCancellations(t *testing.T) {
	report := AnalyzeRepetitions(steps("1wxy 1wyx 1wxy 0zyx", 100))

	require.Len(t, report.ImmediateCancellations, 1)
	c := report.ImmediateCancellations[0]
	assert.Equal(t, 0, c.Index1)
	assert.Equal(t, "1wyx", c.Move2)
	assert.Equal(t, 2, report.TotalWastedMoves)
}

func TestRepetitionsFindRuns(t *testing.T) {
	tests := []struct {
		notation string
		count    int
		wasted   int
	}{
		{"2xyz 2xyz 2xyz", 3, 2},
		{"2xyz 2xyz 2xyz 2xyz", 4, 4},
		{"2xyz 2xyz 2xyz 2xyz 2xyz", 5, 4},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			report := AnalyzeRepetitions(steps(tt.notation, 10))
			require.Len(t, report.Runs, 1)
			assert.Equal(t, tt.count, report.Runs[0].Count)
			assert.Equal(t, tt.wasted, report.TotalWastedMoves)
		})
	}

	assert.Empty(t, AnalyzeRepetitions(steps("2xyz 2xyz", 10)).Runs)
}

func TestRepetitionsFoldOverlappingWaste(t *testing.T) {
	tests := []struct {
		notation string
		net      int
	}{
		{"1wxy 1wxy 1wxy 1wyx", 2},
		{"1wxy 1wyx 1wyx 1wyx", 2},
		{"1wxy 0zyx 0zxy 1wxy", 2},
		{"1wxy 1wxy 1wxy 1wxy 1wyx", 1},
		{"2xyz 2xzy 2xzy", 1},
		{"1wxy 0zyx 3xwz", 3},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			seq := steps(tt.notation, 10)
			assert.Equal(t, tt.net, ReducedLength(seq))
			assert.Equal(t, len(seq)-tt.net, AnalyzeRepetitions(seq).TotalWastedMoves)
		})
	}

	s := Summarize("overlap", steps("1wxy 1wxy 1wxy 1wyx", 10), 0)
	assert.Equal(t, 4, s.TotalMoves)
	assert.Equal(t, 2, s.NetMoves)
	assert.Equal(t, 2, s.Repetitions.TotalWastedMoves)
}

func TestMineNGrams(t *testing.T) {
	seq := steps("1wxy 0zyx 3xwz 1wxy 0zyx 2ywz 1wxy 0zyx", 50)
	report := MineNGrams(seq, 2, 3, 5)

	pairs := report.TopNGrams[2]
	require.NotEmpty(t, pairs)
	assert.Equal(t, []string{"1wxy", "0zyx"}, pairs[0].Sequence)
	assert.Equal(t, 3, pairs[0].Count)
	require.Len(t, pairs[0].Occurrences, 3)
	assert.Equal(t, 3, pairs[0].Occurrences[1].StartIndex)
	assert.Equal(t, int64(150), pairs[0].Occurrences[1].TsMs)

	_, ok := report.TopNGrams[3]
	assert.False(t, ok)
}

func TestRollingHashMatchesFreshHash(t *testing.T) {
	tokens := []uint8{5, 90, 3, 17, 95, 0}
	rh := NewRollingHash(3)
	for i, tok := range tokens {
		rh.Roll(tok)
		if i < 2 {
			assert.False(t, rh.Ready())
			continue
		}
		fresh := NewRollingHash(3)
		for _, x := range tokens[i-2 : i+1] {
			fresh.Roll(x)
		}
		assert.Equal(t, fresh.Hash(), rh.Hash())
		assert.Equal(t, tokens[i-2:i+1], rh.Window())
	}
}

func TestSummarize(t *testing.T) {
	seq := steps("1wxy 1wyx 0zyx", 1000)
	seq[2].TsMs = 4000

	s := Summarize("abc", seq, 5000)
	assert.Equal(t, 3, s.TotalMoves)
	assert.Equal(t, 1, s.NetMoves)
	assert.InDelta(t, 0.6, s.MovesPerSecond, 1e-9)
	assert.Equal(t, int64(3000), s.LongestPauseMs)
	assert.Equal(t, 1, s.PauseCountOver)
	assert.InDelta(t, 2000.0, s.AvgMoveDurationMs, 1e-9)
	assert.Equal(t, [4]int{1, 2, 0, 0}, s.LayerCounts)
	assert.Equal(t, 2, s.AxisCounts[tesseract.W])
	assert.Equal(t, tesseract.PhasePartial, s.Final.Phase)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize("empty", nil, 0)
	assert.Equal(t, 0, s.TotalMoves)
	assert.Zero(t, s.MovesPerSecond)
	assert.Equal(t, tesseract.PhaseSolved, s.Final.Phase)
}
