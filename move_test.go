package tesseract

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		token string
		want  Move
	}{
		{"0wxy", Move{Layer: LayerInner, Axis: W, From: X, To: Y}},
		{"1WXY", Move{Layer: LayerOuter, Axis: W, From: X, To: Y}},
		{"2zyx", Move{Layer: LayerNegative, Axis: Z, From: Y, To: X}},
		{" 3xWz ", Move{Layer: LayerNegative | LayerOuter, Axis: X, From: W, To: Z}},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseMove(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMoveRejectsMalformed(t *testing.T) {
	for _, token := range []string{
		"",
		"9ab",   // wrong length
		"0wxyz", // wrong length
		"4wxy",  // layer out of range
		"awxy",  // layer not a digit
		"0wxa",  // unknown axis
		"0wwx",  // repeated axis
		"0wxx",
	} {
		_, err := ParseMove(token)
		assert.ErrorIs(t, err, ErrInvalidNotation, "token %q", token)
	}
}

func TestNotationRoundTrip(t *testing.T) {
	for _, m := range AllMoves() {
		got, err := ParseMove(m.Notation())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
}

func TestMoveInverse(t *testing.T) {
	m := Move{Layer: LayerOuter, Axis: W, From: X, To: Y}
	assert.Equal(t, "1wyx", m.Inverse().Notation())
	assert.Equal(t, m, m.Inverse().Inverse())
}

func TestParseMovesSkipsInvalid(t *testing.T) {
	moves := ParseMoves("1wxy bogus 0zyx 9ab")
	assert.Equal(t, "1wxy 0zyx", FormatMoves(moves))
	assert.Equal(t, "", FormatMoves(nil))
}

func TestInvertMoves(t *testing.T) {
	moves := ParseMoves("1wxy 0zyx 3xwz")
	assert.Equal(t, "3xzw 0zxy 1wyx", FormatMoves(InvertMoves(moves)))
}

func TestAllMoves(t *testing.T) {
	moves := AllMoves()
	assert.Len(t, moves, 96)
	seen := make(map[Move]bool)
	for _, m := range moves {
		assert.True(t, m.Valid())
		assert.False(t, seen[m])
		seen[m] = true
	}
}

func TestScramble(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	moves := Scramble(rng, 50)
	require.Len(t, moves, 50)
	for i := 1; i < len(moves); i++ {
		assert.NotEqual(t, moves[i-1].Inverse(), moves[i])
	}

	again := Scramble(rand.New(rand.NewPCG(1, 2)), 50)
	assert.Equal(t, moves, again, "same seed gives same scramble")
}
