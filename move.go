package tesseract

import (
	"strings"
)

// Layer selects which shell along a move's axis turns.
// Bit 0 picks the outer shell, bit 1 the negative half-space.
type Layer uint8

const (
	LayerInner    Layer = 0
	LayerOuter    Layer = 1
	LayerNegative Layer = 2

	layerCount = 4
)

// Outer reports whether the layer is the outer shell, which includes the
// cell perpendicular to the move axis.
func (l Layer) Outer() bool {
	return l&LayerOuter != 0
}

// Negative reports whether the layer is on the negative side of the axis.
func (l Layer) Negative() bool {
	return l&LayerNegative != 0
}

// Move is a quarter turn of one layer. The layer is selected on Axis; the
// turn carries the From axis onto the To axis.
type Move struct {
	Layer Layer
	Axis  Axis
	From  Axis
	To    Axis
}

// Valid reports whether the move names a rotation: a layer in range and
// three distinct axes.
func (m Move) Valid() bool {
	if m.Layer >= layerCount || !m.Axis.Valid() || !m.From.Valid() || !m.To.Valid() {
		return false
	}
	return m.Axis != m.From && m.Axis != m.To && m.From != m.To
}

// key packs the move into an index for the action table.
func (m Move) key() int {
	return int(m.Layer)<<6 | int(m.Axis)<<4 | int(m.From)<<2 | int(m.To)
}

// Notation returns the four-character token for this move, e.g. 1wxy.
func (m Move) Notation() string {
	return string([]byte{
		byte('0' + m.Layer),
		m.Axis.String()[0],
		m.From.String()[0],
		m.To.String()[0],
	})
}

// Inverse returns the move that undoes m: the same layer turned the other
// way round the plane.
func (m Move) Inverse() Move {
	inv := m
	inv.From, inv.To = m.To, m.From
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a move token such as 0wxy or 3ZXW.
// Returns ErrInvalidNotation for anything that does not name a rotation.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 {
		return Move{}, ErrInvalidNotation
	}

	if s[0] < '0' || s[0] >= '0'+layerCount {
		return Move{}, ErrInvalidNotation
	}

	var axes [3]Axis
	for i := range axes {
		a, ok := ParseAxis(s[i+1])
		if !ok {
			return Move{}, ErrInvalidNotation
		}
		axes[i] = a
	}

	m := Move{Layer: Layer(s[0] - '0'), Axis: axes[0], From: axes[1], To: axes[2]}
	if !m.Valid() {
		return Move{}, ErrInvalidNotation
	}
	return m, nil
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Example: "1wxy 0zyx 3xwz"
// Invalid moves are skipped.
func ParseMoves(s string) []Move {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			continue // Skip invalid moves
		}
		moves = append(moves, move)
	}

	return moves
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InvertMoves returns the sequence that undoes moves.
func InvertMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
