package tesseract

import "math/rand/v2"

// AllMoves returns every valid move in canonical order: layer, then axis,
// then from, then to.
func AllMoves() []Move {
	moves := make([]Move, 0, layerCount*Dimensions*(Dimensions-1)*(Dimensions-2))
	for l := Layer(0); l < layerCount; l++ {
		moves = append(moves, layerMoves(l)...)
	}
	return moves
}

// layerMoves returns the valid moves for one layer selector.
func layerMoves(l Layer) []Move {
	var moves []Move
	for a := Axis(0); a < Dimensions; a++ {
		for b := Axis(0); b < Dimensions; b++ {
			for c := Axis(0); c < Dimensions; c++ {
				m := Move{Layer: l, Axis: a, From: b, To: c}
				if m.Valid() {
					moves = append(moves, m)
				}
			}
		}
	}
	return moves
}

// Scramble returns n random moves drawn from rng. A move is never followed
// directly by its own inverse.
func Scramble(rng *rand.Rand, n int) []Move {
	all := AllMoves()
	moves := make([]Move, 0, n)
	for len(moves) < n {
		m := all[rng.IntN(len(all))]
		if len(moves) > 0 && moves[len(moves)-1].Inverse() == m {
			continue
		}
		moves = append(moves, m)
	}
	return moves
}

// Predefined sequences.
var (
	// OuterW turns the +w cell a quarter in the xy plane.
	OuterW = Move{Layer: LayerOuter, Axis: W, From: X, To: Y}

	// InnerW turns the inner +w slice in the xy plane.
	InnerW = Move{Layer: LayerInner, Axis: W, From: X, To: Y}

	// CellTwist turns the +w cell through all three of its planes.
	CellTwist = []Move{
		{Layer: LayerOuter, Axis: W, From: X, To: Y},
		{Layer: LayerOuter, Axis: W, From: Y, To: Z},
		{Layer: LayerOuter, Axis: W, From: Z, To: X},
	}
)
