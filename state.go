package tesseract

import (
	"fmt"
	"strings"
)

// State records, for each facelet position, the home index of the sticker
// currently shown there.
type State [Len]int

// NewState returns the solved state: every position shows its own sticker.
func NewState() State {
	return State(Identity())
}

// Apply returns the state after a: the sticker at i moves to a.Perm[i].
func (s State) Apply(a *Action) State {
	var next State
	for i, j := range a.Perm {
		next[j] = s[i]
	}
	return next
}

// ApplyMove looks m up in t and applies it. Unknown moves leave the state
// unchanged.
func (s State) ApplyMove(t *ActionTable, m Move) State {
	a, ok := t.Lookup(m)
	if !ok {
		return s
	}
	return s.Apply(a)
}

// Color returns the cell color shown at position i.
func (s State) Color(i int) Face {
	return Face(s[i] / FaceSize)
}

// IsSolved returns true if every position shows its own cell color.
func (s State) IsSolved() bool {
	return s.Misplaced() == 0
}

// Misplaced counts the positions showing a color other than their own cell.
func (s State) Misplaced() int {
	n := 0
	for i := range s {
		if s.Color(i) != Face(i/FaceSize) {
			n++
		}
	}
	return n
}

// SolvedFaces counts the cells whose positions all show the cell's color.
func (s State) SolvedFaces() int {
	n := 0
	for f := 0; f < Faces; f++ {
		solved := true
		for i := f * FaceSize; i < (f+1)*FaceSize; i++ {
			if s.Color(i) != Face(f) {
				solved = false
				break
			}
		}
		if solved {
			n++
		}
	}
	return n
}

// String returns a text representation: one row per cell listing the
// initial letters of the colors shown, eight per group.
func (s State) String() string {
	var b strings.Builder
	for f := 0; f < Faces; f++ {
		fmt.Fprintf(&b, "%-7s ", Face(f))
		for i := 0; i < FaceSize; i++ {
			if i > 0 && i%8 == 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(s.Color(f*FaceSize + i).String()[0])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
