package tesseract

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// keySpace is the size of the packed move key range.
const keySpace = layerCount << 6

// Permutation maps each facelet index to the index its content moves to.
type Permutation [Len]int

// Identity returns the permutation that leaves every facelet in place.
func Identity() Permutation {
	var p Permutation
	for i := range p {
		p[i] = i
	}
	return p
}

// Action is the precomputed effect of one move.
type Action struct {
	Move Move
	Perm Permutation
}

// Affected reports whether the move carries facelet i somewhere else.
func (a *Action) Affected(i int) bool {
	return a.Perm[i] != i
}

// Support returns the indices the move carries somewhere else, ascending.
func (a *Action) Support() []int {
	var out []int
	for i, j := range a.Perm {
		if i != j {
			out = append(out, i)
		}
	}
	return out
}

// ActionTable holds one Action per valid move. It is read-only once built
// and safe for concurrent readers.
type ActionTable struct {
	actions [keySpace]*Action
	count   int
}

// Lookup returns the action for m, or false if m names no rotation.
func (t *ActionTable) Lookup(m Move) (*Action, bool) {
	if !m.Valid() {
		return nil, false
	}
	a := t.actions[m.key()]
	return a, a != nil
}

// Len returns the number of actions in the table.
func (t *ActionTable) Len() int {
	return t.count
}

// Moves returns the moves in the table in canonical order.
func (t *ActionTable) Moves() []Move {
	moves := make([]Move, 0, t.count)
	for _, a := range t.actions {
		if a != nil {
			moves = append(moves, a.Move)
		}
	}
	return moves
}

// BuildActions computes the permutation for every valid move over g. Each
// layer selector is built on its own goroutine. A rotated coordinate that
// matches no facelet is reported as ErrGeometry.
func BuildActions(ctx context.Context, g *Geometry) (*ActionTable, error) {
	var built [layerCount][]*Action

	eg, ctx := errgroup.WithContext(ctx)
	for l := Layer(0); l < layerCount; l++ {
		eg.Go(func() error {
			moves := layerMoves(l)
			out := make([]*Action, 0, len(moves))
			for _, m := range moves {
				if err := ctx.Err(); err != nil {
					return err
				}
				a, err := buildAction(g, m)
				if err != nil {
					return err
				}
				out = append(out, a)
			}
			built[l] = out
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	t := &ActionTable{}
	for _, actions := range built {
		for _, a := range actions {
			t.actions[a.Move.key()] = a
			t.count++
		}
	}
	return t, nil
}

// buildAction computes the permutation for a single move.
func buildAction(g *Geometry, m Move) (*Action, error) {
	a := &Action{Move: m}
	for i := 0; i < Len; i++ {
		c := g.Coord(i)
		if !inLayer(c, m) {
			a.Perm[i] = i
			continue
		}
		r := rotate(c, m.From, m.To)
		j, ok := g.Index(r)
		if !ok {
			return nil, fmt.Errorf("%w: move %s sends %v to %v", ErrGeometry, m, c, r)
		}
		a.Perm[i] = j
	}
	return a, nil
}

// inLayer reports whether c lies in the shell the move turns.
func inLayer(c Coord, m Move) bool {
	s := c[m.Axis]
	if m.Layer.Negative() {
		s = -s
	}
	return s > 0 && (s > Inner) == m.Layer.Outer()
}

// rotate turns c a quarter in the (from, to) plane, carrying from onto to.
func rotate(c Coord, from, to Axis) Coord {
	r := c
	r[to] = c[from]
	r[from] = -c[to]
	return r
}
