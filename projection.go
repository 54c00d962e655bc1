package tesseract

import (
	"cmp"
	"slices"
)

// Radius is the base size of a projected facelet.
const Radius = 7

// View selects the collapsed axis and the side it is seen from.
type View struct {
	Axis Axis
	Sign int // -1 or +1
}

// Valid reports whether the view names an axis and a sign of ±1.
func (v View) Valid() bool {
	return v.Axis.Valid() && (v.Sign == 1 || v.Sign == -1)
}

// DisplayCoords returns the coordinates to draw for every position. With a
// nil action these are the rest coordinates. Otherwise each position is
// interpolated from its rest coordinate toward the coordinate the action
// sends it to, counter frames of the way through, with integer truncation.
func DisplayCoords(g *Geometry, a *Action, counter, frames int) [Len]Coord {
	coords := g.Coords()
	if a == nil || frames < 1 {
		return coords
	}
	for i := range coords {
		rest := g.Coord(i)
		target := g.Coord(a.Perm[i])
		for d := 0; d < Dimensions; d++ {
			coords[i][d] = (rest[d]*(frames-counter) + target[d]*counter) / frames
		}
	}
	return coords
}

// Project maps each visible position through the perspective pipeline and
// returns the sprites farthest first. Positions on the far side of the
// view axis, and those projected behind the eye, are culled.
func Project(coords *[Len]Coord, s *State, v View) ([]Sprite, error) {
	if !v.Valid() {
		return nil, ErrInvalidView
	}

	sprites := make([]Sprite, 0, Len)
	for i := range coords {
		c := &coords[i]
		depth := v.Sign * c[v.Axis]
		if depth >= Span {
			continue
		}
		sp, ok := projectPoint(c, v.Axis, Span-depth)
		if !ok {
			continue
		}
		sp.Index = i
		sp.Face = s.Color(i)
		sprites = append(sprites, sp)
	}

	slices.SortFunc(sprites, compareSprites)
	return sprites, nil
}

// projectPoint divides the three remaining coordinates by the depth
// divisor d, then turns them twice by the 3-4-5 angle to land on the
// screen plane.
func projectPoint(c *Coord, view Axis, d int) (Sprite, bool) {
	x := Span * c[view.rot(1)] / d
	y := Span * c[view.rot(2)] / d
	z := Span * c[view.rot(3)] / d

	xr0 := (4*x - 3*z) / 5
	zr0 := (3*x + 4*z) / 5
	zr1 := (4*zr0 - 3*y) / 5
	yr1 := (3*zr0 + 4*y) / 5

	const eye = 8 * Span
	if zr1 >= eye {
		return Sprite{}, false
	}
	return Sprite{
		X:      xr0,
		Y:      yr1,
		Depth:  zr1,
		Radius: eye * Radius / (eye - zr1),
	}, true
}

// compareSprites orders by depth, then y, then x. Face and index break the
// remaining ties so the order is total.
func compareSprites(a, b Sprite) int {
	return cmp.Or(
		cmp.Compare(a.Depth, b.Depth),
		cmp.Compare(a.Y, b.Y),
		cmp.Compare(a.X, b.X),
		cmp.Compare(a.Face, b.Face),
		cmp.Compare(a.Index, b.Index),
	)
}
