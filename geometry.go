package tesseract

import "fmt"

// Geometry parameters.
const (
	// Dimensions is the number of axes.
	Dimensions = 4

	// Span is the coordinate of a facelet on its face axis.
	Span = 200

	// Inner is the edge value separating the inner and outer shells.
	Inner = 15

	// Faces is the number of cells (3-D faces) on the boundary.
	Faces = 2 * Dimensions

	// FaceSize is the number of facelets per cell.
	FaceSize = len(edges) * len(edges) * len(edges)

	// Len is the total number of facelets.
	Len = FaceSize * Faces
)

// edges are the layer values taken by the three non-face coordinates.
var edges = [...]int{-45, -15, 15, 45}

// Axis identifies one of the four dimensions.
type Axis int

const (
	W Axis = 0
	X Axis = 1
	Y Axis = 2
	Z Axis = 3
)

var axisLabels = [Dimensions]byte{'w', 'x', 'y', 'z'}

func (a Axis) String() string {
	if !a.Valid() {
		return "?"
	}
	return string(axisLabels[a])
}

// Valid reports whether a is one of W, X, Y, Z.
func (a Axis) Valid() bool {
	return a >= 0 && a < Dimensions
}

// rot returns the axis n steps after a, wrapping.
func (a Axis) rot(n int) Axis {
	return Axis((int(a) + n) % Dimensions)
}

// ParseAxis converts a label (w, x, y, z in either case) to an Axis.
func ParseAxis(c byte) (Axis, bool) {
	switch c {
	case 'w', 'W':
		return W, true
	case 'x', 'X':
		return X, true
	case 'y', 'Y':
		return Y, true
	case 'z', 'Z':
		return Z, true
	default:
		return 0, false
	}
}

// Face identifies one of the eight boundary cells, in generation order:
// -w, +w, -x, +x, -y, +y, -z, +z.
type Face int

var faceNames = [Faces]string{
	"RED", "GREEN", "BLUE", "CYAN", "MAGENTA", "YELLOW", "WHITE", "PURPLE",
}

// String returns the color name used in drawing lists.
func (f Face) String() string {
	if f < 0 || int(f) >= Faces {
		return "?"
	}
	return faceNames[f]
}

// Axis returns the axis the cell is perpendicular to.
func (f Face) Axis() Axis {
	return Axis(int(f) / 2)
}

// Sign returns -1 or +1, the side of the cell on its axis.
func (f Face) Sign() int {
	if f%2 == 0 {
		return -1
	}
	return 1
}

// ParseFace converts a color name to a Face.
func ParseFace(name string) (Face, bool) {
	for i, n := range faceNames {
		if n == name {
			return Face(i), true
		}
	}
	return 0, false
}

// Coord is a point in 4-D integer space.
type Coord [Dimensions]int

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", c[0], c[1], c[2], c[3])
}

// Facelet is a fixed position on the boundary together with the cell it
// was generated on.
type Facelet struct {
	Home  Face
	Coord Coord
}

// Geometry is the immutable set of facelet positions. Indices into it are
// the canonical indexing used by every permutation in the package.
type Geometry struct {
	facelets [Len]Facelet
	index    map[Coord]int
}

// NewGeometry enumerates the facelets cell by cell. For each face axis and
// sign, the other three axes (in rotation order after the face axis) run
// over the edge values, last axis fastest.
func NewGeometry() *Geometry {
	g := &Geometry{index: make(map[Coord]int, Len)}
	p := 0
	face := Face(0)
	for a := Axis(0); a < Dimensions; a++ {
		for _, b := range [2]int{-Span, Span} {
			for _, i := range edges {
				for _, j := range edges {
					for _, k := range edges {
						var c Coord
						c[a] = b
						c[a.rot(1)] = i
						c[a.rot(2)] = j
						c[a.rot(3)] = k
						g.facelets[p] = Facelet{Home: face, Coord: c}
						g.index[c] = p
						p++
					}
				}
			}
			face++
		}
	}
	return g
}

// Len returns the number of facelets.
func (g *Geometry) Len() int {
	return Len
}

// Facelet returns the facelet at index i.
func (g *Geometry) Facelet(i int) Facelet {
	return g.facelets[i]
}

// Coord returns the rest coordinate of facelet i.
func (g *Geometry) Coord(i int) Coord {
	return g.facelets[i].Coord
}

// Index returns the facelet at coordinate c, if any.
func (g *Geometry) Index(c Coord) (int, bool) {
	i, ok := g.index[c]
	return i, ok
}

// Coords returns the rest coordinates of all facelets.
func (g *Geometry) Coords() [Len]Coord {
	var out [Len]Coord
	for i := range g.facelets {
		out[i] = g.facelets[i].Coord
	}
	return out
}
