package tesseract

import (
	"fmt"
	"strconv"
	"strings"
)

// DrawListSeparator separates entries in a drawing list.
const DrawListSeparator = "|"

// Sprite is one projected facelet: a screen position, a circle radius and
// the color to paint it.
type Sprite struct {
	X, Y   int
	Radius int
	Face   Face

	// Depth and Index are not serialized.
	Depth int
	Index int
}

// String returns the drawing-list entry "x,y,r,COLOR".
func (s Sprite) String() string {
	return strconv.Itoa(s.X) + "," + strconv.Itoa(s.Y) + "," + strconv.Itoa(s.Radius) + "," + s.Face.String()
}

// FormatSprites joins sprites into a drawing list, in the order given.
func FormatSprites(sprites []Sprite) string {
	var b strings.Builder
	for i, s := range sprites {
		if i > 0 {
			b.WriteString(DrawListSeparator)
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// ParseSprites decodes a drawing list. Depth and Index are left zero.
func ParseSprites(list string) ([]Sprite, error) {
	if list == "" {
		return nil, nil
	}

	entries := strings.Split(list, DrawListSeparator)
	sprites := make([]Sprite, 0, len(entries))
	for n, entry := range entries {
		fields := strings.Split(entry, ",")
		if len(fields) != 4 {
			return nil, fmt.Errorf("%w: entry %d: %q", ErrInvalidDrawList, n, entry)
		}
		var nums [3]int
		for i := range nums {
			v, err := strconv.Atoi(fields[i])
			if err != nil {
				return nil, fmt.Errorf("%w: entry %d: %v", ErrInvalidDrawList, n, err)
			}
			nums[i] = v
		}
		face, ok := ParseFace(fields[3])
		if !ok {
			return nil, fmt.Errorf("%w: entry %d: unknown color %q", ErrInvalidDrawList, n, fields[3])
		}
		sprites = append(sprites, Sprite{X: nums[0], Y: nums[1], Radius: nums[2], Face: face})
	}
	return sprites, nil
}
