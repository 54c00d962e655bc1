package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aditya-r-m/twisty-tesseract"
)

// canvasExtent bounds the projected coordinates painted on the canvas.
const canvasExtent = 300

// faceColors follows the face order of tesseract.Face.
var faceColors = [tesseract.Faces]lipgloss.Color{
	"#ff3030", // RED
	"#30d030", // GREEN
	"#3070ff", // BLUE
	"#30e0e0", // CYAN
	"#e030e0", // MAGENTA
	"#f0e030", // YELLOW
	"#f0f0f0", // WHITE
	"#9040d0", // PURPLE
}

var faceStyles = func() [tesseract.Faces]lipgloss.Style {
	var styles [tesseract.Faces]lipgloss.Style
	for i, c := range faceColors {
		styles[i] = lipgloss.NewStyle().Foreground(c)
	}
	return styles
}()

type cell struct {
	glyph rune
	face  tesseract.Face
}

// Canvas is a character grid that sprites are painted onto. Terminal cells
// are about twice as tall as wide, so rows cover twice the span of columns.
type Canvas struct {
	width, height int
	cells         []cell
}

// NewCanvas creates an empty canvas of the given size in cells.
func NewCanvas(width, height int) *Canvas {
	width = max(width, 1)
	height = max(height, 1)
	return &Canvas{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
	}
}

// Paint draws sprites in order, so later (nearer) sprites cover earlier ones.
func (c *Canvas) Paint(sprites []tesseract.Sprite) {
	for _, s := range sprites {
		col, row, ok := c.cellAt(s.X, s.Y)
		if !ok {
			continue
		}
		glyph := '•'
		if s.Radius > tesseract.Radius {
			glyph = '●'
		}
		c.cells[row*c.width+col] = cell{glyph: glyph, face: s.Face}
	}
}

// cellAt maps a projected point to a cell. Screen y grows downward.
func (c *Canvas) cellAt(x, y int) (col, row int, ok bool) {
	if x < -canvasExtent || x >= canvasExtent || y < -canvasExtent || y >= canvasExtent {
		return 0, 0, false
	}
	col = (x + canvasExtent) * c.width / (2 * canvasExtent)
	row = (y + canvasExtent) * c.height / (2 * canvasExtent)
	return col, row, true
}

// Count returns the number of painted cells.
func (c *Canvas) Count() int {
	n := 0
	for _, cl := range c.cells {
		if cl.glyph != 0 {
			n++
		}
	}
	return n
}

// String renders the canvas with one style per run of same-colored glyphs.
func (c *Canvas) String() string {
	var b strings.Builder
	for row := 0; row < c.height; row++ {
		line := c.cells[row*c.width : (row+1)*c.width]
		for i := 0; i < len(line); {
			if line[i].glyph == 0 {
				b.WriteByte(' ')
				i++
				continue
			}
			j := i
			var run strings.Builder
			for j < len(line) && line[j].glyph != 0 && line[j].face == line[i].face {
				run.WriteRune(line[j].glyph)
				j++
			}
			b.WriteString(faceStyles[line[i].face].Render(run.String()))
			i = j
		}
		if row < c.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
