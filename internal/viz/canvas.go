package viz

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a grid of braille cells, each carrying one colour. Drawing
// happens in world coordinates: one cell spans CellW x CellH world pixels.
type Canvas struct {
	Width, Height int
	CellW, CellH  float64
	Grid          [][]rune
	Colors        [][]colorful.Color
}

func NewCanvas(w, h int, cellW, cellH float64) *Canvas {
	c := &Canvas{CellW: cellW, CellH: cellH}
	c.Resize(w, h)
	return c
}

// Resize reallocates the grid and clears it.
func (c *Canvas) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c.Width, c.Height = w, h
	c.Grid = make([][]rune, h)
	c.Colors = make([][]colorful.Color, h)
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]colorful.Color, w)
	}
	c.Clear()
}

// World is the canvas size in world pixels.
func (c *Canvas) World() (w, h float64) {
	return float64(c.Width) * c.CellW, float64(c.Height) * c.CellH
}

// CellToWorld maps a terminal cell to the world point at its centre.
func (c *Canvas) CellToWorld(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * c.CellW, (float64(row) + 0.5) * c.CellH
}

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Colors[i][j] = colorful.Color{}
		}
	}
}

// FillCircle fills every dot whose centre lies inside the circle. An opaque
// colour inks the dots and recolours their cells; a translucent one only
// tints cells already inked.
func (c *Canvas) FillCircle(cx, cy, r float64, col color.Color) {
	if r <= 0 || c.Width == 0 || c.Height == 0 {
		return
	}
	tint, alpha := toColorful(col)
	dotW, dotH := c.CellW/2, c.CellH/4

	x0 := int(math.Floor((cx - r) / dotW))
	x1 := int(math.Ceil((cx + r) / dotW))
	y0 := int(math.Floor((cy - r) / dotH))
	y1 := int(math.Ceil((cy + r) / dotH))

	tinted := make(map[[2]int]bool)
	for py := max(y0, 0); py <= min(y1, c.Height*4-1); py++ {
		for px := max(x0, 0); px <= min(x1, c.Width*2-1); px++ {
			dx := (float64(px)+0.5)*dotW - cx
			dy := (float64(py)+0.5)*dotH - cy
			if dx*dx+dy*dy > r*r {
				continue
			}
			row, cell := py/4, px/2
			if alpha >= 1 {
				c.Set(px, py)
				c.Colors[row][cell] = tint
				continue
			}
			key := [2]int{row, cell}
			if tinted[key] || c.Grid[row][cell] == blank {
				continue
			}
			tinted[key] = true
			c.Colors[row][cell] = c.Colors[row][cell].BlendRgb(tint, alpha)
		}
	}
}

func toColorful(col color.Color) (colorful.Color, float64) {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	return colorful.Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
	}, float64(n.A) / 255
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render returns the canvas with each run of same-coloured cells styled.
func (c *Canvas) Render() string {
	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && sameInk(c, i, j, start) {
				continue
			}
			run := string(row[start:j])
			if row[start] == blank {
				b.WriteString(run)
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Colors[i][start].Hex())).Render(run))
			}
			start = j
		}
		if i < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func sameInk(c *Canvas, row, a, b int) bool {
	blankA, blankB := c.Grid[row][a] == blank, c.Grid[row][b] == blank
	if blankA || blankB {
		return blankA && blankB
	}
	return c.Colors[row][a] == c.Colors[row][b]
}
