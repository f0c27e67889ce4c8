package viz

import (
	"image/color"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

var red = color.NRGBA{R: 255, A: 255}

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1, 8, 16)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(4, 0)

	if c.Grid[0][0] != rune(blank|0x1) {
		t.Errorf("cell 0 = %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != rune(blank|0x80) {
		t.Errorf("cell 1 = %U", c.Grid[0][1])
	}
}

func TestCanvasFillCircle(t *testing.T) {
	c := NewCanvas(10, 5, 8, 16)
	c.FillCircle(40, 40, 20, red)

	// centre cell
	col, row := 5, 2
	if c.Grid[row][col] == blank {
		t.Fatal("centre cell not inked")
	}
	want, _ := colorful.Hex("#ff0000")
	if c.Colors[row][col] != want {
		t.Errorf("colour = %v, want %v", c.Colors[row][col].Hex(), want.Hex())
	}
	if c.Grid[0][0] != blank || c.Grid[4][9] != blank {
		t.Error("far corners should stay blank")
	}
}

func TestCanvasFillCircleClipped(t *testing.T) {
	c := NewCanvas(4, 2, 8, 16)
	c.FillCircle(-10, -10, 1000, red)
	for i := range c.Grid {
		for j := range c.Grid[i] {
			if c.Grid[i][j] != rune(blank|0xff) {
				t.Fatalf("cell (%d,%d) = %U, want full", i, j, c.Grid[i][j])
			}
		}
	}
}

func TestCanvasTranslucentTint(t *testing.T) {
	c := NewCanvas(4, 2, 8, 16)
	// a tint on a blank canvas inks nothing
	c.FillCircle(16, 16, 10, color.NRGBA{R: 255, G: 255, B: 255, A: 26})
	if strings.ContainsFunc(c.String(), func(r rune) bool { return r > blank }) {
		t.Fatal("translucent fill inked dots")
	}

	c.FillCircle(16, 16, 10, red)
	before := c.Colors[1][2]
	dots := c.Grid[1][2]
	c.FillCircle(16, 16, 10, color.NRGBA{R: 255, G: 255, B: 255, A: 26})
	if c.Grid[1][2] != dots {
		t.Error("translucent fill changed dots")
	}
	after := c.Colors[1][2]
	if after == before {
		t.Error("translucent fill did not tint")
	}
	if after.G <= before.G || after.G > 0.2 {
		t.Errorf("tint too strong: %v -> %v", before.Hex(), after.Hex())
	}
}

func TestCanvasWorld(t *testing.T) {
	c := NewCanvas(80, 23, 8, 16)
	w, h := c.World()
	if w != 640 || h != 368 {
		t.Errorf("World() = %v,%v", w, h)
	}
	x, y := c.CellToWorld(0, 0)
	if x != 4 || y != 8 {
		t.Errorf("CellToWorld(0,0) = %v,%v", x, y)
	}
}

func TestCanvasResizeClears(t *testing.T) {
	c := NewCanvas(4, 2, 8, 16)
	c.FillCircle(16, 16, 10, red)
	c.Resize(6, 3)
	if len(c.Grid) != 3 || len(c.Grid[0]) != 6 {
		t.Fatalf("grid %dx%d", len(c.Grid[0]), len(c.Grid))
	}
	if strings.TrimRight(strings.ReplaceAll(c.String(), string(rune(blank)), ""), "\n") != "" {
		t.Error("resize should clear")
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nope").Name != "slate" {
		t.Error("unknown theme should fall back to slate")
	}
	seen := map[string]bool{}
	name := "slate"
	for range Themes {
		seen[name] = true
		if len(GetTheme(name).BallPalette()) == 0 {
			t.Errorf("%s has empty palette", name)
		}
		name = NextTheme(name).Name
	}
	if name != "slate" || len(seen) != len(Themes) {
		t.Errorf("NextTheme did not cycle: %v", seen)
	}
}
