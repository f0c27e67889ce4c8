package field

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultPaletteHex is the slate, sky and indigo set used for the login
// screen background.
var DefaultPaletteHex = []string{
	"#1e293b", "#334155", "#475569", "#94a3b8", "#0ea5e9", "#6366f1",
}

// HighlightColor is the translucent white of the shine drawn on every body.
var HighlightColor = color.NRGBA{R: 255, G: 255, B: 255, A: 26}

// Palette maps a body's colour index to a colour.
type Palette []colorful.Color

func ParsePalette(hex []string) (Palette, error) {
	if len(hex) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrBadPalette)
	}
	pal := make(Palette, len(hex))
	for i, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d %q: %v", ErrBadPalette, i, h, err)
		}
		pal[i] = c
	}
	return pal, nil
}

// MustParsePalette is ParsePalette for package-level literals.
func MustParsePalette(hex []string) Palette {
	pal, err := ParsePalette(hex)
	if err != nil {
		panic(err)
	}
	return pal
}

// At wraps idx into the palette so a body created against a larger palette
// still renders with a smaller one.
func (p Palette) At(idx int) colorful.Color {
	if len(p) == 0 {
		return colorful.Color{}
	}
	if idx < 0 {
		idx = -idx
	}
	return p[idx%len(p)]
}

func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}
