package field

import "image/color"

// Surface is a drawable target. Coordinates are in viewport pixels.
type Surface interface {
	FillCircle(cx, cy, r float64, c color.Color)
}

// Draw renders every body with the given palette, or the field's own
// palette when pal is empty.
func (f *Field) Draw(s Surface, pal Palette) {
	if len(pal) == 0 {
		pal = f.palette
	}
	DrawBodies(s, f.bodies, pal)
}

// DrawBodies renders bodies in order: a filled circle in the body's colour
// followed by its highlight.
func DrawBodies(s Surface, bodies []Body, pal Palette) {
	for i := range bodies {
		b := &bodies[i]
		s.FillCircle(b.Pos.X, b.Pos.Y, b.radius, pal.At(b.color))
		h, hr := b.Highlight()
		s.FillCircle(h.X, h.Y, hr, HighlightColor)
	}
}
