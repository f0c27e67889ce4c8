package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
)

// surface draws field circles straight into the current raylib frame.
type surface struct{}

func (surface) FillCircle(cx, cy, r float64, c color.Color) {
	rl.DrawCircleV(rl.NewVector2(float32(cx), float32(cy)), float32(r), toRL(c))
}

func toRL(c color.Color) rl.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return rl.NewColor(n.R, n.G, n.B, n.A)
}

func hexColor(s string) color.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.Black
	}
	return c
}
