package field

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Body is one simulated ball. Radius, mass and colour are fixed when the
// body is created; mass equals radius so larger balls are heavier.
type Body struct {
	Pos r2.Vec
	Vel r2.Vec

	radius   float64
	mass     float64
	color    int
	dragging bool
}

// NewBody builds a detached body, for restoring recorded frames. It is not
// part of any Field.
func NewBody(pos, vel r2.Vec, radius float64, color int) Body {
	return Body{Pos: pos, Vel: vel, radius: radius, mass: radius, color: color}
}

func (b *Body) Radius() float64 { return b.radius }
func (b *Body) Mass() float64   { return b.mass }
func (b *Body) Color() int      { return b.color }
func (b *Body) Dragging() bool  { return b.dragging }

func (b *Body) Speed() float64 { return r2.Norm(b.Vel) }

func (b *Body) KineticEnergy() float64 {
	return 0.5 * b.mass * r2.Norm2(b.Vel)
}

// Highlight returns the centre and radius of the shine circle, offset
// toward the upper left.
func (b *Body) Highlight() (r2.Vec, float64) {
	off := b.radius * 0.3
	return r2.Vec{X: b.Pos.X - off, Y: b.Pos.Y - off}, b.radius * 0.4
}

// Contains reports whether p lies strictly inside the body.
func (b *Body) Contains(p r2.Vec) bool {
	return r2.Norm(r2.Sub(p, b.Pos)) < b.radius
}

func (b *Body) valid() bool {
	for _, v := range [4]float64{b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
