package field

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// offscreen keeps the pointer out of repulsion range until it first moves.
var offscreen = r2.Vec{X: -1000, Y: -1000}

const noBody = -1

// Pointer is the single pointer driving repulsion and drag.
type Pointer struct {
	Pos  r2.Vec
	Prev r2.Vec
	Down bool

	dragged int
	tracked bool
}

// Dragged returns the index of the body under drag.
func (p Pointer) Dragged() (int, bool) {
	return p.dragged, p.dragged != noBody
}

// StepStats summarises what happened during one frame.
type StepStats struct {
	Collisions  int
	WallBounces int
}

// Field owns the bodies, the pointer and the viewport for the lifetime of
// the hosting screen.
type Field struct {
	params  Params
	palette Palette
	rng     *rand.Rand

	bodies  []Body
	pointer Pointer
	width   float64
	height  float64
	frame   uint64
}

func New(p Params, seed int64) (*Field, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	pal, err := ParsePalette(p.Palette)
	if err != nil {
		return nil, err
	}
	return &Field{
		params:  p,
		palette: pal,
		rng:     rand.New(rand.NewSource(seed)),
		pointer: Pointer{Pos: offscreen, Prev: offscreen, dragged: noBody},
	}, nil
}

func (f *Field) Params() Params   { return f.params }
func (f *Field) Palette() Palette { return f.palette }
func (f *Field) Frame() uint64    { return f.frame }
func (f *Field) Pointer() Pointer { return f.pointer }
func (f *Field) Len() int         { return len(f.bodies) }

func (f *Field) Bounds() (w, h float64) { return f.width, f.height }

func (f *Field) Dragged() (int, bool) { return f.pointer.Dragged() }

// Bodies returns a copy of the bodies in creation order.
func (f *Field) Bodies() []Body {
	out := make([]Body, len(f.bodies))
	copy(out, f.bodies)
	return out
}

// Resize updates the simulation bounds. The first call with a usable
// viewport populates the field; later calls never recreate bodies.
func (f *Field) Resize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	f.width, f.height = w, h
	if len(f.bodies) == 0 && f.params.Count > 0 {
		f.populate()
	}
}

func (f *Field) populate() {
	p := f.params
	f.bodies = make([]Body, p.Count)
	for i := range f.bodies {
		r := f.rng.Float64()*(p.MaxRadius-p.MinRadius) + p.MinRadius
		pos := r2.Vec{
			X: spawnAxis(f.rng, r, f.width),
			Y: spawnAxis(f.rng, r, f.height),
		}
		vel := r2.Vec{
			X: (f.rng.Float64() - 0.5) * 2 * p.InitialSpeed,
			Y: (f.rng.Float64() - 0.5) * 2 * p.InitialSpeed,
		}
		f.bodies[i] = NewBody(pos, vel, r, f.rng.Intn(len(f.palette)))
	}
}

func spawnAxis(rng *rand.Rand, r, limit float64) float64 {
	if limit < 2*r {
		return limit / 2
	}
	return rng.Float64()*(limit-2*r) + r
}

// Press hit-tests bodies in creation order. The first body containing
// (x, y) becomes the dragged body. It reports whether a drag began.
func (f *Field) Press(x, y float64) bool {
	f.setPointer(x, y)
	f.pointer.Down = true
	if _, ok := f.pointer.Dragged(); ok {
		return false
	}
	for i := range f.bodies {
		if f.bodies[i].Contains(f.pointer.Pos) {
			f.pointer.dragged = i
			f.bodies[i].dragging = true
			return true
		}
	}
	return false
}

func (f *Field) Move(x, y float64) {
	f.setPointer(x, y)
}

// Release ends any drag. The body keeps the throw velocity of its last
// dragged frame.
func (f *Field) Release() {
	if i, ok := f.pointer.Dragged(); ok {
		f.bodies[i].dragging = false
	}
	f.pointer.dragged = noBody
	f.pointer.Down = false
}

func (f *Field) setPointer(x, y float64) {
	f.pointer.Pos = r2.Vec{X: x, Y: y}
	if !f.pointer.tracked {
		// no movement history yet; a first press must not fling from offscreen
		f.pointer.Prev = f.pointer.Pos
		f.pointer.tracked = true
	}
}

// Step advances the simulation by one frame.
func (f *Field) Step() StepStats {
	var st StepStats

	for i := range f.bodies {
		b := &f.bodies[i]
		if b.dragging {
			continue
		}
		f.wander(b)
		clampSpeed(b, f.params.MaxSpeed)
		f.repel(b)
		b.Pos = r2.Add(b.Pos, b.Vel)
		st.WallBounces += f.bounce(b)
	}

	st.Collisions = collideAll(f.bodies, f.params.Restitution)

	for i := range f.bodies {
		if b := &f.bodies[i]; !b.dragging {
			b.Pos.X = clampAxis(b.Pos.X, b.radius, f.width)
			b.Pos.Y = clampAxis(b.Pos.Y, b.radius, f.height)
		}
	}

	if i, ok := f.pointer.Dragged(); ok {
		b := &f.bodies[i]
		b.Pos = f.pointer.Pos
		b.Vel = r2.Scale(f.params.ThrowScale, r2.Sub(f.pointer.Pos, f.pointer.Prev))
	}

	f.pointer.Prev = f.pointer.Pos
	f.frame++
	return st
}

func (f *Field) wander(b *Body) {
	if f.params.Wander == 0 {
		return
	}
	b.Vel.X += (f.rng.Float64() - 0.5) * f.params.Wander
	b.Vel.Y += (f.rng.Float64() - 0.5) * f.params.Wander
}

func clampSpeed(b *Body, limit float64) {
	if speed := r2.Norm(b.Vel); speed > limit {
		b.Vel = r2.Scale(limit/speed, b.Vel)
	}
}

func (f *Field) repel(b *Body) {
	radius := f.params.RepulsionRadius
	d := r2.Sub(b.Pos, f.pointer.Pos)
	dist := r2.Norm(d)
	if dist == 0 || dist >= radius {
		return
	}
	force := (radius - dist) / radius * f.params.RepulsionStrength
	b.Vel = r2.Add(b.Vel, r2.Scale(force/dist, d))
}

func (f *Field) bounce(b *Body) int {
	n := 0
	if bounceAxis(&b.Pos.X, &b.Vel.X, b.radius, f.width, f.params.Bounce) {
		n++
	}
	if bounceAxis(&b.Pos.Y, &b.Vel.Y, b.radius, f.height, f.params.Bounce) {
		n++
	}
	return n
}

func bounceAxis(pos, vel *float64, r, limit, bounce float64) bool {
	switch {
	case limit < 2*r:
		*pos = limit / 2
		return false
	case *pos+r > limit:
		*pos = limit - r
	case *pos-r < 0:
		*pos = r
	default:
		return false
	}
	*vel *= -bounce
	return true
}

func clampAxis(pos, r, limit float64) float64 {
	if limit < 2*r {
		return limit / 2
	}
	return math.Max(r, math.Min(limit-r, pos))
}

// KineticEnergy is the total kinetic energy of all bodies.
func (f *Field) KineticEnergy() float64 {
	e := 0.0
	for i := range f.bodies {
		e += f.bodies[i].KineticEnergy()
	}
	return e
}

// Valid reports whether every position and velocity is finite.
func (f *Field) Valid() bool {
	for i := range f.bodies {
		if !f.bodies[i].valid() {
			return false
		}
	}
	return true
}
