package metrics

import "github.com/san-kum/ballfield/internal/field"

// EventRate averages a per-frame event count.
type EventRate struct {
	name   string
	count  func(field.StepStats) int
	frames int
	events int
}

func (r *EventRate) Name() string { return r.name }

func (r *EventRate) Observe(_ []field.Body, st field.StepStats, _ uint64) {
	r.events += r.count(st)
	r.frames++
}

func (r *EventRate) Value() float64 {
	if r.frames == 0 {
		return 0
	}
	return float64(r.events) / float64(r.frames)
}

func (r *EventRate) Reset() {
	r.frames = 0
	r.events = 0
}

// NewCollisionRate counts resolved body collisions per frame.
func NewCollisionRate() *EventRate {
	return &EventRate{name: "collision_rate", count: func(st field.StepStats) int { return st.Collisions }}
}

// NewWallBounceRate counts wall bounces per frame.
func NewWallBounceRate() *EventRate {
	return &EventRate{name: "wall_bounce_rate", count: func(st field.StepStats) int { return st.WallBounces }}
}
