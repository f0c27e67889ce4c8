package sim

import (
	"fmt"

	"github.com/san-kum/ballfield/internal/field"
)

// Script feeds scripted pointer input before a frame is stepped.
type Script interface {
	Apply(f *field.Field, frame uint64)
}

type Metric interface {
	Name() string
	Observe(bodies []field.Body, st field.StepStats, frame uint64)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(bodies []field.Body, st field.StepStats, frame uint64)
}

type Config struct {
	Frames      int
	FPS         int
	RecordEvery int
}

func DefaultConfig() Config {
	return Config{Frames: 600, RecordEvery: 1}
}

// Frame is one recorded frame. State holds x, y, vx, vy per body.
type Frame struct {
	Index      uint64    `json:"index"`
	State      []float64 `json:"state"`
	Energy     float64   `json:"energy"`
	Collisions int       `json:"collisions"`
	Bounces    int       `json:"bounces"`
}

type Result struct {
	Width, Height float64
	Radii         []float64
	Colors        []int
	Frames        []Frame
	Metrics       map[string]float64
	StepsTaken    int
	Errors        []error
}

// Final returns the last recorded frame.
func (r *Result) Final() (Frame, bool) {
	if len(r.Frames) == 0 {
		return Frame{}, false
	}
	return r.Frames[len(r.Frames)-1], true
}

// SimError wraps a failure with the frame it happened on.
type SimError struct {
	Frame   uint64
	Wrapped error
}

func (e *SimError) Error() string {
	return fmt.Sprintf("frame %d: %v", e.Frame, e.Wrapped)
}

func (e *SimError) Unwrap() error { return e.Wrapped }

func flatten(bodies []field.Body) []float64 {
	state := make([]float64, 0, len(bodies)*4)
	for _, b := range bodies {
		state = append(state, b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y)
	}
	return state
}
