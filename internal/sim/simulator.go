package sim

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/san-kum/ballfield/internal/field"
	"github.com/san-kum/ballfield/internal/loop"
)

type Simulator struct {
	field     *field.Field
	script    Script
	metrics   []Metric
	observers []Observer
	log       *zap.Logger
}

// New wraps f. script may be nil.
func New(f *field.Field, script Script) *Simulator {
	return &Simulator{
		field:     f,
		script:    script,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		log:       zap.NewNop(),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }
func (s *Simulator) Field() *field.Field    { return s.field }

func (s *Simulator) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	s.log = l
}

// Run steps the field cfg.Frames times and records every cfg.RecordEvery
// frames. A positive cfg.FPS paces the frames in real time.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	w, h := s.field.Bounds()
	result := &Result{
		Width:   w,
		Height:  h,
		Frames:  make([]Frame, 0, cfg.Frames/cfg.RecordEvery+1),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}
	for _, b := range s.field.Bodies() {
		result.Radii = append(result.Radii, b.Radius())
		result.Colors = append(result.Colors, b.Color())
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	s.log.Debug("run started",
		zap.Int("frames", cfg.Frames),
		zap.Int("fps", cfg.FPS),
		zap.Int("bodies", s.field.Len()))

	err := s.RunWithCallback(ctx, cfg, func(bodies []field.Body, st field.StepStats, frame uint64) bool {
		result.StepsTaken++
		if frame%uint64(cfg.RecordEvery) == 0 || result.StepsTaken == cfg.Frames {
			result.Frames = append(result.Frames, Frame{
				Index:      frame,
				State:      flatten(bodies),
				Energy:     s.field.KineticEnergy(),
				Collisions: st.Collisions,
				Bounces:    st.WallBounces,
			})
		}
		return true
	})

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	if err != nil {
		result.Errors = append(result.Errors, err)
		s.log.Warn("run stopped early", zap.Int("steps", result.StepsTaken), zap.Error(err))
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		return result, err
	}

	s.log.Debug("run finished", zap.Int("steps", result.StepsTaken))
	return result, nil
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", cfg.Frames)
	}
	if cfg.FPS < 0 {
		return fmt.Errorf("fps must not be negative, got %d", cfg.FPS)
	}
	if cfg.RecordEvery < 1 {
		return fmt.Errorf("record interval must be at least 1, got %d", cfg.RecordEvery)
	}
	return nil
}

// RunWithCallback streams frames to callback; returning false stops the run
// without error.
func (s *Simulator) RunWithCallback(ctx context.Context, cfg Config, callback func([]field.Body, field.StepStats, uint64) bool) error {
	if err := s.validateConfig(cfg); err != nil {
		return err
	}

	var stepErr error
	frame := func(i uint64) bool {
		if i >= uint64(cfg.Frames) {
			return false
		}
		if s.script != nil {
			s.script.Apply(s.field, i)
		}
		st := s.field.Step()
		if !s.field.Valid() {
			stepErr = &SimError{Frame: i, Wrapped: field.ErrInvalidState}
			return false
		}
		bodies := s.field.Bodies()
		for _, m := range s.metrics {
			m.Observe(bodies, st, i)
		}
		for _, obs := range s.observers {
			obs.OnFrame(bodies, st, i)
		}
		return callback(bodies, st, i)
	}

	if cfg.FPS > 0 {
		h := loop.Start(ctx, loop.Interval(cfg.FPS), frame)
		<-h.Done()
		h.Stop()
		if stepErr != nil {
			return stepErr
		}
		return h.Err()
	}

	for i := uint64(0); ; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if !frame(i) {
			return stepErr
		}
	}
}
