package metrics

import "github.com/san-kum/ballfield/internal/field"

// KineticEnergy is the mean total kinetic energy per frame.
type KineticEnergy struct {
	name    string
	samples int
	total   float64
}

func NewKineticEnergy() *KineticEnergy {
	return &KineticEnergy{name: "kinetic_energy"}
}

func (e *KineticEnergy) Name() string { return e.name }

func (e *KineticEnergy) Observe(bodies []field.Body, _ field.StepStats, _ uint64) {
	for i := range bodies {
		e.total += bodies[i].KineticEnergy()
	}
	e.samples++
}

func (e *KineticEnergy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

func (e *KineticEnergy) Reset() {
	e.total = 0
	e.samples = 0
}

// PeakSpeed is the highest body speed seen, dragged bodies included.
type PeakSpeed struct {
	name string
	peak float64
}

func NewPeakSpeed() *PeakSpeed {
	return &PeakSpeed{name: "peak_speed"}
}

func (p *PeakSpeed) Name() string { return p.name }

func (p *PeakSpeed) Observe(bodies []field.Body, _ field.StepStats, _ uint64) {
	for i := range bodies {
		if s := bodies[i].Speed(); s > p.peak {
			p.peak = s
		}
	}
}

func (p *PeakSpeed) Value() float64 { return p.peak }
func (p *PeakSpeed) Reset()         { p.peak = 0 }
