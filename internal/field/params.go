package field

import "fmt"

const (
	DefaultCount             = 12
	DefaultMinRadius         = 20.0
	DefaultMaxRadius         = 50.0
	DefaultInitialSpeed      = 1.0
	DefaultWander            = 0.05
	DefaultMaxSpeed          = 3.0
	DefaultRepulsionRadius   = 200.0
	DefaultRepulsionStrength = 0.5
	DefaultBounce            = 0.9
	DefaultRestitution       = 0.9
	DefaultThrowScale        = 1.5
)

// Params holds the constants of the simulation. Lengths are in viewport
// pixels and velocities in pixels per frame.
type Params struct {
	Count             int
	MinRadius         float64
	MaxRadius         float64
	InitialSpeed      float64
	Wander            float64
	MaxSpeed          float64
	RepulsionRadius   float64
	RepulsionStrength float64
	Bounce            float64
	Restitution       float64
	ThrowScale        float64
	Palette           []string
}

func DefaultParams() Params {
	return Params{
		Count:             DefaultCount,
		MinRadius:         DefaultMinRadius,
		MaxRadius:         DefaultMaxRadius,
		InitialSpeed:      DefaultInitialSpeed,
		Wander:            DefaultWander,
		MaxSpeed:          DefaultMaxSpeed,
		RepulsionRadius:   DefaultRepulsionRadius,
		RepulsionStrength: DefaultRepulsionStrength,
		Bounce:            DefaultBounce,
		Restitution:       DefaultRestitution,
		ThrowScale:        DefaultThrowScale,
		Palette:           append([]string(nil), DefaultPaletteHex...),
	}
}

// Validate reports the first parameter outside its valid range.
func (p Params) Validate() error {
	switch {
	case p.Count < 0:
		return fmt.Errorf("%w: count %d", ErrParameterBounds, p.Count)
	case p.MinRadius <= 0:
		return fmt.Errorf("%w: min radius %g must be positive", ErrParameterBounds, p.MinRadius)
	case p.MaxRadius < p.MinRadius:
		return fmt.Errorf("%w: max radius %g below min radius %g", ErrParameterBounds, p.MaxRadius, p.MinRadius)
	case p.InitialSpeed < 0:
		return fmt.Errorf("%w: initial speed %g", ErrParameterBounds, p.InitialSpeed)
	case p.Wander < 0:
		return fmt.Errorf("%w: wander %g", ErrParameterBounds, p.Wander)
	case p.MaxSpeed <= 0:
		return fmt.Errorf("%w: max speed %g must be positive", ErrParameterBounds, p.MaxSpeed)
	case p.RepulsionRadius < 0 || p.RepulsionStrength < 0:
		return fmt.Errorf("%w: repulsion radius %g strength %g", ErrParameterBounds, p.RepulsionRadius, p.RepulsionStrength)
	case p.Bounce < 0 || p.Bounce > 1:
		return fmt.Errorf("%w: bounce %g not in [0, 1]", ErrParameterBounds, p.Bounce)
	case p.Restitution < 0 || p.Restitution > 1:
		return fmt.Errorf("%w: restitution %g not in [0, 1]", ErrParameterBounds, p.Restitution)
	case p.ThrowScale < 0:
		return fmt.Errorf("%w: throw scale %g", ErrParameterBounds, p.ThrowScale)
	}
	_, err := ParsePalette(p.Palette)
	return err
}
