package automation

import (
	"fmt"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ballfield/internal/field"
)

type Action string

const (
	Press   Action = "press"
	Move    Action = "move"
	Release Action = "release"
)

// Event is a pointer event applied just before the given frame is stepped.
type Event struct {
	Frame  uint64  `yaml:"frame"`
	Action Action  `yaml:"action"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
}

// Scenario is a scripted pointer sequence.
type Scenario struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Events      []Event `yaml:"events"`

	next int
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := sc.prepare(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &sc, nil
}

func (s *Scenario) prepare() error {
	for i, ev := range s.Events {
		switch ev.Action {
		case Press, Move, Release:
		default:
			return fmt.Errorf("event %d: unknown action %q", i, ev.Action)
		}
	}
	sort.SliceStable(s.Events, func(i, j int) bool { return s.Events[i].Frame < s.Events[j].Frame })
	s.next = 0
	return nil
}

// Apply feeds every event scheduled at or before frame that has not been
// applied yet.
func (s *Scenario) Apply(f *field.Field, frame uint64) {
	for s.next < len(s.Events) && s.Events[s.next].Frame <= frame {
		ev := s.Events[s.next]
		switch ev.Action {
		case Press:
			f.Press(ev.X, ev.Y)
		case Move:
			f.Move(ev.X, ev.Y)
		case Release:
			f.Release()
		}
		s.next++
	}
}

// Rewind makes the scenario replayable from frame zero.
func (s *Scenario) Rewind() { s.next = 0 }

// Builtin returns one of the bundled scenarios sized to a w x h viewport.
func Builtin(name string, w, h float64) (*Scenario, error) {
	var sc *Scenario
	switch name {
	case "throw":
		sc = throwScenario(w, h)
	case "sweep":
		sc = sweepScenario(w, h)
	default:
		return nil, fmt.Errorf("unknown scenario: %s (available: %v)", name, BuiltinNames())
	}
	if err := sc.prepare(); err != nil {
		return nil, err
	}
	return sc, nil
}

func BuiltinNames() []string { return []string{"sweep", "throw"} }

// Resolve treats name as a built-in scenario first, then as a file path.
func Resolve(name string, w, h float64) (*Scenario, error) {
	for _, b := range BuiltinNames() {
		if b == name {
			return Builtin(name, w, h)
		}
	}
	return LoadScenario(name)
}

// throwScenario grabs whatever sits at the centre and flings it to the right.
func throwScenario(w, h float64) *Scenario {
	cx, cy := w/2, h/2
	sc := &Scenario{Name: "throw", Description: "press at the centre, drag right, release"}
	sc.Events = append(sc.Events, Event{Frame: 30, Action: Move, X: cx, Y: cy})
	sc.Events = append(sc.Events, Event{Frame: 31, Action: Press, X: cx, Y: cy})
	for i := 1; i <= 10; i++ {
		sc.Events = append(sc.Events, Event{Frame: uint64(31 + i), Action: Move, X: cx + float64(i)*6, Y: cy - float64(i)*2})
	}
	sc.Events = append(sc.Events, Event{Frame: 42, Action: Release})
	return sc
}

// sweepScenario circles the pointer around the viewport to exercise repulsion.
func sweepScenario(w, h float64) *Scenario {
	sc := &Scenario{Name: "sweep", Description: "pointer orbits the centre without pressing"}
	r := math.Min(w, h) / 3
	for i := 0; i < 360; i += 3 {
		a := float64(i) * math.Pi / 180
		sc.Events = append(sc.Events, Event{
			Frame:  uint64(i),
			Action: Move,
			X:      w/2 + r*math.Cos(a),
			Y:      h/2 + r*math.Sin(a),
		})
	}
	return sc
}
