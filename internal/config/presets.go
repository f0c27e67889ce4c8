package config

import "sort"

// Presets are named starting points. "login" reproduces the login screen
// background.
var Presets = map[string]*Config{
	"login": DefaultConfig(),
	"calm": withPhysics(func(p *PhysicsConfig) {
		p.Bodies = 8
		p.MaxSpeed = 1.2
		p.Wander = 0.02
		p.RepulsionStrength = 0.2
	}),
	"lively": withPhysics(func(p *PhysicsConfig) {
		p.MaxSpeed = 6
		p.Wander = 0.15
		p.RepulsionStrength = 1.0
		p.RepulsionRadius = 260
	}),
	"crowded": withPhysics(func(p *PhysicsConfig) {
		p.Bodies = 40
		p.MinRadius = 12
		p.MaxRadius = 30
	}),
	"billiards": withPhysics(func(p *PhysicsConfig) {
		p.Bodies = 16
		p.MinRadius = 24
		p.MaxRadius = 24.5
		p.Wander = 0
		p.InitialSpeed = 2.5
		p.Bounce = 1
		p.Restitution = 1
		p.RepulsionStrength = 0
	}),
}

func withPhysics(mutate func(*PhysicsConfig)) *Config {
	cfg := DefaultConfig()
	mutate(&cfg.Physics)
	return cfg
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	c.Preset = name
	c.Physics.Palette = append([]string(nil), cfg.Physics.Palette...)
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
