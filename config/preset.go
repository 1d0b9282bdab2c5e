package config

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/portal-lift/constants"
	"github.com/lixenwraith/portal-lift/engine"
)

var (
	// ErrUnknownPreset is returned for a preset name that is not built in
	ErrUnknownPreset = errors.New("unknown preset")
	// ErrUnsupportedFormat is returned for a preset file that is neither TOML nor YAML
	ErrUnsupportedFormat = errors.New("unsupported preset format")
	// ErrUnknownKey is returned for a preset file key that maps to no parameter
	ErrUnknownKey = errors.New("unknown preset key")
)

// Preset is a named game configuration
type Preset struct {
	Name        string
	Description string
	Config      engine.Config
}

// Default returns the built-in default preset
func Default() Preset {
	p, _ := Builtin(constants.DefaultPreset)
	return p
}

// Builtin looks up a built-in preset by name
func Builtin(name string) (Preset, error) {
	for _, v := range constants.Presets {
		if v.Name == name {
			return fromValues(v), nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Builtins returns every built-in preset in declaration order
func Builtins() []Preset {
	out := make([]Preset, 0, len(constants.Presets))
	for _, v := range constants.Presets {
		out = append(out, fromValues(v))
	}
	return out
}

// Names returns the built-in preset names
func Names() []string {
	names := make([]string, 0, len(constants.Presets))
	for _, v := range constants.Presets {
		names = append(names, v.Name)
	}
	return names
}

func fromValues(v constants.PresetValues) Preset {
	cfg := engine.DefaultConfig()
	cfg.WinScore = v.WinScore
	cfg.PointsPerClick = v.PointsPerClick
	cfg.DecayPerTick = v.DecayPerTick
	cfg.TickIntervalMs = v.TickIntervalMs
	cfg.RestartCooldownSeconds = v.RestartCooldownSeconds
	return Preset{
		Name:        v.Name,
		Description: v.Description,
		Config:      cfg.Sanitize(engine.DefaultConfig()),
	}
}
