package config

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/portal-lift/engine"
)

// Format is a preset file encoding
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

// FormatFromPath selects the encoding by file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Preset file keys
const (
	keyName           = "name"
	keyDescription    = "description"
	keyBase           = "base"
	keyWinScore       = "win_score"
	keyPointsPerClick = "points_per_click"
	keyDecayPerTick   = "decay_per_tick"
	keyTickInterval   = "tick_interval_ms"
	keyCooldown       = "restart_cooldown_seconds"
	keySmoothing      = "smoothing_factor"
)

// presetFile is the encoded form written by Save
type presetFile struct {
	Name                   string  `toml:"name" yaml:"name"`
	Description            string  `toml:"description,omitempty" yaml:"description,omitempty"`
	WinScore               float64 `toml:"win_score" yaml:"win_score"`
	PointsPerClick         float64 `toml:"points_per_click" yaml:"points_per_click"`
	DecayPerTick           float64 `toml:"decay_per_tick" yaml:"decay_per_tick"`
	TickIntervalMs         int     `toml:"tick_interval_ms" yaml:"tick_interval_ms"`
	RestartCooldownSeconds float64 `toml:"restart_cooldown_seconds" yaml:"restart_cooldown_seconds"`
	SmoothingFactor        float64 `toml:"smoothing_factor" yaml:"smoothing_factor"`
}

// Load reads a preset file, the name defaults to the file stem
func Load(path string) (Preset, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Preset{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("read preset: %w", err)
	}

	p, err := Decode(data, format)
	if err != nil {
		return Preset{}, fmt.Errorf("preset %s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}

// Decode parses preset data into a sparse override of its base preset
// Keys that are absent keep the base value; values that are not valid numbers
// or fall outside the accepted range keep the base value as well
func Decode(data []byte, format Format) (Preset, error) {
	raw := make(map[string]any)
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return Preset{}, fmt.Errorf("toml parse: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Preset{}, fmt.Errorf("yaml parse: %w", err)
		}
	default:
		return Preset{}, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}

	base := Default()
	if v, ok := raw[keyBase]; ok {
		name, ok := v.(string)
		if !ok {
			return Preset{}, fmt.Errorf("key %q: expected string, got %T", keyBase, v)
		}
		b, err := Builtin(name)
		if err != nil {
			return Preset{}, err
		}
		base = b
	}

	p := Preset{Description: base.Description}
	cfg := base.Config

	for key, v := range raw {
		switch key {
		case keyBase:
		case keyName:
			s, ok := v.(string)
			if !ok {
				return Preset{}, fmt.Errorf("key %q: expected string, got %T", key, v)
			}
			p.Name = s
		case keyDescription:
			s, ok := v.(string)
			if !ok {
				return Preset{}, fmt.Errorf("key %q: expected string, got %T", key, v)
			}
			p.Description = s
		case keyWinScore:
			setFloat(key, v, &cfg.WinScore)
		case keyPointsPerClick:
			setFloat(key, v, &cfg.PointsPerClick)
		case keyDecayPerTick:
			setFloat(key, v, &cfg.DecayPerTick)
		case keyCooldown:
			setFloat(key, v, &cfg.RestartCooldownSeconds)
		case keySmoothing:
			setFloat(key, v, &cfg.SmoothingFactor)
		case keyTickInterval:
			var f float64
			if setFloat(key, v, &f) {
				if f != math.Trunc(f) {
					log.Warn().Str("key", key).Float64("value", f).Msg("Non-integral tick interval ignored")
					continue
				}
				cfg.TickIntervalMs = int(f)
			}
		default:
			return Preset{}, fmt.Errorf("%w: %q", ErrUnknownKey, key)
		}
	}

	p.Config = cfg.Sanitize(base.Config)
	if p.Config != cfg {
		log.Warn().Str("base", base.Name).Msg("Preset values out of range replaced with base values")
	}
	return p, nil
}

// Save writes p to path, encoding chosen by extension
func Save(path string, p Preset) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Encode(p, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write preset: %w", err)
	}
	return nil
}

// Encode renders a complete preset document
func Encode(p Preset, format Format) ([]byte, error) {
	pf := presetFile{
		Name:                   p.Name,
		Description:            p.Description,
		WinScore:               p.Config.WinScore,
		PointsPerClick:         p.Config.PointsPerClick,
		DecayPerTick:           p.Config.DecayPerTick,
		TickIntervalMs:         p.Config.TickIntervalMs,
		RestartCooldownSeconds: p.Config.RestartCooldownSeconds,
		SmoothingFactor:        p.Config.SmoothingFactor,
	}

	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(pf); err != nil {
			return nil, fmt.Errorf("toml encode: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		data, err := yaml.Marshal(pf)
		if err != nil {
			return nil, fmt.Errorf("yaml encode: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
}

// setFloat stores a numeric value into dst, non-numeric input leaves dst unchanged
func setFloat(key string, v any, dst *float64) bool {
	f, ok := toFloat(v)
	if !ok {
		log.Warn().Str("key", key).Interface("value", v).Msg("Non-numeric preset value ignored")
		return false
	}
	*dst = f
	return true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// ApplyTo hands a loaded preset to the controller, which resets the round
func ApplyTo(c *engine.Controller, p Preset) {
	c.Configure(p.Config)
	log.Info().Str("preset", p.Name).Msg("Preset applied")
}
