package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/portal-lift/constants"
)

// Config holds the round parameters, immutable between resets
type Config struct {
	WinScore               float64
	PointsPerClick         float64
	DecayPerTick           float64
	TickIntervalMs         int
	RestartCooldownSeconds float64
	SmoothingFactor        float64
}

// DefaultConfig returns the portal lift parameters
func DefaultConfig() Config {
	return Config{
		WinScore:               constants.DefaultWinScore,
		PointsPerClick:         constants.DefaultPointsPerClick,
		DecayPerTick:           constants.DefaultDecayPerTick,
		TickIntervalMs:         constants.DefaultTickIntervalMs,
		RestartCooldownSeconds: constants.DefaultRestartCooldownSeconds,
		SmoothingFactor:        constants.DefaultSmoothingFactor,
	}
}

// TickInterval returns the clock period
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// RestartCooldown returns the post-win wait before a click may restart
func (c Config) RestartCooldown() time.Duration {
	return time.Duration(c.RestartCooldownSeconds * float64(time.Second))
}

// Sanitize replaces every invalid field with the matching field of lastGood
// lastGood is assumed valid; DefaultConfig always is
func (c Config) Sanitize(lastGood Config) Config {
	return Config{
		WinScore:               CoerceFloat(c.WinScore, lastGood.WinScore, math.SmallestNonzeroFloat64, constants.MaxWinScore),
		PointsPerClick:         CoerceFloat(c.PointsPerClick, lastGood.PointsPerClick, constants.MinPointsPerClick, constants.MaxPointsPerClick),
		DecayPerTick:           CoerceFloat(c.DecayPerTick, lastGood.DecayPerTick, 0, constants.MaxWinScore),
		TickIntervalMs:         CoerceInt(c.TickIntervalMs, lastGood.TickIntervalMs, constants.MinTickIntervalMs, constants.MaxTickIntervalMs),
		RestartCooldownSeconds: CoerceFloat(c.RestartCooldownSeconds, lastGood.RestartCooldownSeconds, 0, constants.MaxRestartCooldownSeconds),
		SmoothingFactor:        CoerceFloat(c.SmoothingFactor, lastGood.SmoothingFactor, math.SmallestNonzeroFloat64, 1),
	}
}

// Valid reports whether Sanitize would leave the config unchanged
func (c Config) Valid() bool {
	return c.Sanitize(DefaultConfig()) == c
}

// CoerceFloat returns v when it is finite and within [min, max], lastGood otherwise
func CoerceFloat(v, lastGood, min, max float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < min || v > max {
		return lastGood
	}
	return v
}

// CoerceInt returns v when it is within [min, max], lastGood otherwise
func CoerceInt(v, lastGood, min, max int) int {
	if v < min || v > max {
		return lastGood
	}
	return v
}
