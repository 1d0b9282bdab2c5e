package constants

import "time"

// PresetValues is a named set of round parameters
type PresetValues struct {
	Name                   string
	Description            string
	WinScore               float64
	PointsPerClick         float64
	DecayPerTick           float64
	TickIntervalMs         int
	RestartCooldownSeconds float64
}

// Presets are the built-in variants, DefaultPreset first
var Presets = []PresetValues{
	{
		Name:                   "portal",
		Description:            "portal lift: 60 to win, ppc 6, 5ms ticks",
		WinScore:               DefaultWinScore,
		PointsPerClick:         DefaultPointsPerClick,
		DecayPerTick:           DefaultDecayPerTick,
		TickIntervalMs:         DefaultTickIntervalMs,
		RestartCooldownSeconds: DefaultRestartCooldownSeconds,
	},
	{
		Name:                   "classic",
		Description:            "slower drain, longer climb",
		WinScore:               100,
		PointsPerClick:         5,
		DecayPerTick:           0.05,
		TickIntervalMs:         8,
		RestartCooldownSeconds: DefaultRestartCooldownSeconds,
	},
	{
		Name:                   "mobile",
		Description:            "small increments for touch screens",
		WinScore:               DefaultWinScore,
		PointsPerClick:         3,
		DecayPerTick:           DefaultDecayPerTick,
		TickIntervalMs:         DefaultTickIntervalMs,
		RestartCooldownSeconds: 3,
	},
	{
		Name:                   "endurance",
		Description:            "long gauge, steady drain",
		WinScore:               300,
		PointsPerClick:         4,
		DecayPerTick:           0.08,
		TickIntervalMs:         6,
		RestartCooldownSeconds: 8,
	},
	{
		Name:                   "blitz",
		Description:            "fastest clock, heavy drain",
		WinScore:               DefaultWinScore,
		PointsPerClick:         6,
		DecayPerTick:           0.15,
		TickIntervalMs:         MinTickIntervalMs,
		RestartCooldownSeconds: 2,
	},
	{
		Name:                   "zen",
		Description:            "no drain, no cooldown",
		WinScore:               DefaultWinScore,
		PointsPerClick:         2,
		DecayPerTick:           0,
		TickIntervalMs:         MaxTickIntervalMs,
		RestartCooldownSeconds: 0,
	},
}

// Preset file and watcher settings
const (
	// PresetWatchInterval is the poll period of the preset file watcher
	PresetWatchInterval = 500 * time.Millisecond
)
