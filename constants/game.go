package constants

import "time"

// Default round parameters, the portal lift variant
const (
	// DefaultWinScore is the gauge value that wins a round
	DefaultWinScore = 60.0

	// DefaultPointsPerClick is added to the gauge on every accepted click (win score / 10)
	DefaultPointsPerClick = DefaultWinScore / 10

	// DefaultDecayPerTick is drained from the gauge on every clock tick
	DefaultDecayPerTick = 0.1

	// DefaultTickIntervalMs is the clock tick interval, also shown as "difficulty"
	DefaultTickIntervalMs = 5

	// DefaultRestartCooldownSeconds is the wait after a win before a click may restart
	DefaultRestartCooldownSeconds = 5.0

	// DefaultSmoothingFactor is the per-redraw interpolation factor of the displayed score
	DefaultSmoothingFactor = 0.2
)

// Slider ranges accepted from the presentation layer
const (
	MinTickIntervalMs = 1
	MaxTickIntervalMs = 10

	MinPointsPerClick = 1.0
	MaxPointsPerClick = 500.0

	// MaxWinScore bounds preset files
	MaxWinScore = 100000.0

	// MaxRestartCooldownSeconds bounds preset files
	MaxRestartCooldownSeconds = 600.0
)

// Smoothing
const (
	// SmoothingSnapEpsilon is the distance under which the displayed score snaps to its target
	SmoothingSnapEpsilon = 0.005
)

// Rating constants; each factor is averaged into the end-of-round rating
const (
	// RatingTimeNumerator rewards short rounds: factor = numerator / elapsed seconds
	RatingTimeNumerator = 1000.0

	// RatingClickMultiplier rewards more clicks: factor = multiplier * clicks
	RatingClickMultiplier = 1000.0

	// RatingDifficultyNumerator rewards fast ticks: factor = numerator / tick interval ms
	RatingDifficultyNumerator = 1000.0

	// RatingScoreValueNumerator rewards small increments: factor = numerator / points per click
	RatingScoreValueNumerator = 100000.0

	// RatingMinElapsed floors the elapsed time so an instant win stays finite
	RatingMinElapsed = time.Millisecond
)

// DefaultPreset is used when no preset is selected
const DefaultPreset = "portal"
