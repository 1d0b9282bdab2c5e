package events

import (
	"time"

	"github.com/google/uuid"
)

// ClickPayload carries the pointer position of an accepted click
// Coordinates are passed through for cosmetic consumers only
type ClickPayload struct {
	X, Y   int
	Score  float64
	Clicks int
}

// WinPayload describes a completed round
type WinPayload struct {
	RoundID uuid.UUID
	Message string
	Rating  int
	Elapsed time.Duration
	Clicks  int
}

// ResetReason names what started a new round
type ResetReason string

const (
	ResetExplicit   ResetReason = "reset"
	ResetRestart    ResetReason = "restart"
	ResetDifficulty ResetReason = "difficulty"
	ResetPoints     ResetReason = "points_per_click"
	ResetConfigure  ResetReason = "configure"
)

// ResetPayload identifies the new round
type ResetPayload struct {
	RoundID uuid.UUID
	Reason  ResetReason
}

// ConfigChangePayload carries the round parameters now in effect
type ConfigChangePayload struct {
	TickIntervalMs int
	PointsPerClick float64
	WinScore       float64
	DecayPerTick   float64
	Reason         ResetReason
}
