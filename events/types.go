package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventClick signals an accepted click that raised the gauge
	// Trigger: Controller.Click while the round is live
	// Consumer: popup and faller spawners | Payload: *ClickPayload
	EventClick EventType = iota

	// EventWin signals the round reaching the win score
	// Trigger: Controller tick or click crossing the threshold
	// Consumer: banner, haptic rumble, logging | Payload: *WinPayload
	EventWin

	// EventReset signals a fresh round
	// Trigger: explicit reset, restart click after cooldown, configuration change
	// Consumer: animation layer (clears leftovers) | Payload: *ResetPayload
	EventReset

	// EventConfigChange signals new round parameters took effect
	// Trigger: difficulty slider, points-per-click slider, preset file reload
	// Consumer: logging, heading refresh | Payload: *ConfigChangePayload
	EventConfigChange
)

// GameEvent is a generic event container
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}
