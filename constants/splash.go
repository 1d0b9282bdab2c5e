package constants

import "time"

// Click popup ("+1") animation
const (
	// PopupDelay mirrors the short hold before the popup starts moving
	PopupDelay = 100 * time.Millisecond

	// PopupDuration is the popup lifetime after which it removes itself
	PopupDuration = 1500 * time.Millisecond

	// PopupMinRise and PopupRiseRange bound the random rise in cells
	PopupMinRise   = 3.0
	PopupRiseRange = 4.0

	// PopupText is drawn at the click position
	PopupText = "+1"
)

// Falling gift animation, expressed in cells and frames
const (
	// FallerGravity is added to vertical velocity every frame
	FallerGravity = 0.04

	// FallerMinSpeed and FallerSpeedRange bound the random launch speed
	FallerMinSpeed   = 0.3
	FallerSpeedRange = 1.2

	// FallerAspect compensates for terminal cells being twice as tall as wide
	FallerAspect = 2.0

	// FallerGlyph is the gift sprite
	FallerGlyph = '🎁'

	// FallerFallbackGlyph is used where wide runes are unavailable
	FallerFallbackGlyph = '*'
)
