package physics

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/portal-lift/constants"
)

// Popup is the "+1" marker that floats up from a click and fades out
type Popup struct {
	X, Y int
	Rise float64 // Total climb in cells
	Born time.Time
}

// NewPopup creates a popup at (x, y) with a random climb height
func NewPopup(x, y int, now time.Time, rng *rand.Rand) *Popup {
	return &Popup{
		X:    x,
		Y:    y,
		Rise: constants.PopupMinRise + math.Round(rng.Float64()*constants.PopupRiseRange),
		Born: now,
	}
}

// Progress returns the animation progress in [0, 1], zero during the start delay
func (p *Popup) Progress(now time.Time) float64 {
	t := now.Sub(p.Born) - constants.PopupDelay
	if t <= 0 {
		return 0
	}
	if t >= constants.PopupDuration {
		return 1
	}
	return float64(t) / float64(constants.PopupDuration)
}

// Position returns the current cell, climbing with ease-out
func (p *Popup) Position(now time.Time) (x, y int) {
	t := p.Progress(now)
	climb := p.Rise * t * (2 - t)
	return p.X, p.Y - int(math.Round(climb))
}

// Opacity fades from 1 to 0 with ease-in
func (p *Popup) Opacity(now time.Time) float64 {
	t := p.Progress(now)
	return 1 - t*t
}

// Alive reports whether the popup is still shown
func (p *Popup) Alive(now time.Time) bool {
	return now.Sub(p.Born) < constants.PopupDelay+constants.PopupDuration
}
