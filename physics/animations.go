package physics

import (
	"math/rand"
	"time"
)

// Animations owns the cosmetic sprites spawned by clicks
// Not synchronized: owned by the render loop
type Animations struct {
	rng     *rand.Rand
	fallers []*Faller
	popups  []*Popup
}

// NewAnimations creates an empty set with a seeded random source
func NewAnimations(seed int64) *Animations {
	return &Animations{rng: rand.New(rand.NewSource(seed))}
}

// Spawn adds a faller and a popup at a click position
func (a *Animations) Spawn(x, y int, now time.Time) {
	a.fallers = append(a.fallers, NewFaller(x, y, a.rng))
	a.popups = append(a.popups, NewPopup(x, y, now, a.rng))
}

// Update advances fallers one frame and removes finished sprites in place
func (a *Animations) Update(now time.Time, width, floorY int) {
	live := a.fallers[:0]
	for _, f := range a.fallers {
		if f.Step(width, floorY) {
			live = append(live, f)
		}
	}
	clear(a.fallers[len(live):])
	a.fallers = live

	popups := a.popups[:0]
	for _, p := range a.popups {
		if p.Alive(now) {
			popups = append(popups, p)
		}
	}
	clear(a.popups[len(popups):])
	a.popups = popups
}

// Clear drops every sprite
func (a *Animations) Clear() {
	a.fallers = nil
	a.popups = nil
}

func (a *Animations) Fallers() []*Faller { return a.fallers }
func (a *Animations) Popups() []*Popup   { return a.popups }

// Len returns the number of live sprites
func (a *Animations) Len() int {
	return len(a.fallers) + len(a.popups)
}
