package engine

import (
	"math"

	"github.com/lixenwraith/portal-lift/constants"
)

// Reading is the gauge projection of a raw score
type Reading struct {
	Percentile float64 // score / winScore clamped to [0, 1]
	Eased      float64 // EaseOut(Percentile)
	Displayed  float64 // Eased * winScore, target of the on-screen score
}

// Gauge is the pair of numeric signals published for gauge rendering
type Gauge struct {
	Fill       float64 // Eased fill percentage, 0-100
	Percentile int     // Rounded eased percentile, 0-100, drives the lift offset
}

// EaseOut is the quadratic ease-out t*(2-t) on [0, 1]
func EaseOut(t float64) float64 {
	return t * (2 - t)
}

// Transform maps a raw score onto the gauge
func Transform(score, winScore float64) Reading {
	if winScore <= 0 {
		return Reading{}
	}
	p := clamp01(score / winScore)
	e := EaseOut(p)
	return Reading{
		Percentile: p,
		Eased:      e,
		Displayed:  e * winScore,
	}
}

// Gauge returns the published signals for this reading
func (r Reading) Gauge() Gauge {
	return Gauge{
		Fill:       r.Eased * 100,
		Percentile: int(math.Round(r.Eased * 100)),
	}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Smoother advances the displayed score toward its target once per redraw
// Law: displayed += (target - displayed) * factor, snapping within SmoothingSnapEpsilon
type Smoother struct {
	Factor float64
	Max    float64
	value  float64
}

// NewSmoother creates a smoother bounded to [0, max]
func NewSmoother(factor, max float64) *Smoother {
	return &Smoother{Factor: factor, Max: max}
}

// Step advances one redraw toward target and returns the new displayed value
func (s *Smoother) Step(target float64) float64 {
	diff := target - s.value
	if math.Abs(diff) < constants.SmoothingSnapEpsilon {
		s.value = target
	} else {
		s.value += diff * s.Factor
	}
	s.value = math.Max(0, math.Min(s.Max, s.value))
	return s.value
}

// Snap jumps to v, clamped to [0, max]
func (s *Smoother) Snap(v float64) {
	s.value = math.Max(0, math.Min(s.Max, v))
}

// Value returns the current displayed value
func (s *Smoother) Value() float64 {
	return s.value
}
