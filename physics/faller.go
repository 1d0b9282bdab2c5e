package physics

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/portal-lift/constants"
)

// Faller is a gift launched upward from a click that arcs down under gravity
type Faller struct {
	Kinetic
	Glyph rune
}

// NewFaller launches a faller from (x, y) at a random speed and an upward angle
func NewFaller(x, y int, rng *rand.Rand) *Faller {
	speed := constants.FallerMinSpeed + rng.Float64()*constants.FallerSpeedRange
	angle := -rng.Float64() * math.Pi

	return &Faller{
		Kinetic: Kinetic{
			X:    float64(x) + 0.5,
			Y:    float64(y) + 0.5,
			VelX: speed * math.Cos(angle) * constants.FallerAspect,
			VelY: speed * math.Sin(angle),
			// Gravity applied twice per frame
			AccelY: 2 * constants.FallerGravity,
		},
		Glyph: constants.FallerGlyph,
	}
}

// Step advances one frame, returns false once the faller dropped below floorY
func (f *Faller) Step(width, floorY int) bool {
	Integrate(&f.Kinetic, 1)
	if width > 0 {
		ReflectBoundsX(&f.Kinetic, 0, width)
	}
	_, y := GridPos(&f.Kinetic)
	return y <= floorY
}
