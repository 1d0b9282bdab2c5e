package render

import (
	"math"

	"github.com/lixenwraith/portal-lift/constants"
)

// Rect is a cell rectangle, Y grows downward
type Rect struct {
	X, Y, W, H int
}

// Bottom returns the last row inside the rectangle
func (r Rect) Bottom() int { return r.Y + r.H - 1 }

// Layout is the screen geometry for a terminal size
type Layout struct {
	Width, Height int
	Powerbar      Rect // Inner fill area, the frame surrounds it
	Shaft         Rect
	HelpRow       int
	Floor         int
}

// ComputeLayout places the powerbar at the left and the lift shaft in the center
func ComputeLayout(width, height int) Layout {
	l := Layout{Width: width, Height: height, HelpRow: height - 1, Floor: height - 2}

	top := constants.HeaderRows + 1
	bottom := height - 3
	h := bottom - top + 1
	if h < 1 {
		h = 1
	}

	l.Powerbar = Rect{
		X: constants.PowerbarMargin + 1,
		Y: top,
		W: constants.PowerbarWidth,
		H: h,
	}

	sw := constants.LiftWidth + 2
	l.Shaft = Rect{
		X: (width - sw) / 2,
		Y: constants.HeaderRows,
		W: sw,
		H: height - 1 - constants.HeaderRows,
	}
	if l.Shaft.H < constants.LiftHeight {
		l.Shaft.H = constants.LiftHeight
	}
	return l
}

// FillRows returns how many powerbar rows a fill percentage covers
func (l Layout) FillRows(fill float64) int {
	rows := int(math.Round(fill / 100 * float64(l.Powerbar.H)))
	return max(0, min(l.Powerbar.H, rows))
}

// LiftCar returns the car rectangle, raised by the rounded eased percentile
func (l Layout) LiftCar(percentile int) Rect {
	travel := float64(l.Shaft.H-constants.LiftHeight) * constants.LiftTravel
	rise := int(math.Round(travel * float64(max(0, min(100, percentile))) / 100))
	return Rect{
		X: l.Shaft.X + 1,
		Y: l.Shaft.Bottom() - constants.LiftHeight + 1 - rise,
		W: constants.LiftWidth,
		H: constants.LiftHeight,
	}
}
