package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbTitle       = tcell.NewRGBColor(248, 113, 113) // Red 400
	RgbText        = tcell.NewRGBColor(255, 255, 255) // White
	RgbTextDim     = tcell.NewRGBColor(160, 160, 160) // Gray for heading and help
	RgbBackground  = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbWin         = tcell.NewRGBColor(255, 215, 0)   // Gold for win texts
	RgbShaft       = tcell.NewRGBColor(70, 70, 90)    // Lift shaft rails
	RgbLiftCar     = tcell.NewRGBColor(180, 180, 200) // Lift car body
	RgbBarFrame    = tcell.NewRGBColor(255, 255, 255) // Powerbar border
	RgbBarEmpty    = tcell.NewRGBColor(40, 40, 40)    // Powerbar track
	RgbPopup       = tcell.NewRGBColor(255, 255, 255) // "+1" at full opacity
	RgbFallerGlyph = tcell.NewRGBColor(255, 165, 0)   // Fallback gift glyph
)

// GaugeColor returns the powerbar fill color for a fill percentage, green to red
func GaugeColor(fill float64) tcell.Color {
	t := fill / 100
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	r := int32(50 + t*205)
	g := int32(220 - t*170)
	return tcell.NewRGBColor(r, g, 60)
}

// Fade blends c toward the background by 1-opacity
func Fade(c tcell.Color, opacity float64) tcell.Color {
	if opacity >= 1 {
		return c
	}
	if opacity < 0 {
		opacity = 0
	}
	r1, g1, b1 := c.RGB()
	r0, g0, b0 := RgbBackground.RGB()
	mix := func(a, b int32) int32 {
		return b + int32(float64(a-b)*opacity)
	}
	return tcell.NewRGBColor(mix(r1, r0), mix(g1, g0), mix(b1, b0))
}
