package constants

// Text published to the presentation layer
const (
	TextIdleMessage  = "tap the screen to start"
	TextIdleHeading  = "difficulty: %d - ppc: %s"
	TextActiveScore  = "%.1f"
	TextActiveMsg    = "score: %.1f - click: %d"
	TextWinMessage   = "YOU WIN 🎉!\nScore: %d"
	TextWinScore     = "WIN %s"
	TextWinHeading   = "Time: %.2fs - Clicks: %d"
	TextZeroScore    = "0"
	TextTitle        = "PORTAL LIFT"
	TextSeries       = "BLITZ SERIES"
	TextControlsHelp = "click: lift  r: reset  +/-: difficulty  [/]: ppc  q: quit"
)

// Terminal layout
const (
	// PowerbarWidth is the gauge column width in cells
	PowerbarWidth = 3

	// PowerbarMargin is the gap between screen edge and gauge
	PowerbarMargin = 2

	// LiftWidth is the lift car width in cells
	LiftWidth = 14

	// LiftHeight is the lift car height in cells
	LiftHeight = 4

	// LiftTravel is the fraction of the shaft the lift climbs at a full gauge
	LiftTravel = 0.8

	// HeaderRows is the rows reserved at the top for title and texts
	HeaderRows = 5
)
