package render

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/portal-lift/constants"
	"github.com/lixenwraith/portal-lift/physics"
	"github.com/lixenwraith/portal-lift/status"
)

// Renderer draws one frame from the display sink and the cosmetic animations
type Renderer struct {
	screen  tcell.Screen
	display *Display
	anims   *physics.Animations
	session *status.Session

	giftGlyph rune
}

// NewRenderer binds a renderer to a screen, session may be nil
func NewRenderer(screen tcell.Screen, display *Display, anims *physics.Animations, session *status.Session) *Renderer {
	glyph := constants.FallerGlyph
	if !screen.CanDisplay(glyph, false) {
		glyph = constants.FallerFallbackGlyph
	}
	return &Renderer{
		screen:    screen,
		display:   display,
		anims:     anims,
		session:   session,
		giftGlyph: glyph,
	}
}

// Draw renders the complete frame and shows it
func (r *Renderer) Draw(now time.Time) {
	w, h := r.screen.Size()
	bg := tcell.StyleDefault.Background(RgbBackground)
	r.screen.SetStyle(bg)
	r.screen.Clear()

	texts := r.display.Texts()
	layout := ComputeLayout(w, h)

	r.drawShaft(layout, texts.Gauge.Percentile, bg)
	r.drawPowerbar(layout, texts.Gauge.Fill, bg)
	r.drawHeader(w, texts, bg)
	r.drawAnimations(now, bg)
	r.drawText(1, layout.HelpRow, constants.TextControlsHelp, bg.Foreground(RgbTextDim))
	if r.session != nil {
		summary := r.session.Summary()
		r.drawText(max(0, w-runewidth.StringWidth(summary)-2), 0, summary, bg.Foreground(RgbTextDim))
	}

	r.screen.Show()
}

func (r *Renderer) drawHeader(w int, texts Texts, bg tcell.Style) {
	r.drawText(2, 0, constants.TextSeries, bg.Foreground(RgbText))
	r.drawText(2, 1, constants.TextTitle, bg.Foreground(RgbTitle).Bold(true))

	scoreStyle := bg.Foreground(RgbText).Bold(true)
	if strings.HasPrefix(texts.Score, "WIN") {
		scoreStyle = bg.Foreground(RgbWin).Bold(true)
	}
	r.drawCentered(w, 1, texts.Score, scoreStyle)
	r.drawCentered(w, 2, texts.Heading, bg.Foreground(RgbTextDim))

	msgStyle := bg.Foreground(RgbText)
	if strings.Contains(texts.Message, "\n") {
		msgStyle = bg.Foreground(RgbWin).Bold(true)
	}
	for i, line := range strings.Split(texts.Message, "\n") {
		if 3+i >= constants.HeaderRows {
			break
		}
		r.drawCentered(w, 3+i, line, msgStyle)
	}
}

func (r *Renderer) drawPowerbar(l Layout, fill float64, bg tcell.Style) {
	bar := l.Powerbar
	frame := bg.Foreground(RgbBarFrame)

	for y := bar.Y; y <= bar.Bottom(); y++ {
		r.screen.SetContent(bar.X-1, y, '│', nil, frame)
		r.screen.SetContent(bar.X+bar.W, y, '│', nil, frame)
	}
	r.screen.SetContent(bar.X-1, bar.Y-1, '╭', nil, frame)
	r.screen.SetContent(bar.X+bar.W, bar.Y-1, '╮', nil, frame)
	r.screen.SetContent(bar.X-1, bar.Bottom()+1, '╰', nil, frame)
	r.screen.SetContent(bar.X+bar.W, bar.Bottom()+1, '╯', nil, frame)
	for x := bar.X; x < bar.X+bar.W; x++ {
		r.screen.SetContent(x, bar.Y-1, '─', nil, frame)
		r.screen.SetContent(x, bar.Bottom()+1, '─', nil, frame)
	}

	filled := l.FillRows(fill)
	fillStyle := bg.Foreground(GaugeColor(fill))
	emptyStyle := bg.Foreground(RgbBarEmpty)
	for i := 0; i < bar.H; i++ {
		y := bar.Bottom() - i
		ch, style := '░', emptyStyle
		if i < filled {
			ch, style = '█', fillStyle
		}
		for x := bar.X; x < bar.X+bar.W; x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *Renderer) drawShaft(l Layout, percentile int, bg tcell.Style) {
	shaft := l.Shaft
	rail := bg.Foreground(RgbShaft)
	for y := shaft.Y; y <= shaft.Bottom(); y++ {
		r.screen.SetContent(shaft.X, y, '║', nil, rail)
		r.screen.SetContent(shaft.X+shaft.W-1, y, '║', nil, rail)
	}

	car := l.LiftCar(percentile)
	body := bg.Foreground(RgbLiftCar)
	for y := car.Y; y <= car.Bottom(); y++ {
		for x := car.X; x < car.X+car.W; x++ {
			ch := ' '
			switch {
			case y == car.Y || y == car.Bottom():
				ch = '═'
			case x == car.X || x == car.X+car.W-1:
				ch = '│'
			}
			r.screen.SetContent(x, y, ch, nil, body)
		}
	}

	// Cable from the shaft head to the car roof
	for y := shaft.Y; y < car.Y; y++ {
		r.screen.SetContent(car.X+car.W/2, y, '┆', nil, rail)
	}
}

func (r *Renderer) drawAnimations(now time.Time, bg tcell.Style) {
	for _, f := range r.anims.Fallers() {
		x, y := physics.GridPos(&f.Kinetic)
		r.screen.SetContent(x, y, r.giftGlyph, nil, bg.Foreground(RgbFallerGlyph))
	}
	for _, p := range r.anims.Popups() {
		x, y := p.Position(now)
		style := bg.Foreground(Fade(RgbPopup, p.Opacity(now))).Bold(true)
		r.drawText(x, y, constants.PopupText, style)
	}
}

func (r *Renderer) drawCentered(w, y int, text string, style tcell.Style) {
	x := (w - runewidth.StringWidth(text)) / 2
	r.drawText(max(0, x), y, text, style)
}

// drawText writes a single line, advancing by each rune's cell width
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}
