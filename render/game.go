package render

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/portal-lift/constants"
	"github.com/lixenwraith/portal-lift/core"
	"github.com/lixenwraith/portal-lift/engine"
	"github.com/lixenwraith/portal-lift/events"
	"github.com/lixenwraith/portal-lift/physics"
	"github.com/lixenwraith/portal-lift/status"
)

// Game runs the terminal front end: input, event dispatch and frame rendering
type Game struct {
	screen     tcell.Screen
	controller *engine.Controller
	router     *events.Router
	display    *Display
	anims      *physics.Animations
	session    *status.Session
	renderer   *Renderer
	input      Input
	time       engine.TimeProvider
}

// NewGame wires the front end; the router receives a click handler spawning animations
// and the session statistics shown in the header
func NewGame(screen tcell.Screen, controller *engine.Controller, display *Display, router *events.Router, tp engine.TimeProvider) *Game {
	if tp == nil {
		tp = engine.NewMonotonicTimeProvider()
	}
	anims := physics.NewAnimations(tp.Now().UnixNano())
	session := status.NewSession()

	g := &Game{
		screen:     screen,
		controller: controller,
		router:     router,
		display:    display,
		anims:      anims,
		session:    session,
		renderer:   NewRenderer(screen, display, anims, session),
		time:       tp,
	}

	router.Register(session)

	router.Register(events.HandlerFunc{
		Types: []events.EventType{events.EventClick},
		Fn: func(ev events.GameEvent) {
			if p, ok := ev.Payload.(*events.ClickPayload); ok {
				g.anims.Spawn(p.X, p.Y, ev.Timestamp)
			}
		},
	})
	return g
}

// Run polls terminal events and renders frames until quit
func (g *Game) Run() {
	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	core.Go(func() { g.pollEvents(eventChan, done) })

	g.Frame()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !g.HandleInput(ev) {
				return
			}
		case <-ticker.C:
			g.Frame()
		}
	}
}

// pollEvents forwards terminal events until the screen finalizes or done closes
func (g *Game) pollEvents(out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			close(out)
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// Frame dispatches pending events, advances animations and the displayed score, then draws
func (g *Game) Frame() {
	now := g.time.Now()
	w, h := g.screen.Size()

	g.router.DispatchAll()
	g.anims.Update(now, w, ComputeLayout(w, h).Floor)
	g.controller.Redraw()
	g.renderer.Draw(now)
}

// HandleInput applies one terminal event, returns false on quit
func (g *Game) HandleInput(ev tcell.Event) bool {
	action, x, y := g.input.Translate(ev)

	switch action {
	case ActionQuit:
		return false

	case ActionClick:
		if x < 0 {
			w, h := g.screen.Size()
			car := ComputeLayout(w, h).LiftCar(g.display.Texts().Gauge.Percentile)
			x, y = car.X+car.W/2, car.Y
		}
		outcome := g.controller.Click(x, y)
		log.Debug().Int("x", x).Int("y", y).Int("outcome", int(outcome)).Msg("Click")

	case ActionReset:
		g.anims.Clear()
		g.controller.Reset()

	case ActionSlower, ActionFaster:
		step := 1
		if action == ActionFaster {
			step = -1
		}
		g.controller.SetDifficulty(g.controller.Config().TickIntervalMs + step)

	case ActionMorePoints, ActionLessPoints:
		step := 1.0
		if action == ActionLessPoints {
			step = -1
		}
		g.controller.SetPointsPerClick(g.controller.Config().PointsPerClick + step)

	case ActionResize:
		g.screen.Sync()
	}
	return true
}

// Animations exposes the sprite set
func (g *Game) Animations() *physics.Animations {
	return g.anims
}

// Session exposes the statistics accumulated since start
func (g *Game) Session() *status.Session {
	return g.session
}
