package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/portal-lift/constants"
	"github.com/lixenwraith/portal-lift/engine"
	"github.com/lixenwraith/portal-lift/events"
)

func newTestGame(t *testing.T) (*Game, tcell.SimulationScreen, *engine.Controller, *engine.MockTimeProvider) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Screen init failed: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	tp := engine.NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	display := NewDisplay()
	queue := events.NewEventQueue()
	controller := engine.NewController(engine.DefaultConfig(), tp, display, queue)
	router := events.NewRouter(queue)

	return NewGame(screen, controller, display, router, tp), screen, controller, tp
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestFrameDrawsHeader(t *testing.T) {
	g, screen, _, _ := newTestGame(t)

	g.Frame()

	if row := rowText(screen, 1); !strings.Contains(row, constants.TextTitle) {
		t.Errorf("Expected title on row 1, got %q", row)
	}
	if row := rowText(screen, 3); !strings.Contains(row, constants.TextIdleMessage) {
		t.Errorf("Expected idle message on row 3, got %q", row)
	}
	if row := rowText(screen, 2); !strings.Contains(row, "difficulty: 5 - ppc: 6") {
		t.Errorf("Expected idle heading on row 2, got %q", row)
	}
}

func TestMouseClickScoresAndSpawnsAnimations(t *testing.T) {
	g, _, controller, _ := newTestGame(t)

	if !g.HandleInput(tcell.NewEventMouse(40, 12, tcell.Button1, tcell.ModNone)) {
		t.Fatal("Expected click to keep running")
	}
	if got := controller.Snapshot().ClickCount; got != 1 {
		t.Fatalf("Expected 1 click, got %d", got)
	}

	g.Frame()
	if got := len(g.Animations().Popups()); got != 1 {
		t.Errorf("Expected 1 popup after click, got %d", got)
	}
	if got := len(g.Animations().Fallers()); got != 1 {
		t.Errorf("Expected 1 faller after click, got %d", got)
	}
	if p := g.Animations().Popups()[0]; p.X != 40 || p.Y != 12 {
		t.Errorf("Expected popup at (40, 12), got (%d, %d)", p.X, p.Y)
	}
}

func TestKeyboardControls(t *testing.T) {
	g, _, controller, _ := newTestGame(t)
	key := func(ch rune) bool {
		return g.HandleInput(tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone))
	}

	key(' ')
	key(' ')
	if got := controller.Snapshot().ClickCount; got != 2 {
		t.Fatalf("Expected 2 keyboard clicks, got %d", got)
	}

	key('r')
	if got := controller.Snapshot().ClickCount; got != 0 {
		t.Errorf("Expected reset to clear clicks, got %d", got)
	}

	key('+')
	if got := controller.Config().TickIntervalMs; got != 6 {
		t.Errorf("Expected tick interval 6, got %d", got)
	}
	key('-')
	key('-')
	if got := controller.Config().TickIntervalMs; got != 4 {
		t.Errorf("Expected tick interval 4, got %d", got)
	}

	key(']')
	if got := controller.Config().PointsPerClick; got != 7 {
		t.Errorf("Expected ppc 7, got %f", got)
	}
	key('[')
	key('[')
	if got := controller.Config().PointsPerClick; got != 5 {
		t.Errorf("Expected ppc 5, got %f", got)
	}

	if key('q') {
		t.Error("Expected q to quit")
	}
}

func TestWinFrameShowsWinTexts(t *testing.T) {
	g, screen, controller, tp := newTestGame(t)

	for i := 0; i < 9; i++ {
		controller.Click(40, 12)
	}
	tp.Advance(2 * time.Second)
	controller.Click(40, 12)
	g.Frame()

	if row := rowText(screen, 1); !strings.Contains(row, "WIN 60") {
		t.Errorf("Expected win score on row 1, got %q", row)
	}
	if row := rowText(screen, 4); !strings.Contains(row, "Score: 6841") {
		t.Errorf("Expected rating on row 4, got %q", row)
	}
	if row := rowText(screen, 2); !strings.Contains(row, "Time: 2.00s - Clicks: 10") {
		t.Errorf("Expected win heading on row 2, got %q", row)
	}
}

func TestSessionSummaryInHeader(t *testing.T) {
	g, screen, controller, _ := newTestGame(t)

	for i := 0; i < 10; i++ {
		controller.Click(40, 12)
	}
	g.Frame()

	if got := g.Session().Wins.Load(); got != 1 {
		t.Errorf("Expected 1 win recorded, got %d", got)
	}
	if row := rowText(screen, 0); !strings.Contains(row, "wins: 1") {
		t.Errorf("Expected session summary on row 0, got %q", row)
	}
}

func TestPollEventsExitsWhenDone(t *testing.T) {
	g, screen, _, _ := newTestGame(t)

	out := make(chan tcell.Event) // never read, the send blocks
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		g.pollEvents(out, done)
		close(exited)
	}()

	if err := screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); err != nil {
		t.Fatalf("PostEvent failed: %v", err)
	}
	close(done)

	select {
	case <-exited:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected poll loop to exit after done closed")
	}
}
