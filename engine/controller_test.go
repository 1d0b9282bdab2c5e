package engine

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/portal-lift/events"
)

func exampleConfig() Config {
	cfg := DefaultConfig()
	cfg.WinScore = 60
	cfg.PointsPerClick = 3
	cfg.DecayPerTick = 0.1
	cfg.TickIntervalMs = 5
	return cfg
}

func countEvents(evs []events.GameEvent, et events.EventType) int {
	n := 0
	for _, ev := range evs {
		if ev.Type == et {
			n++
		}
	}
	return n
}

type recordingTicker struct {
	intervals []time.Duration
}

func (r *recordingTicker) SetInterval(d time.Duration) {
	r.intervals = append(r.intervals, d)
}

func TestControllerInitialState(t *testing.T) {
	c, _, sink, _ := NewTestController(DefaultConfig())

	if c.Phase() != PhaseIdle {
		t.Errorf("Expected idle phase, got %v", c.Phase())
	}

	snap := c.Snapshot()
	if snap.Score != 0 || snap.ClickCount != 0 || !snap.Active {
		t.Errorf("Expected score 0, clicks 0, active; got %+v", snap)
	}

	scoreText, message, heading, _ := sink.Values()
	if scoreText != "0" {
		t.Errorf("Expected score text 0, got %q", scoreText)
	}
	if message != "tap the screen to start" {
		t.Errorf("Expected idle message, got %q", message)
	}
	if heading != "difficulty: 5 - ppc: 6" {
		t.Errorf("Expected idle heading, got %q", heading)
	}
}

// TestTwentyClicksWin covers the 60/3 example without decay
func TestTwentyClicksWin(t *testing.T) {
	c, _, _, queue := NewTestController(exampleConfig())

	for i := 1; i < 20; i++ {
		if out := c.Click(10, 10); out != ClickScored {
			t.Fatalf("Click %d: expected scored, got %v", i, out)
		}
		snap := c.Snapshot()
		if snap.ClickCount != i {
			t.Fatalf("Click %d: expected click count %d, got %d", i, i, snap.ClickCount)
		}
		if snap.Score != float64(3*i) {
			t.Fatalf("Click %d: expected score %d, got %f", i, 3*i, snap.Score)
		}
	}

	if out := c.Click(10, 10); out != ClickWon {
		t.Fatalf("Expected 20th click to win, got %v", out)
	}

	snap := c.Snapshot()
	if snap.Score != 60 {
		t.Errorf("Expected score exactly 60, got %f", snap.Score)
	}
	if snap.Active {
		t.Error("Expected round to be inactive after win")
	}
	if c.Phase() != PhaseCooldown {
		t.Errorf("Expected cooldown phase, got %v", c.Phase())
	}

	evs := queue.Consume()
	if n := countEvents(evs, events.EventClick); n != 20 {
		t.Errorf("Expected 20 click events, got %d", n)
	}
	if n := countEvents(evs, events.EventWin); n != 1 {
		t.Errorf("Expected 1 win event, got %d", n)
	}
}

// TestInterleavedDecayWin pins the click/tick alternation: 21 clicks, 20 ticks
func TestInterleavedDecayWin(t *testing.T) {
	c, _, _, _ := NewTestController(exampleConfig())

	clicks := 0
	for {
		clicks++
		if out := c.Click(0, 0); out == ClickWon {
			break
		}
		if clicks > 30 {
			t.Fatal("Expected a win within 30 clicks")
		}
		c.Tick()
	}

	if clicks != 21 {
		t.Errorf("Expected win on click 21, got %d", clicks)
	}
	if got := c.Snapshot().Score; math.Abs(got-61.0) > 1e-9 {
		t.Errorf("Expected final score 61.0, got %f", got)
	}
}

func TestDecayToFloor(t *testing.T) {
	c, _, _, _ := NewTestController(exampleConfig())
	c.Click(0, 0)

	prev := c.Snapshot().Score
	for i := 0; i < 40; i++ {
		c.Tick()
		score := c.Snapshot().Score
		if score < 0 {
			t.Fatalf("Tick %d: score went negative: %f", i, score)
		}
		if prev > 0 {
			if score >= prev {
				t.Fatalf("Tick %d: expected score to decrease from %f, got %f", i, prev, score)
			}
			if expected := math.Max(prev-0.1, 0); math.Abs(score-expected) > 1e-9 {
				t.Fatalf("Tick %d: expected %f, got %f", i, expected, score)
			}
		} else if score != 0 {
			t.Fatalf("Tick %d: expected score held at 0, got %f", i, score)
		}
		prev = score
	}

	if c.Phase() != PhaseIdle {
		t.Errorf("Expected idle phase after draining, got %v", c.Phase())
	}
}

// TestExplicitTickScenario pins gauge values after a fixed number of ticks
func TestExplicitTickScenario(t *testing.T) {
	cfg := DefaultConfig()
	c, _, sink, _ := NewTestController(cfg)

	for i := 0; i < 5; i++ {
		c.Click(0, 0)
	}
	for i := 0; i < 50; i++ {
		c.Tick()
	}

	snap := c.Snapshot()
	if math.Abs(snap.Score-25) > 1e-9 {
		t.Fatalf("Expected score 25 after 5 clicks and 50 ticks, got %f", snap.Score)
	}

	r := c.Reading()
	if math.Abs(r.Percentile-25.0/60.0) > 1e-9 {
		t.Errorf("Expected percentile %f, got %f", 25.0/60.0, r.Percentile)
	}
	wantEased := (25.0 / 60.0) * (2 - 25.0/60.0)
	if math.Abs(r.Eased-wantEased) > 1e-9 {
		t.Errorf("Expected eased %f, got %f", wantEased, r.Eased)
	}

	_, message, _, gauge := sink.Values()
	if gauge.Percentile != 66 {
		t.Errorf("Expected gauge percentile 66, got %d", gauge.Percentile)
	}
	if message != "score: 25.0 - click: 5" {
		t.Errorf("Expected active message, got %q", message)
	}

	// Displayed score lags behind the eased target
	first := c.Redraw()
	if math.Abs(first-r.Displayed*cfg.SmoothingFactor) > 1e-9 {
		t.Errorf("Expected first redraw %f, got %f", r.Displayed*cfg.SmoothingFactor, first)
	}
	for i := 0; i < 500; i++ {
		c.Redraw()
	}
	if got := c.Snapshot().DisplayedScore; got != r.Displayed {
		t.Errorf("Expected displayed score to settle on %f, got %f", r.Displayed, got)
	}
}

func TestIdleTickRestartsRoundClock(t *testing.T) {
	c, tp, _, _ := NewTestController(DefaultConfig())

	now := tp.Advance(3 * time.Second)
	c.Tick()

	if got := c.Snapshot().StartTime; !got.Equal(now) {
		t.Errorf("Expected start time %v, got %v", now, got)
	}
}

func TestWinTextsAndRating(t *testing.T) {
	c, tp, sink, queue := NewTestController(DefaultConfig())

	for i := 0; i < 9; i++ {
		c.Click(0, 0)
	}
	tp.Advance(2 * time.Second)
	if out := c.Click(0, 0); out != ClickWon {
		t.Fatalf("Expected 10th click to win, got %v", out)
	}

	snap := c.Snapshot()
	if snap.Rating != 6841 {
		t.Errorf("Expected rating 6841, got %d", snap.Rating)
	}
	if snap.DisplayedScore != 60 {
		t.Errorf("Expected displayed score to snap to 60, got %f", snap.DisplayedScore)
	}

	scoreText, message, heading, gauge := sink.Values()
	if message != "YOU WIN 🎉!\nScore: 6841" {
		t.Errorf("Unexpected win message %q", message)
	}
	if scoreText != "WIN 60" {
		t.Errorf("Unexpected win score text %q", scoreText)
	}
	if heading != "Time: 2.00s - Clicks: 10" {
		t.Errorf("Unexpected win heading %q", heading)
	}
	if gauge.Percentile != 100 || gauge.Fill != 100 {
		t.Errorf("Expected full gauge, got %+v", gauge)
	}

	var win *events.WinPayload
	for _, ev := range queue.Consume() {
		if ev.Type == events.EventWin {
			win = ev.Payload.(*events.WinPayload)
		}
	}
	if win == nil {
		t.Fatal("Expected win event")
	}
	if win.Rating != 6841 || win.Clicks != 10 || win.Elapsed != 2*time.Second {
		t.Errorf("Unexpected win payload %+v", win)
	}
	if win.RoundID != snap.RoundID {
		t.Errorf("Expected win round id %v, got %v", snap.RoundID, win.RoundID)
	}
}

func TestWinIsIdempotent(t *testing.T) {
	c, tp, _, queue := NewTestController(exampleConfig())

	for i := 0; i < 20; i++ {
		c.Click(0, 0)
	}
	won := c.Snapshot()
	queue.Consume()

	for i := 0; i < 100; i++ {
		tp.Advance(10 * time.Millisecond)
		c.Tick()
		c.Redraw()
	}

	after := c.Snapshot()
	if !after.EndTime.Equal(won.EndTime) {
		t.Errorf("Expected end time %v to be kept, got %v", won.EndTime, after.EndTime)
	}
	if after.Rating != won.Rating || after.Score != won.Score {
		t.Errorf("Expected frozen round, got %+v", after)
	}
	if evs := queue.Consume(); len(evs) != 0 {
		t.Errorf("Expected no events from ticks after win, got %d", len(evs))
	}
}

// TestWinOnTick covers a gauge already at the threshold when the clock fires
func TestWinOnTick(t *testing.T) {
	c, _, _, queue := NewTestController(exampleConfig())

	c.mu.Lock()
	c.state.RegisterClick(60)
	c.mu.Unlock()

	c.Tick()
	if c.Snapshot().Active {
		t.Fatal("Expected tick at threshold to win")
	}
	c.Tick()
	if n := countEvents(queue.Consume(), events.EventWin); n != 1 {
		t.Errorf("Expected exactly 1 win event, got %d", n)
	}
}

func TestCooldownGate(t *testing.T) {
	c, tp, _, _ := NewTestController(exampleConfig())

	for i := 0; i < 20; i++ {
		c.Click(0, 0)
	}
	won := c.Snapshot()

	tp.Advance(4999 * time.Millisecond)
	if out := c.Click(5, 5); out != ClickIgnored {
		t.Errorf("Expected click inside cooldown to be ignored, got %v", out)
	}
	if snap := c.Snapshot(); snap.Active || snap.ClickCount != won.ClickCount || snap.Score != won.Score {
		t.Errorf("Expected won state unchanged, got %+v", snap)
	}
	if c.Phase() != PhaseCooldown {
		t.Errorf("Expected cooldown phase, got %v", c.Phase())
	}

	now := tp.Advance(time.Millisecond)
	if c.Phase() != PhaseWon {
		t.Errorf("Expected won phase once cooldown elapsed, got %v", c.Phase())
	}
	if out := c.Click(5, 5); out != ClickRestarted {
		t.Fatalf("Expected restart at cooldown boundary, got %v", out)
	}

	snap := c.Snapshot()
	if !snap.Active || snap.Score != 0 || snap.ClickCount != 0 {
		t.Errorf("Expected fresh active round, got %+v", snap)
	}
	if !snap.StartTime.Equal(now) {
		t.Errorf("Expected start time %v, got %v", now, snap.StartTime)
	}
	if snap.RoundID == won.RoundID {
		t.Error("Expected new round id after restart")
	}
}

func TestExplicitResetIgnoresCooldown(t *testing.T) {
	c, _, sink, _ := NewTestController(exampleConfig())
	for i := 0; i < 20; i++ {
		c.Click(0, 0)
	}

	c.Reset()

	snap := c.Snapshot()
	if !snap.Active || snap.Score != 0 || snap.ClickCount != 0 {
		t.Errorf("Expected reset to start an active round, got %+v", snap)
	}
	scoreText, message, _, _ := sink.Values()
	if scoreText != "0" || message != "" {
		t.Errorf("Expected cleared texts, got score=%q message=%q", scoreText, message)
	}
}

func TestConfigurationChangesReset(t *testing.T) {
	c, _, _, queue := NewTestController(exampleConfig())
	ticker := &recordingTicker{}
	c.AttachTicker(ticker)

	clickThrice := func() {
		for i := 0; i < 3; i++ {
			c.Click(0, 0)
		}
	}

	clickThrice()
	c.SetDifficulty(8)
	if snap := c.Snapshot(); snap.Score != 0 || snap.ClickCount != 0 {
		t.Errorf("Expected difficulty change to reset, got %+v", snap)
	}
	if c.Config().TickIntervalMs != 8 {
		t.Errorf("Expected tick interval 8, got %d", c.Config().TickIntervalMs)
	}
	if len(ticker.intervals) != 1 || ticker.intervals[0] != 8*time.Millisecond {
		t.Errorf("Expected clock re-created at 8ms, got %v", ticker.intervals)
	}

	clickThrice()
	c.SetPointsPerClick(12)
	if snap := c.Snapshot(); snap.Score != 0 || snap.ClickCount != 0 {
		t.Errorf("Expected points change to reset, got %+v", snap)
	}
	if c.Config().PointsPerClick != 12 {
		t.Errorf("Expected ppc 12, got %f", c.Config().PointsPerClick)
	}
	if len(ticker.intervals) != 1 {
		t.Errorf("Expected points change to leave the clock alone, got %v", ticker.intervals)
	}

	evs := queue.Consume()
	if n := countEvents(evs, events.EventConfigChange); n != 2 {
		t.Errorf("Expected 2 config change events, got %d", n)
	}
}

func TestInvalidSettingsKeepLastKnownGood(t *testing.T) {
	c, _, _, _ := NewTestController(exampleConfig())

	c.SetDifficulty(7)
	for _, bad := range []int{0, -3, 11, 1000} {
		c.Click(0, 0)
		c.SetDifficulty(bad)
		if got := c.Config().TickIntervalMs; got != 7 {
			t.Errorf("SetDifficulty(%d): expected last good 7, got %d", bad, got)
		}
		if c.Snapshot().ClickCount != 0 {
			t.Errorf("SetDifficulty(%d): expected reset even for invalid value", bad)
		}
	}

	c.SetPointsPerClick(4)
	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1), 501} {
		c.SetPointsPerClick(bad)
		if got := c.Config().PointsPerClick; got != 4 {
			t.Errorf("SetPointsPerClick(%v): expected last good 4, got %f", bad, got)
		}
	}

	bad := c.Config()
	bad.WinScore = -5
	bad.DecayPerTick = math.NaN()
	bad.TickIntervalMs = 3
	c.Configure(bad)
	cfg := c.Config()
	if cfg.WinScore != 60 || cfg.DecayPerTick != 0.1 || cfg.TickIntervalMs != 3 {
		t.Errorf("Expected invalid fields coerced and valid ones applied, got %+v", cfg)
	}
}

func TestClickFeedbackCoordinates(t *testing.T) {
	c, _, _, queue := NewTestController(DefaultConfig())

	c.Click(17, 42)

	evs := queue.Consume()
	var click *events.ClickPayload
	for _, ev := range evs {
		if ev.Type == events.EventClick {
			click = ev.Payload.(*events.ClickPayload)
		}
	}
	if click == nil {
		t.Fatal("Expected click event")
	}
	if click.X != 17 || click.Y != 42 || click.Clicks != 1 || click.Score != 6 {
		t.Errorf("Unexpected click payload %+v", click)
	}
}

func TestIgnoredClickEmitsNothing(t *testing.T) {
	c, _, sink, queue := NewTestController(exampleConfig())
	for i := 0; i < 20; i++ {
		c.Click(0, 0)
	}
	queue.Consume()
	before := sink.GaugeUpdates()

	c.Click(1, 1)

	if evs := queue.Consume(); len(evs) != 0 {
		t.Errorf("Expected no events from ignored click, got %d", len(evs))
	}
	if sink.GaugeUpdates() != before {
		t.Error("Expected no gauge update from ignored click")
	}
}

// slowTicker records intervals and stalls on one of them so concurrent callers can overtake
type slowTicker struct {
	mu    sync.Mutex
	slow  time.Duration
	last  time.Duration
	calls int
}

func (s *slowTicker) SetInterval(d time.Duration) {
	if d == s.slow {
		time.Sleep(2 * time.Millisecond)
	}
	s.mu.Lock()
	s.last = d
	s.calls++
	s.mu.Unlock()
}

func (s *slowTicker) Last() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// TestConcurrentConfigChangesKeepClockInSync verifies the clock ends on the interval in effect
func TestConcurrentConfigChangesKeepClockInSync(t *testing.T) {
	for run := 0; run < 50; run++ {
		c, _, _, _ := NewTestController(DefaultConfig())
		ticker := &slowTicker{slow: 8 * time.Millisecond}
		c.AttachTicker(ticker)

		cfg := c.Config()
		cfg.TickIntervalMs = 9

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.SetDifficulty(8)
		}()
		go func() {
			defer wg.Done()
			c.Configure(cfg)
		}()
		wg.Wait()

		if got, want := ticker.Last(), c.Config().TickInterval(); got != want {
			t.Fatalf("Run %d: expected clock interval %v, got %v", run, want, got)
		}
		if ticker.calls != 2 {
			t.Fatalf("Run %d: expected 2 interval changes, got %d", run, ticker.calls)
		}
	}
}
