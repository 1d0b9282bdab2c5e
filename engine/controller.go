package engine

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/portal-lift/constants"
	"github.com/lixenwraith/portal-lift/events"
)

// Phase is the derived controller state
type Phase int

const (
	// PhaseIdle is a live round with the gauge at its floor
	PhaseIdle Phase = iota
	// PhaseActive is a live round with a non-empty gauge
	PhaseActive
	// PhaseCooldown is a won round whose restart cooldown is still running, clicks are ignored
	PhaseCooldown
	// PhaseWon is a won round past its cooldown, the next click restarts
	PhaseWon
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseCooldown:
		return "cooldown"
	case PhaseWon:
		return "won"
	}
	return "unknown"
}

// ClickOutcome reports what a click did
type ClickOutcome int

const (
	ClickIgnored ClickOutcome = iota
	ClickScored
	ClickWon
	ClickRestarted
)

// Controller owns the round: clicks, clock ticks, win detection, resets and configuration
// Every operation runs under one mutex so click and tick steps never interleave
type Controller struct {
	mu sync.Mutex

	// applyMu orders configuration changes together with their clock re-creation
	applyMu sync.Mutex

	cfg      Config
	state    *GameState
	reading  Reading
	smoother *Smoother

	timeProvider TimeProvider
	sink         Sink
	queue        *events.EventQueue
	ticker       Ticker
}

// NewController creates a controller with a fresh active round
// cfg is sanitized against DefaultConfig; sink and queue may be nil
func NewController(cfg Config, timeProvider TimeProvider, sink Sink, queue *events.EventQueue) *Controller {
	if timeProvider == nil {
		timeProvider = NewMonotonicTimeProvider()
	}
	if sink == nil {
		sink = NopSink{}
	}
	cfg = cfg.Sanitize(DefaultConfig())

	c := &Controller{
		cfg:          cfg,
		state:        NewGameState(timeProvider.Now()),
		smoother:     NewSmoother(cfg.SmoothingFactor, cfg.WinScore),
		timeProvider: timeProvider,
		sink:         sink,
		queue:        queue,
	}
	c.recompute()
	c.publishIdle()
	return c
}

// AttachTicker registers the clock re-created on difficulty changes
func (c *Controller) AttachTicker(t Ticker) {
	c.mu.Lock()
	c.ticker = t
	c.mu.Unlock()
}

// Click handles a pointer click at screen position (x, y)
func (c *Controller) Click(x, y int) ClickOutcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.timeProvider.Now()

	if !c.state.Active() {
		if !c.canRestartLocked(now) {
			return ClickIgnored
		}
		c.resetLocked(now, events.ResetRestart)
		return ClickRestarted
	}

	if c.state.Score() >= c.cfg.WinScore {
		return ClickIgnored
	}

	c.state.RegisterClick(c.cfg.PointsPerClick)
	c.recompute()
	c.push(now, events.EventClick, &events.ClickPayload{
		X:      x,
		Y:      y,
		Score:  c.state.Score(),
		Clicks: c.state.ClickCount(),
	})

	if c.state.Score() >= c.cfg.WinScore {
		c.winLocked(now)
		return ClickWon
	}
	c.publishActive()
	return ClickScored
}

// Tick advances the round by one clock period
func (c *Controller) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Active() {
		return
	}

	now := c.timeProvider.Now()
	score := c.state.Score()

	switch {
	case score >= c.cfg.WinScore:
		c.winLocked(now)
	case score <= 0:
		c.state.HoldAtFloor(now)
		c.publishIdle()
	default:
		c.state.Decay(c.cfg.DecayPerTick)
		c.recompute()
		c.publishActive()
	}
}

// Redraw advances the displayed score one smoothing step, called once per rendered frame
func (c *Controller) Redraw() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Active() {
		return c.state.DisplayedScore()
	}

	v := c.smoother.Step(c.reading.Displayed)
	c.state.SetDisplayedScore(v)
	if c.state.Score() > 0 {
		c.sink.SetScoreText(fmt.Sprintf(constants.TextActiveScore, v))
	}
	return v
}

// Reset starts a new round, regardless of cooldown
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked(c.timeProvider.Now(), events.ResetExplicit)
}

// SetDifficulty changes the tick interval, resets the round and re-creates the clock driver
func (c *Controller) SetDifficulty(tickIntervalMs int) {
	c.applyMu.Lock()
	defer c.applyMu.Unlock()

	c.mu.Lock()
	cfg := c.cfg
	cfg.TickIntervalMs = CoerceInt(tickIntervalMs, c.cfg.TickIntervalMs, constants.MinTickIntervalMs, constants.MaxTickIntervalMs)
	c.applyLocked(cfg, events.ResetDifficulty)
	ticker := c.ticker
	c.mu.Unlock()

	// Outside the lock: stopping the old driver waits for its in-flight Tick
	if ticker != nil {
		ticker.SetInterval(cfg.TickInterval())
	}
}

// SetPointsPerClick changes the click increment and resets the round
func (c *Controller) SetPointsPerClick(points float64) {
	c.applyMu.Lock()
	defer c.applyMu.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	cfg := c.cfg
	cfg.PointsPerClick = CoerceFloat(points, c.cfg.PointsPerClick, constants.MinPointsPerClick, constants.MaxPointsPerClick)
	c.applyLocked(cfg, events.ResetPoints)
}

// Configure replaces every parameter, invalid fields keep their current values
func (c *Controller) Configure(cfg Config) {
	c.applyMu.Lock()
	defer c.applyMu.Unlock()

	c.mu.Lock()
	cfg = cfg.Sanitize(c.cfg)
	c.applyLocked(cfg, events.ResetConfigure)
	ticker := c.ticker
	c.mu.Unlock()

	if ticker != nil {
		ticker.SetInterval(cfg.TickInterval())
	}
}

// Config returns the parameters in effect
func (c *Controller) Config() Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg
}

// Snapshot returns a copy of the round state
func (c *Controller) Snapshot() StateSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Snapshot()
}

// Reading returns the current gauge projection
func (c *Controller) Reading() Reading {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reading
}

// Phase derives the state machine position
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Active() {
		if c.canRestartLocked(c.timeProvider.Now()) {
			return PhaseWon
		}
		return PhaseCooldown
	}
	if c.state.Score() <= 0 {
		return PhaseIdle
	}
	return PhaseActive
}

// CanStartNewGame reports whether the restart cooldown has elapsed since the last win
func (c *Controller) CanStartNewGame() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canRestartLocked(c.timeProvider.Now())
}

// ===== INTERNAL (lock held) =====

func (c *Controller) canRestartLocked(now time.Time) bool {
	return now.Sub(c.state.EndTime()) >= c.cfg.RestartCooldown()
}

func (c *Controller) applyLocked(cfg Config, reason events.ResetReason) {
	c.cfg = cfg
	c.smoother = NewSmoother(cfg.SmoothingFactor, cfg.WinScore)

	now := c.timeProvider.Now()
	c.resetLocked(now, reason)
	c.push(now, events.EventConfigChange, &events.ConfigChangePayload{
		TickIntervalMs: cfg.TickIntervalMs,
		PointsPerClick: cfg.PointsPerClick,
		WinScore:       cfg.WinScore,
		DecayPerTick:   cfg.DecayPerTick,
		Reason:         reason,
	})

	log.Info().
		Int("tick_interval_ms", cfg.TickIntervalMs).
		Float64("points_per_click", cfg.PointsPerClick).
		Float64("win_score", cfg.WinScore).
		Float64("decay_per_tick", cfg.DecayPerTick).
		Str("reason", string(reason)).
		Msg("Configuration applied")
}

func (c *Controller) resetLocked(now time.Time, reason events.ResetReason) {
	c.state.ResetRound(now)
	c.smoother.Snap(0)
	c.recompute()

	c.sink.SetMessage("")
	c.sink.SetScoreText(constants.TextZeroScore)

	c.push(now, events.EventReset, &events.ResetPayload{
		RoundID: c.state.RoundID(),
		Reason:  reason,
	})
	log.Debug().
		Str("round_id", c.state.RoundID().String()).
		Str("reason", string(reason)).
		Msg("Round reset")
}

func (c *Controller) winLocked(now time.Time) {
	elapsed := now.Sub(c.state.StartTime())
	rating := Rating(elapsed, c.state.ClickCount(), c.cfg)
	c.state.MarkWon(now, rating)

	c.smoother.Snap(c.cfg.WinScore)
	c.state.SetDisplayedScore(c.smoother.Value())
	c.recompute()

	message := fmt.Sprintf(constants.TextWinMessage, rating)
	c.sink.SetMessage(message)
	c.sink.SetScoreText(fmt.Sprintf(constants.TextWinScore, formatNumber(c.cfg.WinScore)))
	c.sink.SetHeading(fmt.Sprintf(constants.TextWinHeading, elapsed.Seconds(), c.state.ClickCount()))

	c.push(now, events.EventWin, &events.WinPayload{
		RoundID: c.state.RoundID(),
		Message: message,
		Rating:  rating,
		Elapsed: elapsed,
		Clicks:  c.state.ClickCount(),
	})

	log.Info().
		Str("round_id", c.state.RoundID().String()).
		Int("rating", rating).
		Dur("elapsed", elapsed).
		Int("clicks", c.state.ClickCount()).
		Msg("Round won")
}

// recompute refreshes the gauge projection and publishes both gauge signals
func (c *Controller) recompute() {
	c.reading = Transform(c.state.Score(), c.cfg.WinScore)
	c.sink.SetGauge(c.reading.Gauge())
}

func (c *Controller) publishIdle() {
	c.sink.SetMessage(constants.TextIdleMessage)
	c.sink.SetScoreText(constants.TextZeroScore)
	c.sink.SetHeading(fmt.Sprintf(constants.TextIdleHeading, c.cfg.TickIntervalMs, formatNumber(c.cfg.PointsPerClick)))
}

func (c *Controller) publishActive() {
	c.sink.SetScoreText(fmt.Sprintf(constants.TextActiveScore, c.state.DisplayedScore()))
	c.sink.SetMessage(fmt.Sprintf(constants.TextActiveMsg, c.state.Score(), c.state.ClickCount()))
}

func (c *Controller) push(now time.Time, et events.EventType, payload any) {
	if c.queue == nil {
		return
	}
	c.queue.Push(events.GameEvent{Type: et, Payload: payload, Timestamp: now})
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
