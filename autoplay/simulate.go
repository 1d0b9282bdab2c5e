package autoplay

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/portal-lift/engine"
	"github.com/lixenwraith/portal-lift/events"
)

// ErrInvalidRate is returned for a click rate that is not a positive finite number
var ErrInvalidRate = errors.New("click rate must be positive")

// DefaultMaxDuration bounds a simulated round that cannot be won
const DefaultMaxDuration = 60 * time.Second

// Options configures a headless round
type Options struct {
	Config          engine.Config
	ClicksPerSecond float64
	MaxDuration     time.Duration // Zero means DefaultMaxDuration
}

// Result summarizes a simulated round
type Result struct {
	Config          engine.Config
	ClicksPerSecond float64
	Won             bool
	Elapsed         time.Duration // Round time until the win, or simulated time when not won
	Clicks          int
	Ticks           int
	Rating          int
	PeakScore       float64
	FinalScore      float64
	Message         string
}

// Simulate plays one round on a virtual clock, clicking at a fixed rate from time zero
// Ticks due at the same instant as a click fire first
func Simulate(opts Options) (Result, error) {
	rate := opts.ClicksPerSecond
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidRate, rate)
	}
	maxDuration := opts.MaxDuration
	if maxDuration <= 0 {
		maxDuration = DefaultMaxDuration
	}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tp := engine.NewMockTimeProvider(start)
	queue := events.NewEventQueue()
	controller := engine.NewController(opts.Config, tp, nil, queue)
	cfg := controller.Config()

	res := Result{Config: cfg, ClicksPerSecond: rate}

	router := events.NewRouter(queue)
	router.Register(events.HandlerFunc{
		Types: []events.EventType{events.EventWin},
		Fn: func(ev events.GameEvent) {
			if p, ok := ev.Payload.(*events.WinPayload); ok {
				res.Won = true
				res.Rating = p.Rating
				res.Elapsed = p.Elapsed
				res.Message = p.Message
			}
		},
	})

	tickInterval := cfg.TickInterval()
	clickInterval := time.Duration(float64(time.Second) / rate)
	if clickInterval <= 0 {
		clickInterval = time.Nanosecond
	}

	var nextTick, nextClick time.Duration = tickInterval, 0
	for !res.Won {
		var at time.Duration
		if nextTick <= nextClick {
			at = nextTick
		} else {
			at = nextClick
		}
		if at > maxDuration {
			res.Elapsed = maxDuration
			break
		}
		tp.SetTime(start.Add(at))

		if at == nextTick {
			controller.Tick()
			res.Ticks++
			nextTick += tickInterval
		} else {
			controller.Click(0, 0)
			nextClick += clickInterval
		}

		snap := controller.Snapshot()
		res.PeakScore = math.Max(res.PeakScore, snap.Score)
		router.DispatchAll()
	}

	snap := controller.Snapshot()
	res.Clicks = snap.ClickCount
	res.FinalScore = snap.Score

	log.Debug().
		Float64("cps", rate).
		Bool("won", res.Won).
		Dur("elapsed", res.Elapsed).
		Int("clicks", res.Clicks).
		Int("rating", res.Rating).
		Msg("Simulated round")
	return res, nil
}

// Sweep simulates one round per click rate
func Sweep(cfg engine.Config, rates []float64, maxDuration time.Duration) ([]Result, error) {
	results := make([]Result, 0, len(rates))
	for _, rate := range rates {
		r, err := Simulate(Options{Config: cfg, ClicksPerSecond: rate, MaxDuration: maxDuration})
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

// BreakEvenRate is the click rate at which increments exactly offset decay
func BreakEvenRate(cfg engine.Config) float64 {
	if cfg.PointsPerClick <= 0 || cfg.TickIntervalMs <= 0 {
		return math.Inf(1)
	}
	drainPerSecond := cfg.DecayPerTick * 1000 / float64(cfg.TickIntervalMs)
	return drainPerSecond / cfg.PointsPerClick
}
