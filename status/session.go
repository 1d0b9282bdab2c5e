package status

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/lixenwraith/portal-lift/events"
)

// AtomicFloat provides atomic float64 operations using bit conversion
// Zero value is ready to use (represents 0.0)
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// StoreMin stores val when the current value is zero or larger, returns true if stored
func (f *AtomicFloat) StoreMin(val float64) bool {
	for {
		old := f.bits.Load()
		cur := math.Float64frombits(old)
		if cur != 0 && cur <= val {
			return false
		}
		if f.bits.CompareAndSwap(old, math.Float64bits(val)) {
			return true
		}
	}
}

// Session accumulates statistics over every round played in one process
// Written by the event dispatcher, readable from any goroutine
type Session struct {
	Rounds        atomic.Int64 // Resets, explicit or by restart
	Wins          atomic.Int64
	Clicks        atomic.Int64 // Scoring clicks across rounds
	ConfigChanges atomic.Int64
	BestRating    atomic.Int64
	BestTime      AtomicFloat // Fastest win in seconds, zero before the first win
}

func NewSession() *Session {
	return &Session{}
}

// HandleEvent implements events.Handler
func (s *Session) HandleEvent(ev events.GameEvent) {
	switch ev.Type {
	case events.EventClick:
		s.Clicks.Add(1)
	case events.EventReset:
		s.Rounds.Add(1)
	case events.EventConfigChange:
		s.ConfigChanges.Add(1)
	case events.EventWin:
		s.Wins.Add(1)
		p, ok := ev.Payload.(*events.WinPayload)
		if !ok {
			return
		}
		for {
			best := s.BestRating.Load()
			if int64(p.Rating) <= best || s.BestRating.CompareAndSwap(best, int64(p.Rating)) {
				break
			}
		}
		s.BestTime.StoreMin(p.Elapsed.Seconds())
	}
}

// EventTypes implements events.Handler
func (s *Session) EventTypes() []events.EventType {
	return []events.EventType{events.EventClick, events.EventReset, events.EventConfigChange, events.EventWin}
}

// Summary is the one-line footer text
func (s *Session) Summary() string {
	wins := s.Wins.Load()
	if wins == 0 {
		return fmt.Sprintf("clicks: %d", s.Clicks.Load())
	}
	return fmt.Sprintf("wins: %d  best: %d  fastest: %.2fs", wins, s.BestRating.Load(), s.BestTime.Get())
}
