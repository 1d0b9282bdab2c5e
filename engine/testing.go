package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/portal-lift/events"
)

// RecordingSink keeps the last published values, safe for concurrent use
type RecordingSink struct {
	mu         sync.Mutex
	scoreText  string
	message    string
	heading    string
	gauge      Gauge
	gaugeCount int
}

func (s *RecordingSink) SetScoreText(text string) {
	s.mu.Lock()
	s.scoreText = text
	s.mu.Unlock()
}

func (s *RecordingSink) SetMessage(text string) {
	s.mu.Lock()
	s.message = text
	s.mu.Unlock()
}

func (s *RecordingSink) SetHeading(text string) {
	s.mu.Lock()
	s.heading = text
	s.mu.Unlock()
}

func (s *RecordingSink) SetGauge(g Gauge) {
	s.mu.Lock()
	s.gauge = g
	s.gaugeCount++
	s.mu.Unlock()
}

// Values returns score text, message, heading and gauge
func (s *RecordingSink) Values() (string, string, string, Gauge) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scoreText, s.message, s.heading, s.gauge
}

// GaugeUpdates returns how many times the gauge was published
func (s *RecordingSink) GaugeUpdates() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gaugeCount
}

// NewTestController creates a controller on a mock clock with a recording sink and event queue
func NewTestController(cfg Config) (*Controller, *MockTimeProvider, *RecordingSink, *events.EventQueue) {
	tp := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	sink := &RecordingSink{}
	queue := events.NewEventQueue()
	return NewController(cfg, tp, sink, queue), tp, sink, queue
}
