package engine

import "time"

// Sink receives the text and gauge values the presentation layer renders
// Calls arrive with the controller lock held and must not call back into the controller
type Sink interface {
	SetScoreText(text string)
	SetMessage(text string)
	SetHeading(text string)
	SetGauge(g Gauge)
}

// NopSink discards all output
type NopSink struct{}

func (NopSink) SetScoreText(string) {}
func (NopSink) SetMessage(string)   {}
func (NopSink) SetHeading(string)   {}
func (NopSink) SetGauge(Gauge)      {}

// Ticker is the clock control the controller needs on difficulty changes
type Ticker interface {
	SetInterval(d time.Duration)
}
