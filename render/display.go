package render

import (
	"sync"

	"github.com/lixenwraith/portal-lift/engine"
)

// Display is the output sink written by the controller and read by the renderer
// Written from the clock goroutine and the input loop, read every frame
type Display struct {
	mu        sync.RWMutex
	scoreText string
	message   string
	heading   string
	gauge     engine.Gauge
}

// Texts is a consistent copy of the displayed values
type Texts struct {
	Score   string
	Message string
	Heading string
	Gauge   engine.Gauge
}

func NewDisplay() *Display {
	return &Display{}
}

func (d *Display) SetScoreText(text string) {
	d.mu.Lock()
	d.scoreText = text
	d.mu.Unlock()
}

func (d *Display) SetMessage(text string) {
	d.mu.Lock()
	d.message = text
	d.mu.Unlock()
}

func (d *Display) SetHeading(text string) {
	d.mu.Lock()
	d.heading = text
	d.mu.Unlock()
}

func (d *Display) SetGauge(g engine.Gauge) {
	d.mu.Lock()
	d.gauge = g
	d.mu.Unlock()
}

// Texts returns the current values
func (d *Display) Texts() Texts {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return Texts{
		Score:   d.scoreText,
		Message: d.message,
		Heading: d.heading,
		Gauge:   d.gauge,
	}
}
