package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/portal-lift/constants"
	"github.com/lixenwraith/portal-lift/core"
)

// ClockScheduler fires a callback on a fixed tick
// At most one driver goroutine runs; SetInterval stops the old one before starting the next
type ClockScheduler struct {
	// lifecycle serializes Start/Stop/SetInterval, the loop never takes it
	lifecycle sync.Mutex

	interval time.Duration
	onTick   func()

	stopChan chan struct{}
	doneChan chan struct{}
	running  bool

	tickCount atomic.Uint64
	drivers   atomic.Int32
}

// NewClockScheduler creates a stopped scheduler
func NewClockScheduler(interval time.Duration, onTick func()) *ClockScheduler {
	return &ClockScheduler{
		interval: interval,
		onTick:   onTick,
	}
}

// Start begins the scheduler loop, no-op when running
func (cs *ClockScheduler) Start() {
	cs.lifecycle.Lock()
	defer cs.lifecycle.Unlock()
	cs.startLocked()
}

// Stop halts the scheduler loop and waits for the driver to exit
func (cs *ClockScheduler) Stop() {
	cs.lifecycle.Lock()
	defer cs.lifecycle.Unlock()
	cs.stopLocked()
}

// SetInterval tears down the current driver and starts a new one at interval d
// A scheduler that was stopped stays stopped with the new interval
func (cs *ClockScheduler) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}

	cs.lifecycle.Lock()
	defer cs.lifecycle.Unlock()

	wasRunning := cs.running
	cs.stopLocked()
	cs.interval = d
	if wasRunning {
		cs.startLocked()
	}
	log.Debug().Dur("interval", d).Bool("running", wasRunning).Msg("Clock interval changed")
}

// Interval returns the current tick period
func (cs *ClockScheduler) Interval() time.Duration {
	cs.lifecycle.Lock()
	defer cs.lifecycle.Unlock()
	return cs.interval
}

// Ticks returns the number of ticks fired since creation
func (cs *ClockScheduler) Ticks() uint64 {
	return cs.tickCount.Load()
}

// Running reports whether a driver is installed
func (cs *ClockScheduler) Running() bool {
	cs.lifecycle.Lock()
	defer cs.lifecycle.Unlock()
	return cs.running
}

func (cs *ClockScheduler) startLocked() {
	if cs.running {
		return
	}
	stop := make(chan struct{})
	done := make(chan struct{})
	cs.stopChan = stop
	cs.doneChan = done
	cs.running = true

	interval := cs.interval
	core.Go(func() { cs.schedulerLoop(interval, stop, done) })
}

func (cs *ClockScheduler) stopLocked() {
	if !cs.running {
		return
	}
	close(cs.stopChan)
	<-cs.doneChan
	cs.running = false
}

// schedulerLoop fires ticks on deadlines with drift correction
func (cs *ClockScheduler) schedulerLoop(interval time.Duration, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	cs.drivers.Add(1)
	defer cs.drivers.Add(-1)

	nextTickDeadline := time.Now().Add(interval)
	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		select {
		case <-stop:
			return
		case <-timer.C:
		}

		cs.onTick()
		cs.tickCount.Add(1)

		now := time.Now()
		nextTickDeadline = nextTickDeadline.Add(interval)

		maxBehind := interval * constants.ClockCatchUpLimit
		if now.Sub(nextTickDeadline) > maxBehind {
			nextTickDeadline = now.Add(interval)
		}

		sleepDuration := nextTickDeadline.Sub(now)
		if sleepDuration < 0 {
			sleepDuration = 0
		}
		timer.Reset(sleepDuration)
	}
}
