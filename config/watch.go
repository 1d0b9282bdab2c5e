package config

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/portal-lift/core"
)

// Watcher polls file modification times and calls onChange for each changed path
type Watcher struct {
	paths    []string
	interval time.Duration
	onChange func(string)

	stopOnce  sync.Once
	stopCh    chan struct{}
	doneCh    chan struct{}
	lastMTime map[string]time.Time
}

// NewWatcher creates a stopped watcher over paths
func NewWatcher(paths []string, interval time.Duration, onChange func(string)) *Watcher {
	return &Watcher{
		paths:     paths,
		interval:  interval,
		onChange:  onChange,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
		lastMTime: make(map[string]time.Time),
	}
}

// Start primes the modification cache then polls until Stop
func (w *Watcher) Start() {
	w.scan(true)
	core.Go(func() {
		defer close(w.doneCh)
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.scan(false)
			case <-w.stopCh:
				return
			}
		}
	})
}

// Stop terminates polling and waits for the loop to exit, safe to call twice
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		<-w.doneCh
	})
}

// scan reports files whose mtime moved forward; missing files are skipped until they appear
func (w *Watcher) scan(prime bool) {
	for _, p := range w.paths {
		fi, err := os.Stat(p)
		if err != nil {
			continue
		}
		mt := fi.ModTime()
		last, ok := w.lastMTime[p]
		if !ok {
			w.lastMTime[p] = mt
			if !prime && w.onChange != nil {
				w.onChange(p)
			}
			continue
		}
		if mt.After(last) {
			w.lastMTime[p] = mt
			if !prime && w.onChange != nil {
				w.onChange(p)
			}
		}
	}
}

// WatchPreset reloads the preset at path on every change and hands it to apply
// Files that fail to load are logged and the running preset is kept
func WatchPreset(path string, interval time.Duration, apply func(Preset)) *Watcher {
	w := NewWatcher([]string{path}, interval, func(p string) {
		preset, err := Load(p)
		if err != nil {
			log.Error().Err(err).Str("path", p).Msg("Preset reload failed")
			return
		}
		log.Info().Str("path", p).Str("preset", preset.Name).Msg("Preset reloaded")
		apply(preset)
	})
	w.Start()
	return w
}
