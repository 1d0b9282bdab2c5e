package audio

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/portal-lift/constants"
	"github.com/lixenwraith/portal-lift/events"
)

const sampleRate = beep.SampleRate(constants.HapticSampleRate)

// Haptics plays a short low-frequency rumble on win, standing in for device vibration
// Without an audio device every call is a silent no-op
type Haptics struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool

	triggered atomic.Int64
}

// NewHaptics creates an uninitialized rumble player
func NewHaptics() *Haptics {
	return &Haptics{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker, an error leaves the player silent
func (h *Haptics) Initialize() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.HapticBufferDuration)); err != nil {
		return err
	}

	speaker.Play(h.mixer)
	h.initialized = true
	return nil
}

// Cleanup stops playback and releases the speaker
func (h *Haptics) Cleanup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.initialized {
		return
	}
	speaker.Clear()
	h.mixer.Clear()
	speaker.Close()
	h.initialized = false
}

// Rumble queues the win pulse pattern
func (h *Haptics) Rumble() {
	h.triggered.Add(1)

	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.initialized {
		return
	}

	pattern, err := RumblePattern(sampleRate)
	if err != nil {
		log.Warn().Err(err).Msg("Rumble unavailable")
		return
	}
	speaker.Lock()
	h.mixer.Add(pattern)
	speaker.Unlock()
}

// Triggered returns how many rumbles were requested, played or not
func (h *Haptics) Triggered() int64 {
	return h.triggered.Load()
}

// Enabled reports whether an audio device is open
func (h *Haptics) Enabled() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.initialized
}

// HandleEvent implements events.Handler
func (h *Haptics) HandleEvent(ev events.GameEvent) {
	if ev.Type == events.EventWin {
		h.Rumble()
	}
}

// EventTypes implements events.Handler
func (h *Haptics) EventTypes() []events.EventType {
	return []events.EventType{events.EventWin}
}

// RumblePattern builds HapticPulses enveloped sine pulses separated by HapticPulseGap
func RumblePattern(sr beep.SampleRate) (beep.Streamer, error) {
	var parts []beep.Streamer
	for i := 0; i < constants.HapticPulses; i++ {
		if i > 0 {
			parts = append(parts, beep.Silence(sr.N(constants.HapticPulseGap)))
		}
		tone, err := generators.SineTone(sr, constants.HapticRumbleFrequency)
		if err != nil {
			return nil, err
		}
		n := sr.N(constants.HapticRumbleDuration)
		parts = append(parts, &envelope{
			src:   beep.Take(n, tone),
			total: n,
			gain:  constants.HapticRumbleGain,
		})
	}
	return beep.Seq(parts...), nil
}

// envelope applies a sine-shaped attack and release to a finite streamer
type envelope struct {
	src   beep.Streamer
	pos   int
	total int
	gain  float64
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.src.Stream(samples)
	for i := 0; i < n; i++ {
		amp := e.gain * math.Sin(math.Pi*float64(e.pos)/float64(e.total))
		samples[i][0] *= amp
		samples[i][1] *= amp
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error {
	return e.src.Err()
}
