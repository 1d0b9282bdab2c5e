package constants

import "time"

// Haptic Rumble
const (
	// HapticSampleRate is the speaker sample rate used for the rumble
	HapticSampleRate = 44100

	// HapticBufferDuration is the speaker buffer length
	HapticBufferDuration = 100 * time.Millisecond

	// HapticRumbleDuration is the length of the win rumble
	HapticRumbleDuration = 250 * time.Millisecond

	// HapticRumbleFrequency is low enough to be felt on speakers rather than heard as a tone
	HapticRumbleFrequency = 55.0

	// HapticRumbleGain scales the rumble amplitude
	HapticRumbleGain = 0.35

	// HapticPulseGap separates the pulses of the win pattern
	HapticPulseGap = 80 * time.Millisecond

	// HapticPulses is the number of rumble pulses on win
	HapticPulses = 2
)
