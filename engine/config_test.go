package engine

import (
	"math"
	"testing"
	"time"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Valid() {
		t.Fatalf("Expected default config to be valid: %+v", cfg)
	}
	if cfg.PointsPerClick != cfg.WinScore/10 {
		t.Errorf("Expected points per click to be a tenth of win score, got %f", cfg.PointsPerClick)
	}
	if cfg.TickInterval() != 5*time.Millisecond {
		t.Errorf("Expected 5ms tick, got %v", cfg.TickInterval())
	}
	if cfg.RestartCooldown() != 5*time.Second {
		t.Errorf("Expected 5s cooldown, got %v", cfg.RestartCooldown())
	}
}

func TestCoerceFloat(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"InRange", 7, 7},
		{"LowerBound", 1, 1},
		{"UpperBound", 500, 500},
		{"BelowMin", 0.5, 3},
		{"AboveMax", 501, 3},
		{"Negative", -2, 3},
		{"NaN", math.NaN(), 3},
		{"PosInf", math.Inf(1), 3},
		{"NegInf", math.Inf(-1), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoerceFloat(tt.v, 3, 1, 500); got != tt.want {
				t.Errorf("Expected %f, got %f", tt.want, got)
			}
		})
	}
}

func TestCoerceInt(t *testing.T) {
	for v, want := range map[int]int{0: 5, 1: 1, 10: 10, 11: 5, -4: 5} {
		if got := CoerceInt(v, 5, 1, 10); got != want {
			t.Errorf("CoerceInt(%d): expected %d, got %d", v, want, got)
		}
	}
}

func TestSanitizeKeepsValidFields(t *testing.T) {
	lastGood := DefaultConfig()
	in := Config{
		WinScore:               0,
		PointsPerClick:         2,
		DecayPerTick:           math.Inf(1),
		TickIntervalMs:         2,
		RestartCooldownSeconds: -1,
		SmoothingFactor:        1.5,
	}

	got := in.Sanitize(lastGood)

	if got.WinScore != lastGood.WinScore {
		t.Errorf("Expected zero win score replaced, got %f", got.WinScore)
	}
	if got.PointsPerClick != 2 || got.TickIntervalMs != 2 {
		t.Errorf("Expected valid fields kept, got %+v", got)
	}
	if got.DecayPerTick != lastGood.DecayPerTick {
		t.Errorf("Expected infinite decay replaced, got %f", got.DecayPerTick)
	}
	if got.RestartCooldownSeconds != lastGood.RestartCooldownSeconds {
		t.Errorf("Expected negative cooldown replaced, got %f", got.RestartCooldownSeconds)
	}
	if got.SmoothingFactor != lastGood.SmoothingFactor {
		t.Errorf("Expected smoothing above 1 replaced, got %f", got.SmoothingFactor)
	}
	if !got.Valid() {
		t.Error("Expected sanitized config to be valid")
	}
}

func TestZeroDecayAndCooldownAllowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DecayPerTick = 0
	cfg.RestartCooldownSeconds = 0
	if !cfg.Valid() {
		t.Errorf("Expected zero decay and zero cooldown to be valid: %+v", cfg)
	}
}
