package selector

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.rangeMin != 0 || cfg.rangeMax != 1023 {
		t.Errorf("default range = (%d, %d), want (0, 1023)", cfg.rangeMin, cfg.rangeMax)
	}

	if cfg.deadzone != 0.2 {
		t.Errorf("default deadzone = %v, want 0.2", cfg.deadzone)
	}
}

func TestApplyOptions(t *testing.T) {
	cfg := applyOptions(
		WithRange(-100, 100),
		WithDeadzone(0.7),
	)

	if cfg.rangeMin != -100 || cfg.rangeMax != 100 {
		t.Errorf("range = (%d, %d), want (-100, 100)", cfg.rangeMin, cfg.rangeMax)
	}

	if cfg.deadzone != 0.7 {
		t.Errorf("deadzone = %v, want 0.7", cfg.deadzone)
	}
}

func TestNilOption(t *testing.T) {
	flt := New(3, nil, WithRange(0, 50), nil)

	if flt.RangeMax() != 50 {
		t.Errorf("RangeMax() = %d, want 50", flt.RangeMax())
	}

	if flt.NumPositions() != 3 {
		t.Errorf("NumPositions() = %d, want 3", flt.NumPositions())
	}
}

func TestLastOptionWins(t *testing.T) {
	flt := New(2, WithDeadzone(0.1), WithDeadzone(0.6))

	if flt.Deadzone() != 0.6 {
		t.Errorf("Deadzone() = %v, want 0.6", flt.Deadzone())
	}
}
