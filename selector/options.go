package selector

// Default configuration values. The range default matches a 10-bit ADC
// reading; the deadzone default reserves 20% of the available gap space
// between zones.
const (
	DefaultRangeMin = 0
	DefaultRangeMax = 1023
	DefaultDeadzone = 0.2
)

type config struct {
	rangeMin int
	rangeMax int
	deadzone float64
}

// Option mutates the initial Filter configuration.
type Option func(*config)

func defaultConfig() config {
	return config{
		rangeMin: DefaultRangeMin,
		rangeMax: DefaultRangeMax,
		deadzone: DefaultDeadzone,
	}
}

// WithRange sets the inclusive input range. Reversed bounds are
// swapped, never rejected.
func WithRange(low, high int) Option {
	return func(cfg *config) {
		cfg.rangeMin = low
		cfg.rangeMax = high
	}
}

// WithDeadzone sets the deadzone size as a fraction of the available
// inter-zone space, clamped to [0, 1]. Larger deadzones are more
// resilient to noise but require the input to travel farther to change
// position.
func WithDeadzone(fraction float64) Option {
	return func(cfg *config) {
		cfg.deadzone = fraction
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
