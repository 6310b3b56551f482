package core

// DomainConfig defines the sampled interval a lineshape is evaluated on.
type DomainConfig struct {
	Start   float64
	Stop    float64
	Samples int
}

// DomainOption mutates a DomainConfig.
type DomainOption func(*DomainConfig)

// DefaultDomainConfig returns the interval used for multiplet plots:
// 5000 points over [-1.5, 1.5].
func DefaultDomainConfig() DomainConfig {
	return DomainConfig{
		Start:   -1.5,
		Stop:    1.5,
		Samples: 5000,
	}
}

// WithSamples sets the number of domain samples.
func WithSamples(samples int) DomainOption {
	return func(cfg *DomainConfig) {
		if samples > 0 {
			cfg.Samples = samples
		}
	}
}

// WithRange sets the domain bounds. Reversed or empty ranges are ignored.
func WithRange(start, stop float64) DomainOption {
	return func(cfg *DomainConfig) {
		if start < stop {
			cfg.Start = start
			cfg.Stop = stop
		}
	}
}

// ApplyDomainOptions applies zero or more options to the default config.
func ApplyDomainOptions(opts ...DomainOption) DomainConfig {
	cfg := DefaultDomainConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Step returns the distance between adjacent samples, or 0 for a
// single-sample domain.
func (cfg DomainConfig) Step() float64 {
	if cfg.Samples < 2 {
		return 0
	}
	return (cfg.Stop - cfg.Start) / float64(cfg.Samples-1)
}
