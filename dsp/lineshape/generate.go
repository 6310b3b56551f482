package lineshape

import (
	"github.com/cwbudde/algo-lineshape/dsp/core"
	"github.com/cwbudde/algo-lineshape/dsp/signal"
)

// Curve is a sampled lineshape together with the pattern that produced it.
type Curve struct {
	X       []float64
	Y       []float64
	Pattern Multiplet
	Gamma   float64
}

// Len returns the number of samples.
func (c *Curve) Len() int {
	return len(c.X)
}

// Generator evaluates multiplet lineshapes on a configured domain.
type Generator struct {
	domain *signal.Generator
}

// NewGenerator creates a lineshape generator. Without options it samples
// 5000 points over [-1.5, 1.5].
func NewGenerator(opts ...core.DomainOption) *Generator {
	return &Generator{
		domain: signal.NewGenerator(opts...),
	}
}

// Config returns the domain configuration.
func (g *Generator) Config() core.DomainConfig {
	return g.domain.Config()
}

// Lineshape returns the sum of Lorentzian lines of the given multiplet.
// gamma is not validated here; only gamma^2 enters the result, and a zero
// gamma gives NaN wherever a sample falls exactly on a line.
func (g *Generator) Lineshape(multiplicity int, center, gamma, amplitude float64) (*Curve, error) {
	pattern, err := NewMultiplet(multiplicity, center)
	if err != nil {
		return nil, err
	}

	x, err := g.domain.Domain()
	if err != nil {
		return nil, err
	}

	y := make([]float64, len(x))
	scratch := make([]float64, len(x))
	for i, mu := range pattern.Positions {
		signal.Accumulate(y, x, scratch, amplitude*pattern.Intensities[i], func(v float64) float64 {
			return Lorentzian(v, mu, gamma, 1)
		})
	}

	return &Curve{
		X:       x,
		Y:       y,
		Pattern: pattern,
		Gamma:   gamma,
	}, nil
}

// Create evaluates a unit-amplitude multiplet on the default domain.
func Create(multiplicity int, center, gamma float64) (*Curve, error) {
	return NewGenerator().Lineshape(multiplicity, center, gamma, 1)
}
