package signal

import (
	"fmt"

	"github.com/cwbudde/algo-lineshape/dsp/core"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Generator creates sample domains from a shared configuration.
type Generator struct {
	cfg core.DomainConfig
}

// NewGenerator creates a configured domain generator.
func NewGenerator(opts ...core.DomainOption) *Generator {
	return &Generator{
		cfg: core.ApplyDomainOptions(opts...),
	}
}

// Config returns the generator domain configuration.
func (g *Generator) Config() core.DomainConfig {
	return g.cfg
}

// Domain returns the configured evenly spaced sample points.
func (g *Generator) Domain() ([]float64, error) {
	return Linspace(g.cfg.Start, g.cfg.Stop, g.cfg.Samples)
}

// Linspace returns samples evenly spaced points over [start, stop], both
// endpoints included. A single sample yields [start].
func Linspace(start, stop float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("linspace samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	if samples == 1 {
		out[0] = start
		return out, nil
	}
	floats.Span(out, start, stop)
	out[samples-1] = stop
	return out, nil
}

// Apply writes f(x[i]) into dst[i]. dst and x must have the same length.
func Apply(dst, x []float64, f func(float64) float64) {
	if len(dst) != len(x) {
		panic(fmt.Sprintf("signal: apply length mismatch: %d vs %d", len(dst), len(x)))
	}
	for i, v := range x {
		dst[i] = f(v)
	}
}

// Accumulate adds weight*f(x[i]) to dst[i]. scratch receives the unweighted
// values and must have the same length as dst and x.
func Accumulate(dst, x, scratch []float64, weight float64, f func(float64) float64) {
	Apply(scratch, x, f)
	vecmath.ScaleBlock(scratch, scratch, weight)
	vecmath.AddBlockInPlace(dst, scratch)
}
