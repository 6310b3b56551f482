// Package lineshape synthesizes NMR-style multiplet spectra.
//
// A multiplet of multiplicity M is modelled as M Lorentzian lines placed at
// evenly spaced positions about a center, with heights following row M-1 of
// Pascal's triangle (the binomial splitting pattern produced by coupling to
// M-1 equivalent spin-1/2 nuclei). The lines are summed pointwise over a
// sampled domain:
//
//	y(x) = sum_i A * w_i * gamma^2 / ((x - mu_i)^2 + gamma^2)
//
// where w_i = C(M-1, i) / 2^(M-1) and gamma is the half-width at half maximum.
// The superposition is not renormalized, so overlapping lines can exceed A.
//
// # Usage
//
//	curve, err := lineshape.Create(3, 0, 0.05) // triplet, 5000 points over [-1.5, 1.5]
//
// For a different domain or resolution, configure a generator:
//
//	g := lineshape.NewGenerator(core.WithSamples(1024), core.WithRange(-4, 4))
//	curve, err := g.Lineshape(5, 0.2, 0.05, 2)
package lineshape
