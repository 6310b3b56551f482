// Package spectrum analyzes sampled lineshapes.
//
// [Analyze] reduces a curve to a handful of figures (height, position, area,
// width). [FID] transforms a spectrum back to the time domain: a Lorentzian
// line corresponds to an exponentially decaying free induction decay, so the
// decay rate of the FID envelope is a second measure of the linewidth.
package spectrum
