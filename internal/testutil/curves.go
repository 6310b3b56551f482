package testutil

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// ReferenceLineshape evaluates a sum of Lorentzian peaks point by point with
// no shared buffers. Generator tests compare against it.
func ReferenceLineshape(x, positions, weights []float64, gamma float64) []float64 {
	out := make([]float64, len(x))
	g2 := gamma * gamma
	for i, xv := range x {
		for k, mu := range positions {
			d := xv - mu
			out[i] += weights[k] * g2 / (d*d + g2)
		}
	}
	return out
}
