package lineshape

// Lorentzian evaluates a Lorentzian line centered at mu with half-width at
// half maximum gamma and peak height amplitude.
func Lorentzian(x, mu, gamma, amplitude float64) float64 {
	d := x - mu
	g2 := gamma * gamma
	return amplitude * g2 / (d*d + g2)
}
