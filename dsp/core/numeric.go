package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// Crossing returns the abscissa where the segment (x0,y0)-(x1,y1) reaches
// level, using linear interpolation. The result is clamped to [x0, x1].
// A flat segment returns x0.
func Crossing(x0, y0, x1, y1, level float64) float64 {
	dy := y1 - y0
	if dy == 0 {
		return x0
	}

	frac := Clamp((level-y0)/dy, 0, 1)
	return x0 + frac*(x1-x0)
}
