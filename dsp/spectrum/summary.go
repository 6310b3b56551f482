package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-lineshape/dsp/core"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// Summary describes a sampled curve.
type Summary struct {
	// Max is the largest sample value and Position its abscissa.
	Max      float64
	Position float64
	Mean     float64
	// Area is the trapezoidal integral over the sampled domain.
	Area float64
	// FWHM is the full width at half maximum of the tallest peak. When the
	// peak does not fall to half height inside the domain, the domain edge
	// bounds the width.
	FWHM float64
}

// Analyze summarizes the curve y sampled at ascending x.
func Analyze(x, y []float64) (Summary, error) {
	if len(y) == 0 {
		return Summary{}, ErrEmptyInput
	}
	if len(x) != len(y) {
		return Summary{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}

	mean, err := stats.Mean(stats.Float64Data(y))
	if err != nil {
		return Summary{}, fmt.Errorf("spectrum: mean: %w", err)
	}

	peak := floats.MaxIdx(y)
	s := Summary{
		Max:      y[peak],
		Position: x[peak],
		Mean:     mean,
	}
	if len(y) > 1 {
		s.Area = integrate.Trapezoidal(x, y)
	}
	s.FWHM = fwhm(x, y, peak)
	return s, nil
}

func fwhm(x, y []float64, peak int) float64 {
	half := y[peak] / 2

	left := x[0]
	for i := peak; i > 0; i-- {
		if y[i-1] <= half {
			left = core.Crossing(x[i-1], y[i-1], x[i], y[i], half)
			break
		}
	}

	right := x[len(x)-1]
	for i := peak; i < len(y)-1; i++ {
		if y[i+1] <= half {
			right = core.Crossing(x[i], y[i], x[i+1], y[i+1], half)
			break
		}
	}

	return right - left
}
