package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-lineshape/dsp/spectrum"
)

func ExampleAnalyze() {
	x := []float64{-2, -1, 0, 1, 2}
	y := []float64{0, 0.5, 1, 0.5, 0}

	s, err := spectrum.Analyze(x, y)
	if err != nil {
		panic(err)
	}

	fmt.Printf("max=%.1f at %.1f area=%.1f fwhm=%.1f\n", s.Max, s.Position, s.Area, s.FWHM)

	// Output:
	// max=1.0 at 0.0 area=2.0 fwhm=2.0
}
