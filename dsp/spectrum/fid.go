package spectrum

import (
	"fmt"
	"math"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// FID returns the magnitude envelope of the time-domain signal whose
// spectrum is y. y is zero-padded to the next power of two n and inverse
// transformed; the first n/2 points are returned. Element 0 equals the mean
// of the padded spectrum.
func FID(y []float64) ([]float64, error) {
	if len(y) == 0 {
		return nil, ErrEmptyInput
	}

	n := nextPowerOf2(len(y))
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	freq := make([]complex128, n)
	for i, v := range y {
		freq[i] = complex(v, 0)
	}

	timeDomain := make([]complex128, n)
	if err := plan.Inverse(timeDomain, freq); err != nil {
		return nil, fmt.Errorf("spectrum: inverse FFT failed: %w", err)
	}

	return Magnitude(timeDomain[:n/2]), nil
}

// DecayIndex returns the first index at which envelope falls below 1/e of
// its initial value, or -1 if it never does.
func DecayIndex(envelope []float64) int {
	if len(envelope) == 0 {
		return -1
	}
	threshold := envelope[0] / math.E
	for i, v := range envelope {
		if v < threshold {
			return i
		}
	}
	return -1
}

func nextPowerOf2(n int) int {
	p := 2
	for p < n {
		p <<= 1
	}
	return p
}
