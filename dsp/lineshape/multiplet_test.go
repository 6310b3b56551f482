package lineshape

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-lineshape/internal/testutil"
)

func TestNewMultipletAllMultiplicities(t *testing.T) {
	for m := MinMultiplicity; m <= MaxMultiplicity; m++ {
		for _, center := range []float64{0, 0.3, -1.25} {
			p, err := NewMultiplet(m, center)
			if err != nil {
				t.Fatalf("NewMultiplet(%d) error = %v", m, err)
			}
			if len(p.Positions) != m || len(p.Intensities) != m {
				t.Fatalf("m=%d: got %d positions, %d intensities", m, len(p.Positions), len(p.Intensities))
			}

			sum := 0.0
			for _, w := range p.Intensities {
				sum += w
			}
			if math.Abs(sum-1) > 1e-9 {
				t.Fatalf("m=%d: intensity sum = %v, want 1", m, sum)
			}

			testutil.RequireSymmetric(t, p.Positions, center, 1e-12)
			for i := 0; i < m/2; i++ {
				if p.Intensities[i] != p.Intensities[m-1-i] {
					t.Fatalf("m=%d: intensity %d = %v, mirror = %v", m, i, p.Intensities[i], p.Intensities[m-1-i])
				}
			}
		}
	}
}

func TestSinglet(t *testing.T) {
	p, err := NewMultiplet(1, 0.42)
	if err != nil {
		t.Fatalf("NewMultiplet() error = %v", err)
	}
	if len(p.Positions) != 1 || p.Positions[0] != 0.42 {
		t.Fatalf("positions = %v, want [0.42]", p.Positions)
	}
	if p.Intensities[0] != 1 {
		t.Fatalf("intensity = %v, want 1", p.Intensities[0])
	}
	if p.Spacing != 0 || p.Width() != 0 {
		t.Fatalf("spacing=%v width=%v, want 0", p.Spacing, p.Width())
	}
}

func TestQuintet(t *testing.T) {
	p, err := NewMultiplet(5, 0)
	if err != nil {
		t.Fatalf("NewMultiplet() error = %v", err)
	}
	if p.Spacing != 0.5 {
		t.Fatalf("spacing = %v, want 0.5", p.Spacing)
	}
	if p.Width() != 2 {
		t.Fatalf("width = %v, want 2", p.Width())
	}
	testutil.RequireSliceNearlyEqual(t, p.Positions, []float64{-1, -0.5, 0, 0.5, 1}, 0)
	testutil.RequireSliceNearlyEqual(t, p.Intensities,
		[]float64{1.0 / 16, 4.0 / 16, 6.0 / 16, 4.0 / 16, 1.0 / 16}, 0)
}

func TestPositionsAscendingAndEvenlySpaced(t *testing.T) {
	for m := 2; m <= MaxMultiplicity; m++ {
		p, err := NewMultiplet(m, 0.1)
		if err != nil {
			t.Fatalf("NewMultiplet(%d) error = %v", m, err)
		}
		for i := 1; i < m; i++ {
			d := p.Positions[i] - p.Positions[i-1]
			if math.Abs(d-p.Spacing) > 1e-12 {
				t.Fatalf("m=%d gap %d = %v, want %v", m, i, d, p.Spacing)
			}
		}
		if math.Abs(p.Width()-2) > 1e-12 {
			t.Fatalf("m=%d width = %v, want 2", m, p.Width())
		}
	}
}

func TestNewMultipletRejectsOutOfRange(t *testing.T) {
	for _, m := range []int{0, 10, -1, 100} {
		_, err := NewMultiplet(m, 0)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("NewMultiplet(%d) error = %v, want ErrInvalidArgument", m, err)
		}
		if !errors.Is(err, ErrInvalidMultiplicity) {
			t.Fatalf("NewMultiplet(%d) error = %v, want ErrInvalidMultiplicity", m, err)
		}
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		m    int
		want string
	}{
		{1, "singlet"},
		{2, "doublet"},
		{5, "quintet"},
		{9, "nonet"},
		{0, ""},
		{10, ""},
	}
	for _, tt := range tests {
		if got := Name(tt.m); got != tt.want {
			t.Fatalf("Name(%d) = %q, want %q", tt.m, got, tt.want)
		}
	}
}
