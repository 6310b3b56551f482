package lineshape

import "gonum.org/v1/gonum/stat/combin"

const (
	// MinMultiplicity is a singlet.
	MinMultiplicity = 1
	// MaxMultiplicity is a nonet.
	MaxMultiplicity = 9

	// patternWidth is the distance between the outermost lines of any
	// multiplet with more than one line.
	patternWidth = 2.0
)

var names = [...]string{
	"singlet", "doublet", "triplet", "quartet", "quintet",
	"sextet", "septet", "octet", "nonet",
}

// Name returns the conventional name of a multiplicity, or "" if it is out
// of range.
func Name(multiplicity int) string {
	if validateMultiplicity(multiplicity) != nil {
		return ""
	}
	return names[multiplicity-1]
}

// Multiplet is the stick pattern of a multiplet: line positions in
// ascending order and their relative intensities, which sum to 1.
type Multiplet struct {
	Multiplicity int
	Center       float64
	Spacing      float64
	Positions    []float64
	Intensities  []float64
}

// NewMultiplet builds the binomial pattern for multiplicity lines centered
// on center.
func NewMultiplet(multiplicity int, center float64) (Multiplet, error) {
	if err := validateMultiplicity(multiplicity); err != nil {
		return Multiplet{}, err
	}

	n := multiplicity - 1
	spacing := 0.0
	if n > 0 {
		spacing = patternWidth / float64(n)
	}

	positions := make([]float64, multiplicity)
	half := float64(n) / 2
	for i := range positions {
		positions[i] = center + (float64(i)-half)*spacing
	}

	intensities := make([]float64, multiplicity)
	total := 0.0
	for k := range intensities {
		c := float64(combin.Binomial(n, k))
		intensities[k] = c
		total += c
	}
	for k := range intensities {
		intensities[k] /= total
	}

	return Multiplet{
		Multiplicity: multiplicity,
		Center:       center,
		Spacing:      spacing,
		Positions:    positions,
		Intensities:  intensities,
	}, nil
}

// Width returns the distance between the outermost lines.
func (m Multiplet) Width() float64 {
	return float64(m.Multiplicity-1) * m.Spacing
}

// Name returns the conventional name of the pattern's multiplicity.
func (m Multiplet) Name() string {
	return Name(m.Multiplicity)
}
