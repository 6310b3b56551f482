package lineshape_test

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-lineshape/dsp/lineshape"
)

func ExampleNewMultiplet() {
	p, err := lineshape.NewMultiplet(5, 0)
	if err != nil {
		panic(err)
	}

	fmt.Println(p.Name(), p.Positions)
	parts := make([]string, len(p.Intensities))
	for i, w := range p.Intensities {
		parts[i] = fmt.Sprintf("%.0f/16", w*16)
	}
	fmt.Println(strings.Join(parts, " "))

	// Output:
	// quintet [-1 -0.5 0 0.5 1]
	// 1/16 4/16 6/16 4/16 1/16
}

func ExampleLorentzian() {
	fmt.Printf("%.2f %.2f\n", lineshape.Lorentzian(0, 0, 0.05, 1), lineshape.Lorentzian(0.05, 0, 0.05, 1))

	// Output:
	// 1.00 0.50
}
