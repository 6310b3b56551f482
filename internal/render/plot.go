// Package render draws lineshape curves.
package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/cwbudde/algo-lineshape/dsp/lineshape"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var errEmptyCurve = errors.New("render: curve has no samples")

// Options controls the appearance of a rendered curve. Width and Height are
// in pixels.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	XMin   float64
	XMax   float64
	Width  int
	Height int
}

// DefaultOptions returns the plot layout for a multiplet of the given
// multiplicity: x clipped to [-2, 2], 1200x800 pixels.
func DefaultOptions(multiplicity int) Options {
	return Options{
		Title:  fmt.Sprintf("Lorentzian Lineshape for Multiplicity %d", multiplicity),
		XLabel: "Position",
		YLabel: "Intensity",
		XMin:   -2,
		XMax:   2,
		Width:  1200,
		Height: 800,
	}
}

// Renderer displays or stores a curve.
type Renderer interface {
	Render(c *lineshape.Curve, opts Options) error
}

// NewPlot builds a single-line plot of c without grid or legend.
func NewPlot(c *lineshape.Curve, opts Options) (*plot.Plot, error) {
	if c == nil || c.Len() == 0 {
		return nil, errEmptyCurve
	}

	xys := make(plotter.XYs, c.Len())
	for i := range xys {
		xys[i].X = c.X[i]
		xys[i].Y = c.Y[i]
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("render: line: %w", err)
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Add(line)

	// Add widens the axes to the data; pin x afterwards.
	if opts.XMin < opts.XMax {
		p.X.Min = opts.XMin
		p.X.Max = opts.XMax
	}
	return p, nil
}

// Image rasterizes p at the option's pixel size.
func Image(p *plot.Plot, opts Options) image.Image {
	c := vgimg.New(pixels(opts.Width), pixels(opts.Height))
	p.Draw(draw.New(c))
	return c.Image()
}

// pixels converts a pixel count to the length that rasterizes to it at
// vgimg.DefaultDPI.
func pixels(px int) vg.Length {
	return vg.Length(px) * vg.Inch / vgimg.DefaultDPI
}
