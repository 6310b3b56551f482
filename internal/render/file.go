package render

import (
	"fmt"

	"github.com/cwbudde/algo-lineshape/dsp/lineshape"
	"github.com/rs/zerolog/log"
)

// File writes the plot to Path. The format follows the extension (png,
// svg, pdf, ...).
type File struct {
	Path string
}

// Render implements Renderer.
func (f File) Render(c *lineshape.Curve, opts Options) error {
	p, err := NewPlot(c, opts)
	if err != nil {
		return err
	}
	if err := p.Save(pixels(opts.Width), pixels(opts.Height), f.Path); err != nil {
		return fmt.Errorf("render: save %s: %w", f.Path, err)
	}
	log.Info().Str("path", f.Path).Msg("Plot written")
	return nil
}
