package render

import (
	"fmt"

	"github.com/cwbudde/algo-lineshape/internal/config"
)

// New returns the renderer selected by cfg.
func New(cfg config.RenderConfig) (Renderer, error) {
	switch cfg.Renderer {
	case config.RendererWindow:
		return Window{}, nil
	case config.RendererFile:
		return File{Path: cfg.Output}, nil
	default:
		return nil, fmt.Errorf("render: unknown renderer %q", cfg.Renderer)
	}
}
