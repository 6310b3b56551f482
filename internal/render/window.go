package render

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"

	"github.com/cwbudde/algo-lineshape/dsp/lineshape"
)

// Window shows the plot in a desktop window. Render blocks until the
// window is closed and must be called from the main goroutine.
type Window struct {
	// NewApp creates the application; app.New when nil.
	NewApp func() fyne.App
}

// Render implements Renderer.
func (w Window) Render(c *lineshape.Curve, opts Options) error {
	p, err := NewPlot(c, opts)
	if err != nil {
		return err
	}

	newApp := w.NewApp
	if newApp == nil {
		newApp = app.New
	}

	a := newApp()
	win := a.NewWindow(opts.Title)
	img := canvas.NewImageFromImage(Image(p, opts))
	img.FillMode = canvas.ImageFillContain
	win.SetContent(img)
	win.Resize(fyne.NewSize(float32(opts.Width), float32(opts.Height)))
	win.ShowAndRun()
	return nil
}
