// Package mandel renders the Mandelbrot set into the fractal field and draws
// and removes orbit traces on top of it.
package mandel

import (
	"image"

	"fractals/fxcg/fractal"
)

// Overlay colors.
const (
	ColorTrace  uint16 = 0x07E0
	ColorMarker uint16 = 0xF800
	ColorAxis   uint16 = 0xFFFF
)

// Surface is the pixel store the renderer draws into.
type Surface interface {
	SetPixel(x, y int, c uint16)
	Pixel(x, y int) uint16
	Flush() error
	FlushRows(y0, y1 int) error
}

// Renderer owns the mapping from field pixels to colors. Every pixel it writes
// is ColorFor(Iterate(x, y)), which is what lets EraseLine restore a pixel
// without a saved background.
type Renderer struct {
	s     Surface
	cfg   *fractal.Config
	plane fractal.Plane
	field image.Rectangle

	// Progress, if set, is called after every rendered row.
	Progress func(y int)
}

// NewRenderer returns a renderer for the fixed screen viewport.
func NewRenderer(s Surface, cfg *fractal.Config) *Renderer {
	return &Renderer{
		s:     s,
		cfg:   cfg,
		plane: fractal.Screen,
		field: fractal.Field,
	}
}

// Config returns the settings the renderer reads.
func (r *Renderer) Config() *fractal.Config { return r.cfg }

// Plane returns the pixel to plane map.
func (r *Renderer) Plane() fractal.Plane { return r.plane }

// Field returns the rectangle the fractal occupies.
func (r *Renderer) Field() image.Rectangle { return r.field }

// Color returns the fractal color of pixel (x, y).
func (r *Renderer) Color(x, y int) uint16 {
	max := r.cfg.MaxIterations
	return fractal.ColorFor(r.plane.Iterate(x, y, max), max)
}

// Pixel recomputes and stores the fractal color of (x, y).
func (r *Renderer) Pixel(x, y int) {
	r.s.SetPixel(x, y, r.Color(x, y))
}

// RenderField fills the field in raster order. With live render each row is
// flushed as soon as it is done; otherwise the display is flushed once at the
// end.
func (r *Renderer) RenderField() error {
	for y := r.field.Min.Y; y < r.field.Max.Y; y++ {
		for x := r.field.Min.X; x < r.field.Max.X; x++ {
			r.Pixel(x, y)
		}
		if r.Progress != nil {
			r.Progress(y)
		}
		if r.cfg.LiveRender {
			if err := r.s.FlushRows(y, y); err != nil {
				return err
			}
		}
	}
	if !r.cfg.LiveRender {
		return r.s.Flush()
	}
	return nil
}

// EraseLine walks the same pixels as a line drawn from (x1, y1) to (x2, y2)
// and puts the fractal back under each of them. The axis overlay, when
// enabled, is redrawn afterwards since the walk may have crossed it.
func (r *Renderer) EraseLine(x1, y1, x2, y2 int) {
	walkField(r.field, x1, y1, x2, y2, r.Pixel)
	if r.cfg.Axis {
		r.DrawAxis()
	}
}

// DrawLine draws a line clipped to the field.
func (r *Renderer) DrawLine(x1, y1, x2, y2 int, c uint16) {
	walkField(r.field, x1, y1, x2, y2, func(x, y int) {
		r.s.SetPixel(x, y, c)
	})
}

// SetPixel writes c at (x, y) if it lies in the field.
func (r *Renderer) SetPixel(x, y int, c uint16) {
	if (image.Point{X: x, Y: y}).In(r.field) {
		r.s.SetPixel(x, y, c)
	}
}
