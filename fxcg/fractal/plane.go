package fractal

import "image"

// Display geometry.
const (
	Width      = 384
	Height     = 216
	HeaderRows = 24
)

// Field is the part of the display the fractal is drawn into. The header band
// above it belongs to the status bar.
var Field = image.Rect(0, HeaderRows, Width, Height)

// Plane is an affine map between display pixels and the complex plane.
type Plane struct {
	XOffset float64
	YOffset float64
	Zoom    float64 // pixels per unit
}

// Screen is the fixed viewport: origin at pixel (250, 112.5), 95 px per unit.
// The renderer, the tracer and the axis overlay all map through it.
var Screen = Plane{
	XOffset: 250,
	YOffset: 112.5,
	Zoom:    95,
}

// Param returns the parameter c for pixel (x, y).
func (p Plane) Param(x, y int) Complex {
	return Complex{
		Re: (float64(x) - p.XOffset) / p.Zoom,
		Im: (float64(y) - p.YOffset) / p.Zoom,
	}
}

// Pixel maps z back onto the display. Coordinates truncate toward zero and may
// fall outside the display.
func (p Plane) Pixel(z Complex) (x, y int) {
	return p.X(z.Re), p.Y(z.Im)
}

// X returns the pixel column for the real coordinate re.
func (p Plane) X(re float64) int { return int(re*p.Zoom + p.XOffset) }

// Y returns the pixel row for the imaginary coordinate im.
func (p Plane) Y(im float64) int { return int(im*p.Zoom + p.YOffset) }

// Origin returns the pixel closest to 0+0i.
func (p Plane) Origin() (x, y int) {
	return p.Pixel(Complex{})
}

// Iterate is the escape-time count for pixel (x, y).
func (p Plane) Iterate(x, y, max int) int {
	return Escape(p.Param(x, y), max)
}
