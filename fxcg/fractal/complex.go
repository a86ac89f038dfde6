package fractal

// Complex is a point in the complex plane.
type Complex struct {
	Re float64
	Im float64
}

// SquaredAbs returns |z|² so callers can compare against a squared radius
// instead of taking a square root.
func (z Complex) SquaredAbs() float64 {
	return (z.Re * z.Re) + (z.Im * z.Im)
}

// Step returns z² + c.
func (z Complex) Step(c Complex) Complex {
	return Complex{
		Re: (z.Re * z.Re) - (z.Im * z.Im) + c.Re,
		Im: (2 * z.Re * z.Im) + c.Im,
	}
}
