package mandel

// DrawAxis draws the real and imaginary axes across the field, a small box at
// the origin, and tick marks every half unit: -2.5 to 1 along the real axis,
// -1.5 to 1 along the imaginary one.
func (r *Renderer) DrawAxis() {
	p := r.plane
	ox, oy := p.XOffset, p.YOffset
	z := p.Zoom
	line := func(x1, y1, x2, y2 float64) {
		r.DrawLine(int(x1), int(y1), int(x2), int(y2), ColorAxis)
	}

	w := float64(r.field.Max.X - 1)
	line(float64(r.field.Min.X), oy, w, oy)
	line(ox, float64(r.field.Min.Y), ox, float64(r.field.Max.Y-1))

	// Origin.
	line(ox-1, oy+1, ox+1, oy+1)
	line(ox-1, oy-1, ox+1, oy-1)

	for i := -1.0; i <= 1; i++ {
		line(ox-3, oy+i*z, ox+3, oy+i*z)
		line(ox+i*z, oy-3, ox+i*z, oy+3)
		line(ox-2, oy+i*z-0.5*z, ox+2, oy+i*z-0.5*z)
		line(ox+i*z-0.5*z, oy-2, ox+i*z-0.5*z, oy+2)
	}
	line(ox-2*z, oy-3, ox-2*z, oy+3)
	line(ox-2*z-0.5*z, oy-2, ox-2*z-0.5*z, oy+2)
}
