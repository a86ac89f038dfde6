package vram

// WalkLine visits every pixel of the integer line from (x1, y1) to (x2, y2),
// both endpoints included. The axis with the larger delta drives the walk.
// The minor axis steps when the error term is positive, or when it is zero and
// the major axis runs in the positive direction, so the pixel set for a given
// call never changes; redrawing a line visits exactly the pixels that drawing
// it did.
func WalkLine(x1, y1, x2, y2 int, visit func(x, y int)) {
	ix, dx := 1, x2-x1
	if dx <= 0 {
		ix, dx = -1, -dx
	}
	iy, dy := 1, y2-y1
	if dy <= 0 {
		iy, dy = -1, -dy
	}
	dx <<= 1
	dy <<= 1

	visit(x1, y1)
	if dx >= dy {
		err := dy - (dx >> 1)
		for x1 != x2 {
			if err > 0 || (err == 0 && ix > 0) {
				y1 += iy
				err -= dx
			}
			x1 += ix
			err += dy
			visit(x1, y1)
		}
		return
	}

	err := dx - (dy >> 1)
	for y1 != y2 {
		if err > 0 || (err == 0 && iy > 0) {
			x1 += ix
			err -= dy
		}
		y1 += iy
		err += dx
		visit(x1, y1)
	}
}

// DrawLine draws a line in color c.
func (v *VRAM) DrawLine(x1, y1, x2, y2 int, c uint16) {
	WalkLine(x1, y1, x2, y2, func(x, y int) {
		v.SetPixel(x, y, c)
	})
}
