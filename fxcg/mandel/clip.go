package mandel

import (
	"image"

	"fractals/fxcg/vram"
)

// walkField runs the line walk and hands visit only the pixels inside field.
// Clipping happens per pixel, so the in-field part of a line is the same
// pixel set whether or not its endpoints lie outside.
func walkField(field image.Rectangle, x1, y1, x2, y2 int, visit func(x, y int)) {
	vram.WalkLine(x1, y1, x2, y2, func(x, y int) {
		if x < field.Min.X || x >= field.Max.X || y < field.Min.Y || y >= field.Max.Y {
			return
		}
		visit(x, y)
	})
}
