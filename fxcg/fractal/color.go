package fractal

// InSet is the color of points that never escape.
const InSet uint16 = 0x0000

// ColorFor maps an escape count to an RGB565 color. Points that hit the cap are
// black; the rest share one blue-biased gradient with 31 steps.
func ColorFor(n, max int) uint16 {
	if n >= max {
		return InSet
	}
	shade := uint16(n * 0x1F / max)
	return 0x001F | shade<<6
}
