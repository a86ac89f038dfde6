package hal

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// rgb3 reduces a channel to the panel's 8 color mode: fully on or off.
func rgb3(v uint8) uint8 {
	if v&0x80 != 0 {
		return 0xFF
	}
	return 0
}

// rgbaFrom565 expands little-endian RGB565 pixels in src into RGBA pixels in
// dst. With full == false the output is limited to the 8 color palette.
func rgbaFrom565(dst, src []byte, full bool) {
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, g, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		if !full {
			r, g, b = rgb3(r), rgb3(g), rgb3(b)
		}
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = g
		dst[j+2] = b
		dst[j+3] = 0xFF
	}
}
