// Package vram draws single pixels and lines into an RGB565 framebuffer and
// flushes them to the panel.
package vram

import (
	"errors"
	"fmt"

	"fractals/hal"
)

// ErrPixelFormat is returned for framebuffers that are not RGB565.
var ErrPixelFormat = errors.New("vram: framebuffer is not RGB565")

// VRAM addresses a framebuffer one pixel at a time.
//
// Out-of-range coordinates are dropped on write and read back as black. In
// strict mode they panic instead, which is how tests catch callers that walk
// off the buffer.
type VRAM struct {
	fb     hal.Framebuffer
	buf    []byte
	stride int
	w      int
	h      int
	strict bool
}

// New wraps fb.
func New(fb hal.Framebuffer) (*VRAM, error) {
	if fb == nil {
		return nil, errors.New("vram: nil framebuffer")
	}
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, ErrPixelFormat
	}
	buf := fb.Buffer()
	if buf == nil || fb.Width() <= 0 || fb.Height() <= 0 {
		return nil, errors.New("vram: framebuffer has no buffer")
	}
	return &VRAM{
		fb:     fb,
		buf:    buf,
		stride: fb.StrideBytes(),
		w:      fb.Width(),
		h:      fb.Height(),
	}, nil
}

// SetStrict switches out-of-range access between dropping and panicking.
func (v *VRAM) SetStrict(on bool) { v.strict = on }

func (v *VRAM) Width() int  { return v.w }
func (v *VRAM) Height() int { return v.h }

// InBounds reports whether (x, y) addresses a pixel.
func (v *VRAM) InBounds(x, y int) bool {
	return x >= 0 && x < v.w && y >= 0 && y < v.h
}

func (v *VRAM) offset(x, y int) (int, bool) {
	if !v.InBounds(x, y) {
		if v.strict {
			panic(fmt.Sprintf("vram: pixel (%d, %d) outside %dx%d", x, y, v.w, v.h))
		}
		return 0, false
	}
	return y*v.stride + x*2, true
}

// SetPixel writes one RGB565 pixel.
func (v *VRAM) SetPixel(x, y int, c uint16) {
	off, ok := v.offset(x, y)
	if !ok {
		return
	}
	v.buf[off] = byte(c)
	v.buf[off+1] = byte(c >> 8)
}

// Pixel reads one RGB565 pixel.
func (v *VRAM) Pixel(x, y int) uint16 {
	off, ok := v.offset(x, y)
	if !ok {
		return 0
	}
	return uint16(v.buf[off]) | uint16(v.buf[off+1])<<8
}

// Clear fills the whole buffer.
func (v *VRAM) Clear(c uint16) {
	lo := byte(c)
	hi := byte(c >> 8)
	for i := 0; i+1 < len(v.buf); i += 2 {
		v.buf[i] = lo
		v.buf[i+1] = hi
	}
}

// FillRect fills the clipped rectangle at (x0, y0) of size w×h.
func (v *VRAM) FillRect(x0, y0, w, h int, c uint16) {
	x1 := min(x0+w, v.w)
	y1 := min(y0+h, v.h)
	x0 = max(x0, 0)
	y0 = max(y0, 0)
	for y := y0; y < y1; y++ {
		row := y * v.stride
		for x := x0; x < x1; x++ {
			v.buf[row+x*2] = byte(c)
			v.buf[row+x*2+1] = byte(c >> 8)
		}
	}
}

// Flush presents the whole buffer.
func (v *VRAM) Flush() error {
	return v.fb.Present()
}

// FlushRows presents rows y0..y1 (inclusive). Framebuffers without partial
// present get a full one.
func (v *VRAM) FlushRows(y0, y1 int) error {
	if rp, ok := v.fb.(hal.RowPresenter); ok {
		return rp.PresentRows(y0, y1)
	}
	return v.fb.Present()
}
