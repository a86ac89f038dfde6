//go:build !tinygo

package hal

import "sync"

// hostFramebuffer keeps two copies of the screen: buf is the VRAM the OS draws
// into and front is what the window shows. Present and PresentRows copy from
// the first to the second.
type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
	front  []byte
	full   bool
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
		front:  make([]byte, stride*height),
		full:   true,
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front, f.buf)
	return nil
}

func (f *hostFramebuffer) PresentRows(y0, y1 int) error {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if y0 < 0 {
		y0 = 0
	}
	if y1 >= f.height {
		y1 = f.height - 1
	}
	if y0 > y1 {
		return nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	lo := y0 * f.stride
	hi := (y1 + 1) * f.stride
	copy(f.front[lo:hi], f.buf[lo:hi])
	return nil
}

func (f *hostFramebuffer) SetFullColor(on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.full = on
}

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// snapshotRGBA writes the presented image into dst as RGBA.
func (f *hostFramebuffer) snapshotRGBA(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rgbaFrom565(dst, f.front, f.full)
}
