package vram

import (
	"errors"
	"testing"

	"fractals/hal"
)

type testFB struct {
	w, h     int
	format   hal.PixelFormat
	buf      []byte
	presents int
}

func newTestFB(w, h int) *testFB {
	return &testFB{w: w, h: h, format: hal.PixelFormatRGB565, buf: make([]byte, w*h*2)}
}

func (f *testFB) Width() int               { return f.w }
func (f *testFB) Height() int              { return f.h }
func (f *testFB) Format() hal.PixelFormat  { return f.format }
func (f *testFB) StrideBytes() int         { return f.w * 2 }
func (f *testFB) Buffer() []byte           { return f.buf }
func (f *testFB) ClearRGB(r, g, b uint8)   {}
func (f *testFB) Present() error           { f.presents++; return nil }

type rowFB struct {
	*testFB
	rows [][2]int
}

func (f *rowFB) PresentRows(y0, y1 int) error {
	f.rows = append(f.rows, [2]int{y0, y1})
	return nil
}

func newTestVRAM(t *testing.T, w, h int) *VRAM {
	t.Helper()
	v, err := New(newTestFB(w, h))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	v.SetStrict(true)
	return v
}

func TestNewRejectsFormat(t *testing.T) {
	fb := newTestFB(4, 4)
	fb.format = 0
	if _, err := New(fb); !errors.Is(err, ErrPixelFormat) {
		t.Fatalf("New error = %v, want ErrPixelFormat", err)
	}
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil framebuffer")
	}
}

func TestSetPixelLittleEndian(t *testing.T) {
	fb := newTestFB(3, 2)
	v, _ := New(fb)
	v.SetPixel(2, 1, 0xF800)
	off := 1*6 + 2*2
	if fb.buf[off] != 0x00 || fb.buf[off+1] != 0xF8 {
		t.Fatalf("bytes = %#02x %#02x, want 00 f8", fb.buf[off], fb.buf[off+1])
	}
	if got := v.Pixel(2, 1); got != 0xF800 {
		t.Fatalf("Pixel(2, 1) = %#04x, want 0xf800", got)
	}
}

func TestOutOfRangeDropped(t *testing.T) {
	v, _ := New(newTestFB(4, 4))
	v.SetPixel(-1, 0, 0xFFFF)
	v.SetPixel(4, 0, 0xFFFF)
	v.SetPixel(0, 99, 0xFFFF)
	if got := v.Pixel(-1, 0); got != 0 {
		t.Fatalf("Pixel(-1, 0) = %#04x, want 0", got)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if v.Pixel(x, y) != 0 {
				t.Fatalf("pixel (%d, %d) changed by an out-of-range write", x, y)
			}
		}
	}
}

func TestOutOfRangeStrictPanics(t *testing.T) {
	v := newTestVRAM(t, 4, 4)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic in strict mode")
		}
	}()
	v.SetPixel(4, 4, 1)
}

func TestDrawLineHorizontal(t *testing.T) {
	v := newTestVRAM(t, 8, 3)
	v.DrawLine(0, 0, 5, 0, 0x07E0)

	set := 0
	for y := 0; y < 3; y++ {
		for x := 0; x < 8; x++ {
			if v.Pixel(x, y) == 0 {
				continue
			}
			if y != 0 || x > 5 {
				t.Fatalf("unexpected pixel at (%d, %d)", x, y)
			}
			if v.Pixel(x, y) != 0x07E0 {
				t.Fatalf("pixel (%d, %d) = %#04x, want 0x07e0", x, y, v.Pixel(x, y))
			}
			set++
		}
	}
	if set != 6 {
		t.Fatalf("DrawLine(0,0,5,0) set %d pixels, want 6", set)
	}
}

func walk(x1, y1, x2, y2 int) [][2]int {
	var pts [][2]int
	WalkLine(x1, y1, x2, y2, func(x, y int) {
		pts = append(pts, [2]int{x, y})
	})
	return pts
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestWalkLineAllOctants(t *testing.T) {
	ends := [][2]int{
		{10, 0}, {10, 3}, {10, 10}, {3, 10}, {0, 10}, {-3, 10}, {-10, 10}, {-10, 3},
		{-10, 0}, {-10, -3}, {-10, -10}, {-3, -10}, {0, -10}, {3, -10}, {10, -10}, {10, -3},
		{0, 0}, {1, 1}, {7, 2}, {-2, -7},
	}
	for _, e := range ends {
		pts := walk(0, 0, e[0], e[1])
		want := max(abs(e[0]), abs(e[1])) + 1
		if len(pts) != want {
			t.Fatalf("walk to %v visited %d pixels, want %d", e, len(pts), want)
		}
		if pts[0] != [2]int{0, 0} {
			t.Fatalf("walk to %v starts at %v", e, pts[0])
		}
		if pts[len(pts)-1] != e {
			t.Fatalf("walk to %v ends at %v", e, pts[len(pts)-1])
		}
		for i := 1; i < len(pts); i++ {
			if abs(pts[i][0]-pts[i-1][0]) > 1 || abs(pts[i][1]-pts[i-1][1]) > 1 {
				t.Fatalf("walk to %v jumps from %v to %v", e, pts[i-1], pts[i])
			}
		}
	}
}

func TestWalkLineDeterministic(t *testing.T) {
	a := walk(250, 112, 17, 201)
	b := walk(250, 112, 17, 201)
	if len(a) != len(b) {
		t.Fatalf("walk lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("walks differ at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestWalkLineTieBreak(t *testing.T) {
	// Exact half-way errors round toward the positive major direction only.
	got := walk(0, 0, 2, 1)
	want := [][2]int{{0, 0}, {1, 1}, {2, 1}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("walk(0,0,2,1)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	got = walk(2, 1, 0, 0)
	want = [][2]int{{2, 1}, {1, 1}, {0, 0}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("walk(2,1,0,0)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFillRectClips(t *testing.T) {
	v := newTestVRAM(t, 4, 4)
	v.FillRect(-2, 2, 10, 10, 0x1234)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := uint16(0)
			if y >= 2 {
				want = 0x1234
			}
			if got := v.Pixel(x, y); got != want {
				t.Fatalf("pixel (%d, %d) = %#04x, want %#04x", x, y, got, want)
			}
		}
	}
}

func TestClear(t *testing.T) {
	v := newTestVRAM(t, 3, 3)
	v.Clear(0xFFFF)
	if got := v.Pixel(2, 2); got != 0xFFFF {
		t.Fatalf("Pixel(2, 2) = %#04x after Clear, want 0xffff", got)
	}
}

func TestFlushRows(t *testing.T) {
	fb := &rowFB{testFB: newTestFB(4, 4)}
	v, err := New(fb)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if err := v.FlushRows(1, 2); err != nil {
		t.Fatalf("FlushRows error: %v", err)
	}
	if len(fb.rows) != 1 || fb.rows[0] != [2]int{1, 2} {
		t.Fatalf("PresentRows calls = %v, want [[1 2]]", fb.rows)
	}
	if fb.presents != 0 {
		t.Fatalf("Present called %d times, want 0", fb.presents)
	}

	plain := newTestFB(4, 4)
	v, _ = New(plain)
	_ = v.FlushRows(0, 0)
	_ = v.Flush()
	if plain.presents != 2 {
		t.Fatalf("Present called %d times, want 2", plain.presents)
	}
}
