package fractals

import (
	"image/color"

	"fractals/fxcg/fractal"
	"fractals/fxcg/vram"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Screen layout: eight text rows of 24 px below the header band, columns of
// 18 px, the way the calculator's PrintXY places text.
const (
	rowHeight   = 24
	colWidth    = 18
	baseline    = 16
	spinnerSize = 24
)

const (
	colorBackground uint16 = 0xFFFF
	colorHeader     uint16 = 0xE73C
)

var (
	textColor = color.RGBA{A: 0xFF}
	textFont  = &proggy.TinySZ8pt7b
)

var spinnerFrames = [...]string{"|", "/", "-", "\\"}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

// fbDisplay lets tinyfont draw into VRAM.
type fbDisplay struct {
	v *vram.VRAM
}

var _ drivers.Displayer = fbDisplay{}

func (d fbDisplay) Size() (x, y int16) {
	return int16(d.v.Width()), int16(d.v.Height())
}

func (d fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.v.SetPixel(int(x), int(y), rgb565From888(c.R, c.G, c.B))
}

func (d fbDisplay) Display() error { return nil }

func rowTop(row int) int { return fractal.HeaderRows + (row-1)*rowHeight }

// print writes s with its first character in text column col of text row row
// (both 1-based).
func (t *Task) print(col, row int, s string) {
	tinyfont.WriteLine(t.text, textFont, int16((col-1)*colWidth), int16(rowTop(row)+baseline), s, textColor)
}

// line replaces text row row with s and pushes the row to the panel.
func (t *Task) line(row int, s string) error {
	y := rowTop(row)
	t.v.FillRect(0, y, fractal.Width, rowHeight, colorBackground)
	t.print(1, row, s)
	return t.v.FlushRows(y, y+rowHeight-1)
}

// clear blanks the screen and draws the header band with title.
func (t *Task) clear(title string) {
	t.v.Clear(colorBackground)
	t.v.FillRect(0, 0, fractal.Width, fractal.HeaderRows, colorHeader)
	tinyfont.WriteLine(t.text, textFont, 6, baseline, title, textColor)
}

func (t *Task) drawSpinner(frame string) {
	x := fractal.Width - spinnerSize
	t.v.FillRect(x, 0, spinnerSize, fractal.HeaderRows, colorHeader)
	if frame != "" {
		tinyfont.WriteLine(t.text, textFont, int16(x+8), baseline, frame, textColor)
	}
}

// progress advances the header spinner while the field renders.
func (t *Task) progress(y int) {
	if (y-fractal.Field.Min.Y)%8 != 0 {
		return
	}
	t.spin = (t.spin + 1) % len(spinnerFrames)
	t.drawSpinner(spinnerFrames[t.spin])
	_ = t.v.FlushRows(0, fractal.HeaderRows-1)
}
