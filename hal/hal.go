package hal

import "errors"

// Logger is the device's line-oriented log sink (stdout on the host).
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
//
// Buffer is the drawing surface (VRAM). Nothing drawn into it is visible until
// Present copies it to the panel.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// RowPresenter is implemented by framebuffers that can push a band of rows
// (inclusive) to the panel without presenting the whole buffer.
type RowPresenter interface {
	PresentRows(y0, y1 int) error
}

// ColorModer is implemented by panels that can switch between full 16-bit
// color and the 8 color (3-bit) mode.
type ColorModer interface {
	SetFullColor(on bool)
}

// KeyCode names the keypad keys the explorer reacts to: arrows, EXE (Enter),
// EXIT (Escape) and the F1..F6 soft keys.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
)

// KeyEvent is a keyboard event. Text input arrives with Code == KeyUnknown and
// the character in Rune.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard delivers keypad events. Receivers block on the channel, the way
// the calculator's GetKey does.
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display gives access to the 384×216 panel.
type Display interface {
	Framebuffer() Framebuffer
}

// Input gives access to the keypad.
type Input interface {
	Keyboard() Keyboard
}

// HAL is everything the explorer needs from the device.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}
