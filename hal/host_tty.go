//go:build !tinygo

package hal

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
)

// RunTerminal shows the framebuffer in the terminal using half-block cells and
// forwards key presses. It blocks until Ctrl-C.
//
// Log output is held back while the screen is active and written to stderr
// afterwards.
func RunTerminal(newApp func(HAL) func() error) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	var logs bytes.Buffer
	h := newHost()
	h.logger.setOutput(&logs)
	defer func() {
		s.Fini()
		h.logger.setOutput(os.Stderr)
		os.Stderr.Write(logs.Bytes())
	}()

	step := newApp(h)

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	t := time.NewTicker(time.Second / 30)
	defer t.Stop()

	pix := make([]byte, h.fb.width*h.fb.height*4)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if kev, ok := ttyKeyEvent(ev); ok {
					select {
					case h.kbd.ch <- kev:
					default:
					}
				}
			case *tcell.EventResize:
				s.Sync()
			}

		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			h.fb.snapshotRGBA(pix)
			cols, rows := s.Size()
			drawTTY(s, pix, h.fb.width, h.fb.height, cols, rows)
			s.Show()
		}
	}
}

func ttyKeyEvent(ev *tcell.EventKey) (KeyEvent, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyEvent{Code: KeyUp, Press: true}, true
	case tcell.KeyDown:
		return KeyEvent{Code: KeyDown, Press: true}, true
	case tcell.KeyLeft:
		return KeyEvent{Code: KeyLeft, Press: true}, true
	case tcell.KeyRight:
		return KeyEvent{Code: KeyRight, Press: true}, true
	case tcell.KeyEnter:
		return KeyEvent{Code: KeyEnter, Press: true}, true
	case tcell.KeyEscape:
		return KeyEvent{Code: KeyEscape, Press: true}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyEvent{Code: KeyBackspace, Press: true}, true
	case tcell.KeyF1:
		return KeyEvent{Code: KeyF1, Press: true}, true
	case tcell.KeyF2:
		return KeyEvent{Code: KeyF2, Press: true}, true
	case tcell.KeyF3:
		return KeyEvent{Code: KeyF3, Press: true}, true
	case tcell.KeyF4:
		return KeyEvent{Code: KeyF4, Press: true}, true
	case tcell.KeyF5:
		return KeyEvent{Code: KeyF5, Press: true}, true
	case tcell.KeyF6:
		return KeyEvent{Code: KeyF6, Press: true}, true
	case tcell.KeyRune:
		return KeyEvent{Press: true, Rune: ev.Rune()}, true
	}
	return KeyEvent{}, false
}

// ttyStep returns the pixel step so that a w×h image fits into cols×rows
// half-block cells.
func ttyStep(w, h, cols, rows int) int {
	if cols <= 0 || rows <= 0 {
		return 0
	}
	step := 1
	for (w+step-1)/step > cols || (h+2*step-1)/(2*step) > rows {
		step++
	}
	return step
}

func drawTTY(s tcell.Screen, pix []byte, w, h, cols, rows int) {
	step := ttyStep(w, h, cols, rows)
	if step == 0 {
		return
	}
	s.Clear()
	at := func(x, y int) tcell.Color {
		if y >= h {
			return tcell.ColorBlack
		}
		i := (y*w + x) * 4
		return tcell.NewRGBColor(int32(pix[i]), int32(pix[i+1]), int32(pix[i+2]))
	}
	for cy := 0; cy*2*step < h; cy++ {
		for cx := 0; cx*step < w; cx++ {
			x := cx * step
			top := at(x, cy*2*step)
			bottom := at(x, cy*2*step+step)
			s.SetContent(cx, cy, '▀', nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}
}
