// Package fractals is the explorer application: a menu, a settings page, an
// info page and the Mandelbrot view with its orbit tracer.
package fractals

import (
	"context"
	"errors"
	"fmt"

	"fractals/fxcg/fractal"
	"fractals/fxcg/logger"
	"fractals/fxcg/mandel"
	"fractals/fxcg/vram"
	"fractals/hal"
	"fractals/kernel"
)

// ErrQuit is returned by Run when the user leaves the application from the
// menu.
var ErrQuit = errors.New("fractals: quit")

type screen uint8

const (
	screenMenu screen = iota
	screenSettings
	screenInfo
	screenMandel
)

func (s screen) String() string {
	switch s {
	case screenMenu:
		return "menu"
	case screenSettings:
		return "settings"
	case screenInfo:
		return "info"
	case screenMandel:
		return "mandelbrot"
	default:
		return "unknown"
	}
}

type Task struct {
	disp hal.Display
	in   hal.Input
	sys  *kernel.System

	fb   hal.Framebuffer
	v    *vram.VRAM
	text fbDisplay

	cfg fractal.Config
	r   *mandel.Renderer
	tr  *mandel.Tracer

	screen screen
	spin   int

	// Iteration cap entry on the settings page.
	entering bool
	entry    []rune
}

func New(disp hal.Display, in hal.Input, sys *kernel.System, cfg fractal.Config) *Task {
	return &Task{disp: disp, in: in, sys: sys, cfg: cfg}
}

// Config returns the current settings.
func (t *Task) Config() fractal.Config { return t.cfg }

func (t *Task) init() error {
	if t.disp == nil {
		return errors.New("fractals: no display")
	}
	t.fb = t.disp.Framebuffer()
	if t.fb == nil {
		return errors.New("fractals: no framebuffer")
	}
	v, err := vram.New(t.fb)
	if err != nil {
		return fmt.Errorf("fractals: %w", err)
	}
	t.v = v
	t.text = fbDisplay{v: v}

	t.r = mandel.NewRenderer(v, &t.cfg)
	t.r.Progress = t.progress
	t.tr = mandel.NewTracer(t.r)
	return nil
}

// Run shows the menu and handles key presses until ctx is done, the keyboard
// closes, or the user quits.
func (t *Task) Run(ctx context.Context) error {
	if err := t.init(); err != nil {
		return err
	}
	if t.in == nil || t.in.Keyboard() == nil {
		return errors.New("fractals: no keyboard")
	}
	events := t.in.Keyboard().Events()

	t.logf("fractals: start %s", t.cfg)
	if err := t.showMenu(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !ev.Press {
				continue
			}
			if err := t.handleKey(ev); err != nil {
				return err
			}
		}
	}
}

func (t *Task) logf(format string, args ...any) {
	logger.Logf(t.sys, kernel.EPKernel, format, args...)
}

func (t *Task) handleKey(ev hal.KeyEvent) error {
	switch t.screen {
	case screenMenu:
		return t.menuKey(ev)
	case screenSettings:
		return t.settingsKey(ev)
	case screenInfo:
		return t.infoKey(ev)
	case screenMandel:
		return t.mandelKey(ev)
	}
	return nil
}

func (t *Task) menuKey(ev hal.KeyEvent) error {
	switch ev.Code {
	case hal.KeyF1:
		return t.showMandel()
	case hal.KeyF6, hal.KeyRight:
		return t.showSettings()
	case hal.KeyEnter:
		t.logf("fractals: quit")
		return ErrQuit
	}
	return nil
}

func (t *Task) settingsKey(ev hal.KeyEvent) error {
	if t.entering {
		return t.entryKey(ev)
	}

	switch ev.Code {
	case hal.KeyF1:
		t.cfg.Trace = !t.cfg.Trace
		return t.line(1, traceLine(t.cfg))
	case hal.KeyF2:
		t.entering = true
		t.entry = t.entry[:0]
		return t.line(2, entryLine(t.entry))
	case hal.KeyF3:
		t.cfg.LiveRender = !t.cfg.LiveRender
		return t.line(3, liveLine(t.cfg))
	case hal.KeyF4:
		t.cfg.Axis = !t.cfg.Axis
		return t.line(4, axisLine(t.cfg))
	case hal.KeyF5:
		t.cfg.AdvancedColour = !t.cfg.AdvancedColour
		t.applyColorMode()
		if err := t.line(5, colourLine(t.cfg)); err != nil {
			return err
		}
		// The panel mode change affects every pixel already shown.
		return t.v.Flush()
	case hal.KeyF6, hal.KeyRight:
		return t.showInfo()
	case hal.KeyEscape, hal.KeyLeft:
		return t.showMenu()
	}
	return nil
}

// entryKey collects up to two digits for the iteration cap. Enter ends the
// entry early; every other key is ignored until it ends.
func (t *Task) entryKey(ev hal.KeyEvent) error {
	switch {
	case ev.Code == hal.KeyEnter:
		return t.finishEntry()
	case ev.Code == hal.KeyUnknown && ev.Rune >= '0' && ev.Rune <= '9':
		t.entry = append(t.entry, ev.Rune)
		if len(t.entry) == 2 {
			return t.finishEntry()
		}
		return t.line(2, entryLine(t.entry))
	}
	return nil
}

func (t *Task) finishEntry() error {
	t.entering = false
	n := 0
	for _, r := range t.entry {
		n = n*10 + int(r-'0')
	}
	if t.cfg.SetMaxIterations(n) {
		t.logf("fractals: iterations %d", n)
	} else {
		t.logf("fractals: iterations %d out of range, using %d", n, t.cfg.MaxIterations)
	}
	return t.line(2, itersLine(t.cfg))
}

func (t *Task) infoKey(ev hal.KeyEvent) error {
	switch ev.Code {
	case hal.KeyEscape:
		return t.showMenu()
	case hal.KeyLeft:
		return t.showSettings()
	}
	return nil
}

func (t *Task) mandelKey(ev hal.KeyEvent) error {
	if t.tr.State() == mandel.StateIdle {
		if ev.Code == hal.KeyEscape {
			return t.showMenu()
		}
		return nil
	}

	a := actionFor(ev.Code)
	before := t.tr.State()
	exit, err := t.tr.Handle(a)
	if err != nil {
		return err
	}
	if exit {
		return t.showMenu()
	}
	if before == mandel.StateCursor && t.tr.State() == mandel.StateTraced {
		x, y := t.tr.Cursor()
		c := t.r.Plane().Param(x, y)
		t.logf("fractals: trace (%d, %d) c=%.4f%+.4fi segments=%d", x, y, c.Re, c.Im, t.tr.Segments())
	}
	return nil
}

func actionFor(k hal.KeyCode) mandel.Action {
	switch k {
	case hal.KeyUp:
		return mandel.ActionUp
	case hal.KeyDown:
		return mandel.ActionDown
	case hal.KeyLeft:
		return mandel.ActionLeft
	case hal.KeyRight:
		return mandel.ActionRight
	case hal.KeyEnter:
		return mandel.ActionConfirm
	case hal.KeyEscape:
		return mandel.ActionExit
	default:
		return mandel.ActionNone
	}
}

func (t *Task) applyColorMode() {
	if cm, ok := t.fb.(hal.ColorModer); ok {
		cm.SetFullColor(t.cfg.AdvancedColour)
	}
}
