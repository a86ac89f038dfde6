package fractals

import (
	"fmt"

	"fractals/fxcg/fractal"
	"fractals/internal/buildinfo"
)

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}

func traceLine(c fractal.Config) string  { return "  F1: Trace = " + onOff(c.Trace) }
func itersLine(c fractal.Config) string  { return fmt.Sprintf("  F2: Max Iters = %d", c.MaxIterations) }
func liveLine(c fractal.Config) string   { return "  F3: Live Rdr = " + onOff(c.LiveRender) }
func axisLine(c fractal.Config) string   { return "  F4: Axes = " + onOff(c.Axis) }
func colourLine(c fractal.Config) string { return "  F5: Adv Col = " + onOff(c.AdvancedColour) }

func entryLine(digits []rune) string {
	return "  F2: Max Iters = " + string(digits) + "_"
}

func (t *Task) showMenu() error {
	t.screen = screenMenu
	t.entering = false
	t.tr.End()
	t.applyColorMode()

	t.clear("Menu")
	t.print(1, 1, "  F1: Mandelbrot")
	t.print(1, 8, "  F6: Settings ->")
	return t.v.Flush()
}

func (t *Task) showSettings() error {
	t.screen = screenSettings
	t.entering = false

	t.clear("Settings")
	t.print(1, 1, traceLine(t.cfg))
	t.print(1, 2, itersLine(t.cfg))
	t.print(1, 3, liveLine(t.cfg))
	t.print(1, 4, axisLine(t.cfg))
	t.print(1, 5, colourLine(t.cfg))
	t.print(1, 6, "  F6: Info ->")
	t.print(1, 8, "  EXIT: <- Menu")
	return t.v.Flush()
}

func (t *Task) showInfo() error {
	t.screen = screenInfo

	t.clear("Information")
	t.print(1, 1, "  Fractals")
	t.print(1, 2, "  Mandelbrot explorer")
	t.print(1, 4, "  Build:")
	t.print(1, 5, "  "+buildinfo.Short())
	t.print(1, 8, "  EXIT: <- Menu")
	return t.v.Flush()
}

// showMandel renders the field, then adds the axis and starts the tracer as
// configured.
func (t *Task) showMandel() error {
	t.screen = screenMandel
	t.applyColorMode()

	t.clear("Mandelbrot")
	if !t.cfg.LiveRender {
		t.print(7, 4, "  Rendering...")
	}
	if err := t.v.Flush(); err != nil {
		return err
	}

	start := t.sys.Ticks()
	if err := t.r.RenderField(); err != nil {
		return err
	}
	field := fractal.Field
	t.logf("fractals: rendered %dx%d %s in %dms", field.Dx(), field.Dy(), t.cfg, t.sys.Ticks()-start)

	t.drawSpinner("")
	if t.cfg.Axis {
		t.r.DrawAxis()
	}
	if err := t.v.Flush(); err != nil {
		return err
	}

	if t.cfg.Trace {
		return t.tr.Begin()
	}
	return nil
}
