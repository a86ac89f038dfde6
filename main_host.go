//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"fractals/app"
	"fractals/fxcg/fractal"
	"fractals/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	var tty bool
	var keys string
	fcfg := fractal.DefaultConfig()

	flag.IntVar(&fcfg.MaxIterations, "iters", fcfg.MaxIterations, "Iteration cap (10..99).")
	flag.BoolVar(&fcfg.Trace, "trace", fcfg.Trace, "Enter orbit trace mode after rendering.")
	flag.BoolVar(&fcfg.LiveRender, "live", fcfg.LiveRender, "Show each row as soon as it is rendered.")
	flag.BoolVar(&fcfg.Axis, "axis", fcfg.Axis, "Draw the axis overlay.")
	flag.BoolVar(&fcfg.AdvancedColour, "colour", fcfg.AdvancedColour, "Full 16-bit color (off = 8 color mode).")
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.BoolVar(&tty, "tty", false, "Draw in the terminal instead of a window.")
	flag.StringVar(&keys, "keys", "", "Headless key script, e.g. \"F1,Left,Enter\".")
	flag.StringVar(&cfg.Snapshot, "snapshot", "", "Write the final headless screen to this BMP file.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.Parse()

	if n := fcfg.MaxIterations; !fcfg.SetMaxIterations(n) {
		fmt.Fprintf(os.Stderr, "iters %d out of range, using %d\n", n, fcfg.MaxIterations)
	}
	if keys != "" {
		script, err := hal.ParseKeys(keys)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		cfg.Script = script
	}

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, app.Config{Fractal: fcfg})
	}

	var err error
	switch {
	case cfg.Enabled:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, newApp, cfg)
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	case tty:
		err = hal.RunTerminal(newApp)
	default:
		err = hal.RunWindow(newApp)
	}
	if err != nil && !errors.Is(err, app.ErrQuit) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
