//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64

	// Script is fed to the keyboard one key at a time. Each key is only
	// handed over when the OS is blocked reading input, so a key typed after
	// F1 arrives once the render has finished.
	Script []KeyEvent

	// Snapshot, when set, receives the presented framebuffer (BMP) when the
	// run ends normally.
	Snapshot string
}

// RunHeadless runs the OS without opening a window.
//
// With a script the run ends once every key was consumed and the OS is idle
// again; otherwise it ends after Ticks steps (0 = run until ctx is done).
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := newHost()
	// Unbuffered: a send completes only while the OS waits on the channel.
	h.kbd = &hostKeyboard{ch: make(chan KeyEvent)}
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var script []KeyEvent
	if len(cfg.Script) > 0 {
		// The trailing release is ignored by the OS; its delivery means the
		// last real key has been fully handled.
		script = append(append(script, cfg.Script...), KeyEvent{})
	}

	var tick uint64
	for {
		var out chan<- KeyEvent
		var next KeyEvent
		if len(script) > 0 {
			out = h.kbd.ch
			next = script[0]
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case out <- next:
			script = script[1:]
			if len(script) == 0 {
				return finishHeadless(h, cfg)
			}
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if len(cfg.Script) == 0 && cfg.Ticks > 0 && tick >= cfg.Ticks {
				return finishHeadless(h, cfg)
			}
		}
	}
}

func finishHeadless(h *hostHAL, cfg HeadlessConfig) error {
	if cfg.Snapshot == "" {
		return nil
	}
	return writeSnapshot(cfg.Snapshot, h.fb)
}
