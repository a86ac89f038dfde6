// Package app boots the kernel, the logger service and the fractals task on
// top of a HAL.
package app

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"fractals/fxcg/fractal"
	"fractals/fxcg/logger"
	"fractals/fxcg/tasks/fractals"
	"fractals/hal"
	"fractals/internal/buildinfo"
	"fractals/kernel"
)

// ErrQuit is returned by the step function once the user quit from the menu.
var ErrQuit = fractals.ErrQuit

type Config struct {
	Fractal fractal.Config
}

func DefaultConfig() Config {
	return Config{Fractal: fractal.DefaultConfig()}
}

type system struct {
	h   hal.HAL
	k   *kernel.System
	log *logger.Service

	cancel context.CancelFunc
	done   chan error

	mu  sync.Mutex
	err error
}

// New initializes and starts the OS with default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

// NewWithConfig starts the OS and returns its step function. The host calls
// step once per tick; it returns nil while the OS runs and the reason it
// stopped afterwards.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s := newSystem(h)
	task := fractals.New(h.Display(), h.Input(), s.k, cfg.Fractal)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go func() { _ = s.log.Run(ctx) }()

	logger.Logf(s.k, kernel.EPKernel, "boot: fractals %s", buildinfo.Long())
	go s.runTask(ctx, task.Run)
	return s.step
}

func newSystem(h hal.HAL) *system {
	k := kernel.NewSystem()
	return &system{
		h:    h,
		k:    k,
		log:  logger.New(h.Logger(), k),
		done: make(chan error, 1),
	}
}

// runTask runs the task until it returns and reports the result to step. A
// panic is logged and shown on the display instead of taking the host down.
func (s *system) runTask(ctx context.Context, run func(context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			showPanic(s.h, r, debug.Stack())
			s.done <- fmt.Errorf("app: task panic: %v", r)
		}
	}()
	err := run(ctx)
	if err == nil {
		err = ErrQuit
	}
	s.done <- err
}

func (s *system) step() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	select {
	case err := <-s.done:
		s.err = err
		if s.cancel != nil {
			s.cancel()
		}
		s.log.Drain()
		return err
	default:
		return nil
	}
}
