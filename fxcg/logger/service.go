// Package logger moves log lines from tasks to the HAL logger through the
// kernel's logger endpoint.
package logger

import (
	"context"

	"fractals/hal"
	"fractals/kernel"
)

type Service struct {
	log hal.Logger
	sys *kernel.System
}

func New(log hal.Logger, sys *kernel.System) *Service {
	return &Service{log: log, sys: sys}
}

// Run writes every log message sent to EPLogger until ctx is done.
func (s *Service) Run(ctx context.Context) error {
	for {
		msg, err := s.sys.Recv(ctx, kernel.EPLogger)
		if err != nil {
			return err
		}
		s.write(msg)
	}
}

// Drain writes whatever is queued without waiting.
func (s *Service) Drain() {
	for {
		msg, ok := s.sys.TryRecv(kernel.EPLogger)
		if !ok {
			return
		}
		s.write(msg)
	}
}

func (s *Service) write(msg kernel.Message) {
	if s.log == nil || msg.Kind != kernel.MsgLog {
		return
	}
	s.log.WriteLineBytes(msg.Payload())
}
