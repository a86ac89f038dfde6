package logger

import (
	"fmt"

	"fractals/kernel"
)

// Log sends a log line to the logger service.
//
// The call is best-effort: it drops the line when the queue is full and
// reports false.
func Log(sys *kernel.System, from kernel.Endpoint, line string) bool {
	if sys == nil {
		return false
	}
	return sys.TrySend(from, kernel.EPLogger, kernel.MsgLog, []byte(line))
}

// Logf formats and sends a log line.
func Logf(sys *kernel.System, from kernel.Endpoint, format string, args ...any) bool {
	return Log(sys, from, fmt.Sprintf(format, args...))
}
