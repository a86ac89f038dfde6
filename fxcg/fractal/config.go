package fractal

import "fmt"

// Iteration cap limits.
const (
	IterationsMin     = 10
	IterationsMax     = 99
	IterationsDefault = 20
)

// Config holds the render settings. It is owned by the application and passed
// by pointer to the renderer and the tracer.
type Config struct {
	MaxIterations int

	Trace          bool
	LiveRender     bool
	Axis           bool
	AdvancedColour bool
}

// DefaultConfig returns the power-on settings.
func DefaultConfig() Config {
	return Config{
		MaxIterations:  IterationsDefault,
		Trace:          true,
		LiveRender:     true,
		Axis:           false,
		AdvancedColour: true,
	}
}

// SetMaxIterations stores n if it is within [IterationsMin, IterationsMax] and
// otherwise resets the cap to IterationsDefault. It reports whether n was kept.
func (c *Config) SetMaxIterations(n int) bool {
	if n < IterationsMin || n > IterationsMax {
		c.MaxIterations = IterationsDefault
		return false
	}
	c.MaxIterations = n
	return true
}

func (c Config) String() string {
	return fmt.Sprintf("iters=%d trace=%s live=%s axis=%s colour=%s",
		c.MaxIterations, onOff(c.Trace), onOff(c.LiveRender), onOff(c.Axis), onOff(c.AdvancedColour))
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
