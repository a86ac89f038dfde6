package mandel

import "fractals/fxcg/fractal"

// State is the tracer's mode.
type State uint8

const (
	StateIdle State = iota
	StateCursor
	StateTraced
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCursor:
		return "cursor"
	case StateTraced:
		return "traced"
	default:
		return "unknown"
	}
}

// Action is the tracer's input vocabulary.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm
	ActionExit
)

// Tracer moves a one-pixel cursor over the rendered field and overlays the
// orbit of the point under it.
//
// A trace is removed by replaying the same orbit and erasing each segment,
// so nothing under the trace is ever saved. This only restores the right
// pixels because the field was rendered by the same Renderer.
type Tracer struct {
	r *Renderer

	state State
	x     int
	y     int
	under uint16

	segments int
}

// NewTracer returns an idle tracer drawing through r.
func NewTracer(r *Renderer) *Tracer {
	return &Tracer{r: r}
}

func (t *Tracer) State() State { return t.state }

// Cursor returns the cursor position.
func (t *Tracer) Cursor() (x, y int) { return t.x, t.y }

// Segments returns the number of segments of the last trace drawn.
func (t *Tracer) Segments() int { return t.segments }

// Begin places the cursor on the plane origin.
func (t *Tracer) Begin() error {
	t.x, t.y = t.r.plane.Origin()
	t.under = t.r.s.Pixel(t.x, t.y)
	t.r.s.SetPixel(t.x, t.y, ColorMarker)
	t.state = StateCursor
	return t.r.s.FlushRows(t.y, t.y)
}

// End leaves trace mode. Whatever is on screen stays there.
func (t *Tracer) End() {
	t.state = StateIdle
	t.segments = 0
}

// Handle applies one action and reports whether the tracer should be left.
func (t *Tracer) Handle(a Action) (exit bool, err error) {
	if a == ActionExit {
		t.End()
		return true, nil
	}

	switch t.state {
	case StateCursor:
		switch a {
		case ActionUp:
			return false, t.Move(0, -1)
		case ActionDown:
			return false, t.Move(0, 1)
		case ActionLeft:
			return false, t.Move(-1, 0)
		case ActionRight:
			return false, t.Move(1, 0)
		case ActionConfirm:
			return false, t.Confirm()
		}

	case StateTraced:
		switch a {
		case ActionUp, ActionDown, ActionLeft, ActionRight, ActionConfirm:
			return false, t.Dismiss()
		}
	}
	return false, nil
}

// Move shifts the cursor by (dx, dy), staying inside the field. The pixel the
// cursor leaves gets its saved color back.
func (t *Tracer) Move(dx, dy int) error {
	if t.state != StateCursor {
		return nil
	}
	nx := min(max(t.x+dx, t.r.field.Min.X), t.r.field.Max.X-1)
	ny := min(max(t.y+dy, t.r.field.Min.Y), t.r.field.Max.Y-1)
	if nx == t.x && ny == t.y {
		return nil
	}

	s := t.r.s
	s.SetPixel(t.x, t.y, t.under)
	oy := t.y
	t.x, t.y = nx, ny
	t.under = s.Pixel(t.x, t.y)
	s.SetPixel(t.x, t.y, ColorMarker)
	return s.FlushRows(min(oy, t.y), max(oy, t.y))
}

// Confirm draws the orbit of the point under the cursor.
func (t *Tracer) Confirm() error {
	if t.state != StateCursor {
		return nil
	}
	t.segments = t.DrawTrace(t.x, t.y)
	t.state = StateTraced
	return t.r.s.Flush()
}

// Dismiss removes the current trace and returns to cursor mode.
func (t *Tracer) Dismiss() error {
	if t.state != StateTraced {
		return nil
	}
	t.EraseTrace(t.x, t.y)
	t.r.s.SetPixel(t.x, t.y, ColorMarker)
	t.state = StateCursor
	return t.r.s.Flush()
}

func (t *Tracer) orbit(x, y int) fractal.Orbit {
	return fractal.Orbit{C: t.r.plane.Param(x, y), Max: t.r.cfg.MaxIterations}
}

// DrawTrace draws the orbit of pixel (x, y): one line per step from z(n) to
// z(n+1), with a marker on both ends. It returns the number of segments.
func (t *Tracer) DrawTrace(x, y int) int {
	p := t.r.plane
	n := 0
	for s := range t.orbit(x, y).Steps() {
		x1, y1 := p.Pixel(s.From)
		x2, y2 := p.Pixel(s.To)
		t.r.DrawLine(x1, y1, x2, y2, ColorTrace)
		t.r.SetPixel(x1, y1, ColorMarker)
		t.r.SetPixel(x2, y2, ColorMarker)
		n++
	}
	return n
}

// EraseTrace replays the orbit of pixel (x, y) and erases every segment
// DrawTrace drew for it.
func (t *Tracer) EraseTrace(x, y int) {
	p := t.r.plane
	for s := range t.orbit(x, y).Steps() {
		x1, y1 := p.Pixel(s.From)
		x2, y2 := p.Pixel(s.To)
		t.r.EraseLine(x1, y1, x2, y2)
	}
}
