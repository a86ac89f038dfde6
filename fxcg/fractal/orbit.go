package fractal

import "iter"

// EscapeRadius2 is the squared escape radius.
const EscapeRadius2 = 4.0

// Step is one application of the recurrence, From = z(N) and To = z(N+1).
type Step struct {
	N    int
	From Complex
	To   Complex
}

// Orbit is the sequence z(0) = 0, z(n+1) = z(n)² + C, cut at Max steps or at
// the first z with |z|² > 4.
type Orbit struct {
	C   Complex
	Max int
}

// Steps yields the orbit one step at a time. The bound is checked before each
// step and the step is counted after it, so the number of yielded steps is the
// escape-time count. Every range over the result starts again from z = 0.
func (o Orbit) Steps() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		var z Complex
		for n := 0; n < o.Max && z.SquaredAbs() <= EscapeRadius2; n++ {
			next := z.Step(o.C)
			if !yield(Step{N: n, From: z, To: next}) {
				return
			}
			z = next
		}
	}
}

// Escape returns the number of steps the orbit of c takes before escaping,
// or max when it never escapes.
func Escape(c Complex, max int) int {
	n := 0
	for range (Orbit{C: c, Max: max}).Steps() {
		n++
	}
	return n
}
