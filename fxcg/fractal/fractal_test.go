package fractal

import "testing"

func TestEscapeOriginNeverEscapes(t *testing.T) {
	x, y := Screen.Origin()
	if x != 250 || y != 112 {
		t.Fatalf("Origin() = (%d, %d), want (250, 112)", x, y)
	}
	n := Screen.Iterate(x, y, 20)
	if n != 20 {
		t.Fatalf("Iterate(250, 112, 20) = %d, want 20", n)
	}
	if got := ColorFor(n, 20); got != InSet {
		t.Fatalf("ColorFor(20, 20) = %#04x, want %#04x", got, InSet)
	}
}

func TestEscapeOneDivergesQuickly(t *testing.T) {
	n := Screen.Iterate(250+95, 112, 20)
	if n >= 5 {
		t.Fatalf("Iterate(345, 112, 20) = %d, want < 5", n)
	}
	if n == 0 {
		t.Fatal("Iterate(345, 112, 20) = 0, the first step from z=0 is always taken")
	}
}

func TestEscapeDeterministic(t *testing.T) {
	for y := Field.Min.Y; y < Field.Max.Y; y += 7 {
		for x := Field.Min.X; x < Field.Max.X; x += 5 {
			a := Screen.Iterate(x, y, 37)
			b := Screen.Iterate(x, y, 37)
			if a != b {
				t.Fatalf("Iterate(%d, %d) not deterministic: %d then %d", x, y, a, b)
			}
		}
	}
}

func TestEscapeCountMatchesSteps(t *testing.T) {
	cases := []Complex{
		{},
		{Re: 1},
		{Re: -2},
		{Re: 0.3, Im: 0.5},
		{Re: -0.75, Im: 0.1},
		{Re: 2.5, Im: -1},
	}
	for _, c := range cases {
		o := Orbit{C: c, Max: 50}
		steps := 0
		last := -1
		for s := range o.Steps() {
			if s.N != last+1 {
				t.Fatalf("c=%v: step index %d after %d", c, s.N, last)
			}
			last = s.N
			steps++
		}
		if got := Escape(c, 50); got != steps {
			t.Fatalf("Escape(%v) = %d, orbit yielded %d steps", c, got, steps)
		}
	}
}

func TestOrbitRestartable(t *testing.T) {
	o := Orbit{C: Complex{Re: -0.12, Im: 0.74}, Max: 30}

	var first []Step
	for s := range o.Steps() {
		first = append(first, s)
	}
	i := 0
	for s := range o.Steps() {
		if i >= len(first) || s != first[i] {
			t.Fatalf("second pass diverged at step %d", i)
		}
		i++
	}
	if i != len(first) {
		t.Fatalf("second pass yielded %d steps, want %d", i, len(first))
	}
}

func TestOrbitStepsChain(t *testing.T) {
	c := Complex{Re: 0.25, Im: 0.5}
	prev := Complex{}
	for s := range (Orbit{C: c, Max: 20}).Steps() {
		if s.From != prev {
			t.Fatalf("step %d starts at %v, want %v", s.N, s.From, prev)
		}
		if s.To != s.From.Step(c) {
			t.Fatalf("step %d ends at %v, want %v", s.N, s.To, s.From.Step(c))
		}
		prev = s.To
	}
}

func TestOrbitZeroCapYieldsNothing(t *testing.T) {
	for range (Orbit{C: Complex{Re: 3}, Max: 0}).Steps() {
		t.Fatal("expected no steps with Max=0")
	}
	if got := Escape(Complex{Re: 3}, 0); got != 0 {
		t.Fatalf("Escape with max 0 = %d, want 0", got)
	}
}

func TestOrbitEarlyBreak(t *testing.T) {
	n := 0
	for range (Orbit{Max: 20}).Steps() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Fatalf("expected to stop after 3 steps, got %d", n)
	}
}

func TestColorForInSet(t *testing.T) {
	for cap := 1; cap <= IterationsMax; cap++ {
		if got := ColorFor(cap, cap); got != InSet {
			t.Fatalf("ColorFor(%d, %d) = %#04x, want %#04x", cap, cap, got, InSet)
		}
	}
}

func TestColorForMonotone(t *testing.T) {
	for _, cap := range []int{10, 20, 31, 64, 99} {
		prev := ColorFor(0, cap)
		for k := 0; k < cap; k++ {
			c := ColorFor(k, cap)
			if c&0x1F != 0x1F {
				t.Fatalf("ColorFor(%d, %d) = %#04x: blue channel not saturated", k, cap, c)
			}
			if c>>11 != 0 {
				t.Fatalf("ColorFor(%d, %d) = %#04x: red channel set", k, cap, c)
			}
			if c < prev {
				t.Fatalf("ColorFor(%d, %d) = %#04x < previous %#04x", k, cap, c, prev)
			}
			prev = c
		}
	}
}

func TestColorForValues(t *testing.T) {
	tests := []struct {
		n, max int
		want   uint16
	}{
		{0, 20, 0x001F},
		{1, 20, 0x001F | 1<<6},
		{10, 20, 0x001F | 15<<6},
		{19, 20, 0x001F | 29<<6},
		{98, 99, 0x001F | 30<<6},
	}
	for _, tt := range tests {
		if got := ColorFor(tt.n, tt.max); got != tt.want {
			t.Fatalf("ColorFor(%d, %d) = %#04x, want %#04x", tt.n, tt.max, got, tt.want)
		}
	}
}

func TestPlaneRoundTrip(t *testing.T) {
	for _, p := range [][2]int{{250, 112}, {0, 24}, {383, 215}, {155, 60}} {
		c := Screen.Param(p[0], p[1])
		wantRe := (float64(p[0]) - 250) / 95
		wantIm := (float64(p[1]) - 112.5) / 95
		if c.Re != wantRe || c.Im != wantIm {
			t.Fatalf("Param(%d, %d) = %v, want (%v, %v)", p[0], p[1], c, wantRe, wantIm)
		}
	}
	if x, y := Screen.Pixel(Complex{Re: 1, Im: -1}); x != 345 || y != 17 {
		t.Fatalf("Pixel(1-1i) = (%d, %d), want (345, 17)", x, y)
	}
	if x := Screen.X(-2.7); x != -6 {
		t.Fatalf("X(-2.7) = %d, want -6 (truncation toward zero)", x)
	}
}

func TestConfigSetMaxIterations(t *testing.T) {
	tests := []struct {
		in     int
		want   int
		wantOK bool
	}{
		{10, 10, true},
		{99, 99, true},
		{42, 42, true},
		{9, IterationsDefault, false},
		{100, IterationsDefault, false},
		{0, IterationsDefault, false},
		{-5, IterationsDefault, false},
	}
	for _, tt := range tests {
		cfg := Config{MaxIterations: 55}
		ok := cfg.SetMaxIterations(tt.in)
		if ok != tt.wantOK || cfg.MaxIterations != tt.want {
			t.Fatalf("SetMaxIterations(%d) = %v, cap %d; want %v, cap %d", tt.in, ok, cfg.MaxIterations, tt.wantOK, tt.want)
		}
	}
}

func TestConfigString(t *testing.T) {
	got := DefaultConfig().String()
	want := "iters=20 trace=on live=on axis=off colour=on"
	if got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
