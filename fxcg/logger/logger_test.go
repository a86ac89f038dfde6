package logger

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"fractals/kernel"
)

type lineLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *lineLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

func (l *lineLogger) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *lineLogger) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

func TestServiceWritesLines(t *testing.T) {
	sys := kernel.NewSystem()
	out := &lineLogger{}
	svc := New(out, sys)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()

	Log(sys, kernel.EPKernel, "boot: ok")
	Logf(sys, kernel.EPKernel, "render: %d rows", 192)

	deadline := time.Now().Add(5 * time.Second)
	for len(out.snapshot()) < 2 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	cancel()
	<-done

	got := strings.Join(out.snapshot(), "|")
	if want := "boot: ok|render: 192 rows"; got != want {
		t.Fatalf("lines = %q, want %q", got, want)
	}
}

func TestServiceIgnoresOtherKinds(t *testing.T) {
	sys := kernel.NewSystem()
	out := &lineLogger{}
	svc := New(out, sys)

	sys.TrySend(kernel.EPKernel, kernel.EPLogger, 0, []byte("not a log line"))
	Log(sys, kernel.EPKernel, "kept")
	svc.Drain()

	if got := out.snapshot(); len(got) != 1 || got[0] != "kept" {
		t.Fatalf("lines = %q, want [kept]", got)
	}
}

func TestLogDropsWhenFull(t *testing.T) {
	sys := kernel.NewSystem()
	sent := 0
	for i := 0; i < 1000; i++ {
		if Log(sys, kernel.EPKernel, "x") {
			sent++
		}
	}
	if sent == 0 || sent == 1000 {
		t.Fatalf("sent %d of 1000 without a reader, want a bounded queue", sent)
	}
	if Log(nil, kernel.EPKernel, "x") {
		t.Fatal("Log with nil system = true")
	}
}
