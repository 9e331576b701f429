package leaktest

import (
	"testing"
	"time"
)

type recordingTB struct {
	testing.TB
	failed bool
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Errorf(string, ...any) { r.failed = true }

func TestCheck_StoppedGoroutinePasses(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		done := make(chan struct{})
		go func() { <-done }()
		close(done)
	})
}

func TestCheck_WaitsForSlowExit(t *testing.T) {
	checker := NewGoroutineChecker(t)
	go func() { time.Sleep(50 * time.Millisecond) }()
	checker.Check(0)
}

func TestCheck_ReportsLeak(t *testing.T) {
	rec := &recordingTB{TB: t}
	checker := NewGoroutineChecker(rec)

	block := make(chan struct{})
	defer close(block)
	go func() { <-block }()

	checker.Check(0)
	if !rec.failed {
		t.Fatal("expected a leak to be reported")
	}
}

func TestCheck_Tolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	block := make(chan struct{})
	defer close(block)
	go func() { <-block }()

	checker.Check(1)
}
