package giveaway

import (
	"testing"
	"time"
)

// collectFired drains up to n IDs from ch, failing the test on timeout.
func collectFired(t *testing.T, ch chan string, n int) []string {
	t.Helper()
	out := make([]string, 0, n)
	for len(out) < n {
		select {
		case id := <-ch:
			out = append(out, id)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for deadline %d of %d (got %v)", len(out)+1, n, out)
		}
	}
	return out
}

// TestSchedulerFiresPastDeadlinesInOrder verifies expired entries fire
// immediately and ordered by deadline
func TestSchedulerFiresPastDeadlinesInOrder(t *testing.T) {
	fired := make(chan string, 4)
	s := NewScheduler(SystemClock(), func(id string) { fired <- id })

	now := time.Now()
	s.Schedule("second", now.Add(-time.Second))
	s.Schedule("first", now.Add(-2*time.Second))

	s.Start()
	defer s.Stop()

	got := collectFired(t, fired, 2)
	if got[0] != "first" || got[1] != "second" {
		t.Errorf("fire order = %v, want [first second]", got)
	}
}

// TestSchedulerFiresFutureDeadline verifies a pending entry fires once
// its time arrives
func TestSchedulerFiresFutureDeadline(t *testing.T) {
	fired := make(chan string, 1)
	s := NewScheduler(SystemClock(), func(id string) { fired <- id })
	s.Start()
	defer s.Stop()

	s.Schedule("soon", time.Now().Add(20*time.Millisecond))

	got := collectFired(t, fired, 1)
	if got[0] != "soon" {
		t.Errorf("fired %q, want %q", got[0], "soon")
	}
}

// TestSchedulerWakesForEarlierDeadline verifies a new earlier entry
// preempts a long wait
func TestSchedulerWakesForEarlierDeadline(t *testing.T) {
	fired := make(chan string, 2)
	s := NewScheduler(SystemClock(), func(id string) { fired <- id })
	s.Start()
	defer s.Stop()

	s.Schedule("late", time.Now().Add(time.Hour))
	s.Schedule("early", time.Now().Add(10*time.Millisecond))

	got := collectFired(t, fired, 1)
	if got[0] != "early" {
		t.Errorf("fired %q, want %q", got[0], "early")
	}
}

// TestSchedulerStopIsIdempotent verifies Stop can be called safely
func TestSchedulerStopIsIdempotent(t *testing.T) {
	s := NewScheduler(SystemClock(), func(string) {})
	s.Start()
	s.Stop()
	s.Stop() // no-op, must not panic

	// Scheduling after Stop must not panic either; the entry simply
	// stays pending for the next boot's recovery.
	s.Schedule("ignored", time.Now())
}
