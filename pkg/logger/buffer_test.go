package logger

import (
	"fmt"
	"testing"
	"time"
)

func TestBufferRingDiscardsOldest(t *testing.T) {
	b := NewBuffer(3)
	for i := 1; i <= 5; i++ {
		b.Append(fmt.Sprintf("line %d", i))
	}

	got := b.Snapshot()
	want := []string{"line 3", "line 4", "line 5"}
	if len(got) != len(want) {
		t.Fatalf("Snapshot = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Snapshot = %v, want %v", got, want)
		}
	}
	if b.Len() != 3 {
		t.Errorf("Len = %d, want 3", b.Len())
	}
}

func TestBufferSnapshotIsCopy(t *testing.T) {
	b := NewBuffer(3)
	b.Append("original")

	snap := b.Snapshot()
	snap[0] = "mutated"

	if got := b.Snapshot()[0]; got != "original" {
		t.Errorf("buffer line = %q, caller mutation leaked", got)
	}
}

func TestBufferSubscribe(t *testing.T) {
	b := NewBuffer(10)
	ch := b.Subscribe()

	b.Append("hola")
	select {
	case line := <-ch:
		if line != "hola" {
			t.Errorf("received %q, want %q", line, "hola")
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber never received the line")
	}

	b.Unsubscribe(ch)
	if _, open := <-ch; open {
		t.Error("channel still open after Unsubscribe")
	}

	// Double unsubscribe must not panic on the closed channel.
	b.Unsubscribe(ch)

	// Appends after unsubscribe go nowhere, and must not panic either.
	b.Append("adios")
}

func TestBufferSlowSubscriberDropsLines(t *testing.T) {
	b := NewBuffer(100)
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	// Overflow the subscriber channel; Append must never block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 50; i++ {
			b.Append(fmt.Sprintf("line %d", i))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Append blocked on a slow subscriber")
	}
	if b.Len() != 50 {
		t.Errorf("Len = %d, want 50", b.Len())
	}
}
