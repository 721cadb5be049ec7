package economy

import "testing"

// TestSpamTrackerThreshold verifies the fifth consecutive message
// triggers and the streak restarts
func TestSpamTrackerThreshold(t *testing.T) {
	tr := NewSpamTracker()

	for i := 1; i < SpamThreshold; i++ {
		if tr.Observe("u1") {
			t.Fatalf("triggered at message %d, want %d", i, SpamThreshold)
		}
	}
	if !tr.Observe("u1") {
		t.Fatalf("message %d should trigger", SpamThreshold)
	}

	// The counter restarts after a trigger: the next run takes another
	// full threshold.
	for i := 1; i < SpamThreshold; i++ {
		if tr.Observe("u1") {
			t.Fatalf("triggered at message %d of the second run", i)
		}
	}
	if !tr.Observe("u1") {
		t.Error("second run should trigger at the threshold again")
	}
}

// TestSpamTrackerAuthorChangeResets verifies another author breaks the
// streak
func TestSpamTrackerAuthorChangeResets(t *testing.T) {
	tr := NewSpamTracker()

	for i := 1; i < SpamThreshold; i++ {
		tr.Observe("u1")
	}
	tr.Observe("u2")
	if tr.Observe("u1") {
		t.Error("streak survived an interleaved author")
	}
}

// TestSpamTrackerReset verifies an explicit reset clears the streak
func TestSpamTrackerReset(t *testing.T) {
	tr := NewSpamTracker()

	for i := 1; i < SpamThreshold; i++ {
		tr.Observe("u1")
	}
	tr.Reset()
	if tr.Observe("u1") {
		t.Error("streak survived Reset")
	}
}
