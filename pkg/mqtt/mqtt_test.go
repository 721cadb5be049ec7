package mqtt

import "testing"

func TestTopicMatch(t *testing.T) {
	tests := []struct {
		pattern string
		topic   string
		want    bool
	}{
		{"vortex/giveaways/started", "vortex/giveaways/started", true},
		{"vortex/giveaways/started", "vortex/giveaways/ended", false},
		{"vortex/+/started", "vortex/giveaways/started", true},
		{"vortex/+/started", "vortex/giveaways/ended", false},
		{"vortex/+", "vortex/giveaways/started", false},
		{"vortex/#", "vortex/giveaways/started", true},
		{"vortex/#", "vortex", true}, // # also matches zero levels
		{"#", "anything/at/all", true},
		{"vortex/giveaways", "vortex/giveaways/started", false},
	}

	for _, tt := range tests {
		if got := topicMatch(tt.pattern, tt.topic); got != tt.want {
			t.Errorf("topicMatch(%q, %q) = %v, want %v", tt.pattern, tt.topic, got, tt.want)
		}
	}
}
