package engine

import "testing"

func TestStatusString(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
		finished bool
	}{
		{StatusNotStarted, "not_started", false},
		{StatusRunning, "running", false},
		{StatusWon, "won", true},
		{StatusLost, "lost", true},
		{Status(99), "unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.status.String(); got != tt.expected {
				t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.expected)
			}
			if got := tt.status.Finished(); got != tt.finished {
				t.Errorf("Status(%d).Finished() = %v, want %v", tt.status, got, tt.finished)
			}
		})
	}
}
