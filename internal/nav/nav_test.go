package nav

import (
	"testing"

	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/api"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/session"
)

func TestPhaseFor(t *testing.T) {
	question := &api.Question{ID: "q1", Text: "?"}
	diagnosis := &api.Diagnosis{Disease: "Warts", Confidence: 60}

	tests := []struct {
		name      string
		snap      session.Snapshot
		reviewing bool
		want      Phase
	}{
		{"no session", session.Snapshot{}, false, PhaseWelcome},
		{"no session ignores review flag", session.Snapshot{}, true, PhaseWelcome},
		{"question pending", session.Snapshot{SessionID: "s1", Question: question}, false, PhaseQuestion},
		{"session without question yet", session.Snapshot{SessionID: "s1"}, false, PhaseQuestion},
		{"diagnosed", session.Snapshot{SessionID: "s1", Diagnosis: diagnosis}, false, PhaseResult},
		{"diagnosed reviewing", session.Snapshot{SessionID: "s1", Diagnosis: diagnosis}, true, PhaseReview},
		{
			"diagnosis wins over stale question",
			session.Snapshot{SessionID: "s1", Question: question, Diagnosis: diagnosis},
			false,
			PhaseResult,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PhaseFor(tt.snap, tt.reviewing); got != tt.want {
				t.Errorf("PhaseFor = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestController_ReviewRoundTrip(t *testing.T) {
	diagnosed := session.Snapshot{
		SessionID: "s1",
		Diagnosis: &api.Diagnosis{Disease: "Warts", Confidence: 60},
	}

	var c Controller
	if got := c.Phase(diagnosed); got != PhaseResult {
		t.Fatalf("initial phase = %v, want PhaseResult", got)
	}

	c.ToggleReview(diagnosed, true)
	if got := c.Phase(diagnosed); got != PhaseReview {
		t.Fatalf("after show: phase = %v, want PhaseReview", got)
	}

	// A second show intent from Review is ignored.
	c.ToggleReview(diagnosed, true)
	if got := c.Phase(diagnosed); got != PhaseReview {
		t.Fatalf("repeated show: phase = %v, want PhaseReview", got)
	}

	c.ToggleReview(diagnosed, false)
	if got := c.Phase(diagnosed); got != PhaseResult {
		t.Fatalf("after back: phase = %v, want PhaseResult", got)
	}
}

func TestController_ReviewIntentIgnoredOutsideResult(t *testing.T) {
	running := session.Snapshot{
		SessionID: "s1",
		Question:  &api.Question{ID: "q1", Text: "?"},
	}

	var c Controller
	c.ToggleReview(running, true)
	if c.Reviewing() {
		t.Error("review intent must be ignored while a question is pending")
	}

	c.ToggleReview(session.Snapshot{}, true)
	if c.Reviewing() {
		t.Error("review intent must be ignored before a session exists")
	}
}

func TestController_Reset(t *testing.T) {
	diagnosed := session.Snapshot{
		SessionID: "s1",
		Diagnosis: &api.Diagnosis{Disease: "Warts", Confidence: 60},
	}

	var c Controller
	c.ToggleReview(diagnosed, true)
	c.Reset()
	if c.Reviewing() {
		t.Error("Reset must clear the review flag")
	}
}
