// Package nav derives the visible phase of the assessment from a
// session snapshot. Derivation is a pure function of its inputs; the
// review flag is the only piece of state, and it is UI-only. Toggling
// it never touches the session store or the network.
package nav

import "github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/session"

// Phase is what the presentation layer should be showing.
type Phase int

const (
	// PhaseWelcome: no session exists yet.
	PhaseWelcome Phase = iota
	// PhaseQuestion: a session is running and a question is (or will
	// shortly be) presented.
	PhaseQuestion
	// PhaseResult: the session reached a diagnosis.
	PhaseResult
	// PhaseReview: the transcript review sub-phase, reachable only
	// from PhaseResult.
	PhaseReview
)

func (p Phase) String() string {
	switch p {
	case PhaseWelcome:
		return "welcome"
	case PhaseQuestion:
		return "question"
	case PhaseResult:
		return "result"
	case PhaseReview:
		return "review"
	}
	return "unknown"
}

// PhaseFor derives the phase from a snapshot. Diagnosis presence wins
// over question presence, so a stale question restored after the
// diagnosis arrived can never pull the UI back into the question flow.
func PhaseFor(snap session.Snapshot, reviewing bool) Phase {
	if snap.SessionID == "" {
		return PhaseWelcome
	}
	if snap.Diagnosis != nil {
		if reviewing {
			return PhaseReview
		}
		return PhaseResult
	}
	return PhaseQuestion
}

// Controller tracks the review flag and enforces its transition table:
// Result → Review on an explicit show intent, Review → Result on an
// explicit back intent, nothing else.
type Controller struct {
	reviewing bool
}

// Phase returns the visible phase for snap.
func (c *Controller) Phase(snap session.Snapshot) Phase {
	return PhaseFor(snap, c.reviewing)
}

// ToggleReview applies a review intent. Intents that are not legal
// from the current phase are ignored.
func (c *Controller) ToggleReview(snap session.Snapshot, show bool) {
	switch PhaseFor(snap, c.reviewing) {
	case PhaseResult:
		if show {
			c.reviewing = true
		}
	case PhaseReview:
		if !show {
			c.reviewing = false
		}
	}
}

// Reviewing reports the current review flag.
func (c *Controller) Reviewing() bool {
	return c.reviewing
}

// Reset clears the review flag; called alongside a session reset.
func (c *Controller) Reset() {
	c.reviewing = false
}
