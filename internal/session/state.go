package session

import (
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/api"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/transcript"
)

// Snapshot is a consistent, read-only view of the session state.
// Updates are applied whole at operation boundaries, so a snapshot
// never exposes a torn intermediate state.
//
// For a live session with no pending error, exactly one of Question
// and Diagnosis is non-nil.
type Snapshot struct {
	// SessionID is the server-assigned id, empty before Start.
	SessionID string

	// Question is the question the patient must answer next.
	Question *api.Question

	// Diagnosis is the terminal result, set once per session.
	Diagnosis *api.Diagnosis

	// Progress is the service's completion estimate, 0–100.
	Progress float64

	// Transcript holds the answered questions in submission order.
	Transcript []transcript.Entry

	// Busy is true while a state-transition operation is in flight.
	Busy bool

	// Err is the most recent operation failure, cleared by Reset or by
	// the next successful operation.
	Err error

	// AnswerPending is true when an answer was accepted by the service
	// but the follow-up status fetch failed. Refresh retries the fetch
	// and commits the pending transcript entry.
	AnswerPending bool
}

// Finished reports whether the session has reached a diagnosis.
func (s Snapshot) Finished() bool {
	return s.Diagnosis != nil
}
