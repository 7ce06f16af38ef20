// Package transcript keeps the client-side audit log of an assessment:
// every question together with the answer that was submitted for it,
// in submission order. The log never leaves the process; the service
// protocol knows nothing about it.
package transcript

import (
	"strings"

	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/api"
)

// Entry pairs a question with the answer submitted for it.
type Entry struct {
	Question api.Question
	Answer   api.AnswerPayload
}

// AnswerText renders the submitted value for display, joining
// multi-select values in toggle order.
func (e Entry) AnswerText() string {
	return strings.Join(e.Answer.Value, ", ")
}

// Transcript is an append-only log of entries. Entries are never
// reordered or removed within a session.
type Transcript struct {
	entries []Entry
}

// Append records an entry at the end of the log.
func (t *Transcript) Append(q api.Question, a api.AnswerPayload) {
	t.entries = append(t.entries, Entry{Question: q, Answer: a})
}

// Entries returns a copy of the log in submission order.
func (t *Transcript) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of recorded entries.
func (t *Transcript) Len() int {
	return len(t.entries)
}
