package api

import (
	"encoding/json"
	"strings"
)

// QuestionKind classifies how a question is answered.
type QuestionKind string

const (
	KindSingleChoice QuestionKind = "single-choice"
	KindMultiChoice  QuestionKind = "multi-choice"
	KindNumeric      QuestionKind = "numeric"
)

// Question is the service's wire representation of the question the
// patient must answer next. Numeric questions carry no options.
type Question struct {
	ID         string   `json:"question_id"`
	Text       string   `json:"question_text"`
	Options    []string `json:"options,omitempty"`
	IsMultiple bool     `json:"is_multiple_choice"`
}

// Kind derives the question kind from the wire shape.
func (q *Question) Kind() QuestionKind {
	if len(q.Options) == 0 {
		return KindNumeric
	}
	if q.IsMultiple {
		return KindMultiChoice
	}
	return KindSingleChoice
}

// Diagnosis is the terminal result of a session.
//
// Reasoning is a semicolon-joined sequence of clauses: the first clause
// is the primary rationale, the rest are secondary or penalty notes
// appended by the inference engine as it adjusted confidence.
type Diagnosis struct {
	Disease     string  `json:"disease"`
	Confidence  float64 `json:"confidence"` // 0–100
	Reasoning   string  `json:"reasoning"`
	Explanation string  `json:"explanation"`
}

// ReasoningClauses splits Reasoning on semicolons, trimming whitespace
// and dropping empty clauses. The first element, when present, is the
// primary rationale.
func (d *Diagnosis) ReasoningClauses() []string {
	var clauses []string
	for _, part := range strings.Split(d.Reasoning, ";") {
		part = strings.TrimSpace(part)
		if part != "" {
			clauses = append(clauses, part)
		}
	}
	return clauses
}

// Status is the session status payload. Exactly one of Question and
// Diagnosis is expected to be non-nil for a live session.
type Status struct {
	Question  *Question  `json:"current_question"`
	Diagnosis *Diagnosis `json:"diagnosis"`
	Progress  float64    `json:"progress"`
}

// AnswerPayload is the body of an answer submission. Value holds the
// selections in the order the patient made them; single-choice and
// numeric answers use a one-element slice and marshal as a bare string.
type AnswerPayload struct {
	QuestionID string
	Value      []string
	IsMultiple bool
}

// MarshalJSON emits the answer as a string for single selections and as
// an ordered array for multi-choice, matching the service contract.
func (a AnswerPayload) MarshalJSON() ([]byte, error) {
	body := struct {
		QuestionID string `json:"question_id"`
		Answer     any    `json:"answer"`
		IsMultiple bool   `json:"is_multiple"`
	}{QuestionID: a.QuestionID, IsMultiple: a.IsMultiple}

	if a.IsMultiple {
		body.Answer = a.Value
	} else if len(a.Value) > 0 {
		body.Answer = a.Value[0]
	} else {
		body.Answer = ""
	}
	return json.Marshal(body)
}
