// Package answer validates and normalizes raw user input into a
// wire-ready answer before it is submitted to the inference service.
// Rejections are local; nothing here touches the network.
package answer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/api"
)

// ValidationError reports locally rejected input. It never reaches the
// service and does not disturb session state; the patient may retry.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid answer: " + e.Reason
}

// Numeric normalizes input for a numeric question. The trimmed text
// must parse as a number; it is forwarded unchanged as the answer
// value.
func Numeric(q *api.Question, input string) (api.AnswerPayload, error) {
	text := strings.TrimSpace(input)
	if _, err := strconv.ParseFloat(text, 64); err != nil {
		return api.AnswerPayload{}, &ValidationError{Reason: "not a number"}
	}
	return api.AnswerPayload{
		QuestionID: q.ID,
		Value:      []string{text},
	}, nil
}

// SingleChoice normalizes a single selected option. Exactly one of the
// question's options must be selected.
func SingleChoice(q *api.Question, option string) (api.AnswerPayload, error) {
	if option == "" {
		return api.AnswerPayload{}, &ValidationError{Reason: "no selection"}
	}
	if !contains(q.Options, option) {
		return api.AnswerPayload{}, &ValidationError{
			Reason: fmt.Sprintf("%q is not an offered option", option),
		}
	}
	return api.AnswerPayload{
		QuestionID: q.ID,
		Value:      []string{option},
	}, nil
}

// MultiChoice normalizes an ordered multi-select. At least one option
// must be selected; the toggle order is preserved on the wire.
func MultiChoice(q *api.Question, sel *Selection) (api.AnswerPayload, error) {
	if sel == nil || sel.Empty() {
		return api.AnswerPayload{}, &ValidationError{Reason: "empty selection"}
	}
	return api.AnswerPayload{
		QuestionID: q.ID,
		Value:      sel.Values(),
		IsMultiple: true,
	}, nil
}

func contains(options []string, option string) bool {
	for _, o := range options {
		if o == option {
			return true
		}
	}
	return false
}
