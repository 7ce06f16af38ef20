package answer

import (
	"errors"
	"testing"

	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/api"
)

func numericQuestion() *api.Question {
	return &api.Question{ID: "age", Text: "What is your age?"}
}

func singleQuestion() *api.Question {
	return &api.Question{
		ID:      "duration",
		Text:    "How long have you had this condition?",
		Options: []string{"Less than 1 week", "1-4 weeks", "More than 4 weeks"},
	}
}

func multiQuestion() *api.Question {
	return &api.Question{
		ID:         "locations",
		Text:       "Where on your body?",
		Options:    []string{"Face", "Arms", "Legs", "Trunk", "Scalp"},
		IsMultiple: true,
	}
}

func TestNumeric_ValidInput(t *testing.T) {
	p, err := Numeric(numericQuestion(), "  34 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.QuestionID != "age" {
		t.Errorf("QuestionID = %q, want %q", p.QuestionID, "age")
	}
	if len(p.Value) != 1 || p.Value[0] != "34" {
		t.Errorf("Value = %v, want [34]", p.Value)
	}
	if p.IsMultiple {
		t.Error("numeric answer must not be marked multiple")
	}
}

func TestNumeric_TextForwardedUnchanged(t *testing.T) {
	// "034" and "34.0" are valid numbers; the service receives the text
	// the patient typed, not a re-rendered value.
	for _, input := range []string{"034", "34.0", "-2"} {
		p, err := Numeric(numericQuestion(), input)
		if err != nil {
			t.Fatalf("Numeric(%q): unexpected error: %v", input, err)
		}
		if p.Value[0] != input {
			t.Errorf("Numeric(%q) forwarded %q", input, p.Value[0])
		}
	}
}

func TestNumeric_RejectsNonNumbers(t *testing.T) {
	for _, input := range []string{"", "   ", "abc", "12x", "1 2"} {
		_, err := Numeric(numericQuestion(), input)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Numeric(%q): expected ValidationError, got %v", input, err)
		}
		if verr.Reason != "not a number" {
			t.Errorf("Numeric(%q): reason = %q, want %q", input, verr.Reason, "not a number")
		}
	}
}

func TestSingleChoice_Valid(t *testing.T) {
	p, err := SingleChoice(singleQuestion(), "1-4 weeks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Value) != 1 || p.Value[0] != "1-4 weeks" {
		t.Errorf("Value = %v, want [1-4 weeks]", p.Value)
	}
}

func TestSingleChoice_NoSelection(t *testing.T) {
	_, err := SingleChoice(singleQuestion(), "")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Reason != "no selection" {
		t.Errorf("reason = %q, want %q", verr.Reason, "no selection")
	}
}

func TestSingleChoice_UnknownOption(t *testing.T) {
	_, err := SingleChoice(singleQuestion(), "Forever")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestMultiChoice_PreservesToggleOrder(t *testing.T) {
	sel := &Selection{}
	sel.Toggle("Legs")
	sel.Toggle("Face")

	p, err := MultiChoice(multiQuestion(), sel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.IsMultiple {
		t.Error("multi-choice answer must be marked multiple")
	}
	want := []string{"Legs", "Face"}
	if len(p.Value) != len(want) {
		t.Fatalf("Value = %v, want %v", p.Value, want)
	}
	for i := range want {
		if p.Value[i] != want[i] {
			t.Errorf("Value[%d] = %q, want %q", i, p.Value[i], want[i])
		}
	}
}

func TestMultiChoice_EmptySelection(t *testing.T) {
	_, err := MultiChoice(multiQuestion(), &Selection{})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Reason != "empty selection" {
		t.Errorf("reason = %q, want %q", verr.Reason, "empty selection")
	}
}
