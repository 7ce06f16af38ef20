package oracle

import (
	"math"
	"strings"
	"testing"
)

func answerUpTo(f *flow, answers map[string][]string) {
	// Feed answers in tree order, the way the protocol would.
	for {
		q := f.currentQuestion()
		if q == nil {
			return
		}
		vals, ok := answers[q.ID]
		if !ok {
			return
		}
		f.record(q.ID, vals)
	}
}

func TestFlow_LipomaPath(t *testing.T) {
	f := newFlow()
	answerUpTo(f, map[string][]string{
		"age":                        {"45"},
		"duration":                   {"months to years"},
		"severity":                   {"mild"},
		"has_symptom_lump_or_growth": {"yes"},
		"locations":                  {"Arms", "Trunk"},
		"has_symptom_soft_lump":      {"yes"},
	})

	if q := f.currentQuestion(); q != nil {
		t.Fatalf("expected an exhausted tree, still asking %q", q.ID)
	}

	d := f.diagnose()
	if d.Disease != "Lipoma" {
		t.Fatalf("Disease = %q, want Lipoma", d.Disease)
	}
	// 0.8 boosted by typical age then by typical duration.
	if math.Abs(d.Confidence-84.7) > 0.1 {
		t.Errorf("Confidence = %.2f, want ~84.7", d.Confidence)
	}
	if !strings.HasPrefix(d.Reasoning, "Soft lump is characteristic") {
		t.Errorf("Reasoning = %q, want the rule rationale first", d.Reasoning)
	}
	if d.Explanation == "" {
		t.Error("expected a generated explanation")
	}
}

func TestFlow_AtypicalAgeAppendsNote(t *testing.T) {
	f := newFlow()
	answerUpTo(f, map[string][]string{
		"age":                        {"60"},
		"duration":                   {"weeks to months"},
		"severity":                   {"mild"},
		"has_symptom_lump_or_growth": {"yes"},
		"locations":                  {"Face"},
		"has_symptom_soft_lump":      {"no"},
		"has_symptom_firm_lump":      {"no"},
		"has_symptom_rough_bumps":    {"yes"},
	})

	d := f.diagnose()
	if d.Disease != "Warts (Verruca Vulgaris)" {
		t.Fatalf("Disease = %q, want warts", d.Disease)
	}
	if !strings.Contains(d.Reasoning, "age 60 is atypical") {
		t.Errorf("Reasoning = %q, want an age note", d.Reasoning)
	}
	// Penalized below the base factor.
	if d.Confidence >= 70 {
		t.Errorf("Confidence = %.2f, want below the 70 base", d.Confidence)
	}
}

func TestFlow_SevereSeverityAppendsNote(t *testing.T) {
	f := newFlow()
	answerUpTo(f, map[string][]string{
		"age":                        {"20"},
		"duration":                   {"chronic"},
		"severity":                   {"severe"},
		"has_symptom_lump_or_growth": {"no"},
		"affects_nails_or_hair":      {"no"},
		"has_symptom_rash":           {"yes"},
		"locations":                  {"Arms"},
		"itching":                    {"yes"},
		"dryness":                    {"yes"},
	})

	d := f.diagnose()
	if d.Disease != "Atopic Dermatitis" {
		t.Fatalf("Disease = %q, want Atopic Dermatitis", d.Disease)
	}
	if !strings.Contains(d.Reasoning, "prompt professional review") {
		t.Errorf("Reasoning = %q, want a severity note", d.Reasoning)
	}
}

func TestFlow_NoMatchFallsBack(t *testing.T) {
	f := newFlow()
	answerUpTo(f, map[string][]string{
		"age":                        {"30"},
		"duration":                   {"chronic"},
		"severity":                   {"mild"},
		"has_symptom_lump_or_growth": {"no"},
		"affects_nails_or_hair":      {"no"},
		"has_symptom_rash":           {"no"},
	})

	if q := f.currentQuestion(); q != nil {
		t.Fatalf("expected an exhausted tree, still asking %q", q.ID)
	}

	d := f.diagnose()
	if d.Disease != "No Specific Condition Identified" {
		t.Fatalf("Disease = %q, want the fallback", d.Disease)
	}
	if d.Confidence != 0 {
		t.Errorf("Confidence = %.2f, want 0", d.Confidence)
	}
}

func TestFlow_ProgressSaturatesBeforeDiagnosis(t *testing.T) {
	f := newFlow()
	if f.progress() != 0 {
		t.Errorf("fresh flow progress = %v, want 0", f.progress())
	}

	f.record("age", []string{"30"})
	f.record("duration", []string{"chronic"})
	if got := f.progress(); got != 20 {
		t.Errorf("progress after 2 answers = %v, want 20", got)
	}

	answerUpTo(f, map[string][]string{
		"severity":                   {"mild"},
		"has_symptom_lump_or_growth": {"no"},
		"affects_nails_or_hair":      {"no"},
		"has_symptom_rash":           {"no"},
	})
	if got := f.progress(); got != 100 {
		t.Errorf("progress after the tree is exhausted = %v, want 100", got)
	}
}

func TestCombineCF(t *testing.T) {
	tests := []struct {
		cf1, cf2, want float64
	}{
		{0.8, 0.15, 0.83},
		{0.7, 0.1, 0.73},
		{-0.3, -0.2, -0.44},
		{0.7, -0.2, 0.625},
	}
	for _, tt := range tests {
		if got := combineCF(tt.cf1, tt.cf2); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("combineCF(%v, %v) = %v, want %v", tt.cf1, tt.cf2, got, tt.want)
		}
	}
}
