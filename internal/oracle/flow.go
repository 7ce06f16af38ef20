package oracle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/api"
)

// flow is one session's progress through the decision tree: the
// answers given so far, keyed by question id.
type flow struct {
	answers map[string][]string
	asked   int
}

func newFlow() *flow {
	return &flow{answers: make(map[string][]string)}
}

func (f *flow) answered(id string) bool {
	_, ok := f.answers[id]
	return ok
}

// first returns the first value answered for id, or "".
func (f *flow) first(id string) string {
	vals := f.answers[id]
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

func (f *flow) record(id string, values []string) {
	if !f.answered(id) {
		f.asked++
	}
	f.answers[id] = values
}

var yesNo = []string{"yes", "no"}

// question templates, in decision-tree order. cond gates whether the
// question is reachable given the answers so far; the first reachable
// unanswered question is the current one.
type questionRule struct {
	id       string
	text     string
	options  []string
	multiple bool
	cond     func(f *flow) bool
}

func always(*flow) bool { return true }

var questionRules = []questionRule{
	{id: "age", text: "What is your age?", cond: always},
	{
		id:      "duration",
		text:    "How long have the symptoms lasted?",
		options: []string{"days to weeks", "1-2 weeks", "weeks to months", "months to years", "chronic"},
		cond:    always,
	},
	{
		id:      "severity",
		text:    "How severe are the symptoms?",
		options: []string{"mild", "moderate", "severe"},
		cond:    always,
	},
	{id: "has_symptom_lump_or_growth", text: "Do you have a lump or growth on your skin?", options: yesNo, cond: always},

	// Branch A: growths.
	{
		id: "locations", text: "Where is it located? Select all that apply.",
		options:  []string{"Face", "Arms", "Legs", "Trunk", "Scalp"},
		multiple: true,
		cond: func(f *flow) bool {
			return f.first("has_symptom_lump_or_growth") == "yes" || f.first("has_symptom_rash") == "yes"
		},
	},
	{id: "has_symptom_soft_lump", text: "Is the lump soft and movable under the skin?", options: yesNo,
		cond: func(f *flow) bool { return f.first("has_symptom_lump_or_growth") == "yes" }},
	{id: "has_symptom_firm_lump", text: "Is the lump firm to the touch?", options: yesNo,
		cond: func(f *flow) bool {
			return f.first("has_symptom_lump_or_growth") == "yes" && f.first("has_symptom_soft_lump") == "no"
		}},
	{id: "has_symptom_rough_bumps", text: "Do you see rough, grainy bumps?", options: yesNo,
		cond: func(f *flow) bool {
			return f.first("has_symptom_lump_or_growth") == "yes" &&
				f.first("has_symptom_soft_lump") == "no" && f.first("has_symptom_firm_lump") == "no"
		}},
	{id: "has_symptom_evolution_of_mole", text: "Has a mole changed in size, shape, or color?", options: yesNo,
		cond: func(f *flow) bool {
			return f.first("has_symptom_lump_or_growth") == "yes" &&
				f.first("has_symptom_soft_lump") == "no" && f.first("has_symptom_firm_lump") == "no" &&
				f.first("has_symptom_rough_bumps") == "no"
		}},

	// Branch B: hair and nails.
	{id: "affects_nails_or_hair", text: "Does the condition affect your nails or hair?", options: yesNo,
		cond: func(f *flow) bool { return f.first("has_symptom_lump_or_growth") == "no" }},
	{id: "has_symptom_patchy_hair_loss", text: "Have you experienced patchy hair loss?", options: yesNo,
		cond: func(f *flow) bool { return f.first("affects_nails_or_hair") == "yes" }},
	{id: "has_symptom_nail_pitting", text: "Do your nails show small pits or dents?", options: yesNo,
		cond: func(f *flow) bool {
			return f.first("affects_nails_or_hair") == "yes" && f.first("has_symptom_patchy_hair_loss") == "no"
		}},
	{id: "has_symptom_nail_thickening", text: "Do your nails appear thickened or discolored?", options: yesNo,
		cond: func(f *flow) bool {
			return f.first("affects_nails_or_hair") == "yes" &&
				f.first("has_symptom_patchy_hair_loss") == "no" && f.first("has_symptom_nail_pitting") == "no"
		}},

	// Branch C: rashes.
	{id: "has_symptom_rash", text: "Do you have a rash?", options: yesNo,
		cond: func(f *flow) bool {
			return f.first("has_symptom_lump_or_growth") == "no" && f.first("affects_nails_or_hair") == "no"
		}},
	{id: "itching", text: "Is the skin itchy?", options: yesNo,
		cond: func(f *flow) bool { return f.first("has_symptom_rash") == "yes" }},
	{id: "dryness", text: "Is the skin dry or rough?", options: yesNo,
		cond: func(f *flow) bool { return f.first("has_symptom_rash") == "yes" && f.first("itching") == "yes" }},
	{id: "trigger_cosmetics", text: "Did the symptoms appear after using a cosmetic or cream?", options: yesNo,
		cond: func(f *flow) bool { return f.first("has_symptom_rash") == "yes" && f.first("itching") == "no" }},
	{id: "rash_shape", text: "Are the lesions ring-shaped or do they have a clear border?", options: yesNo,
		cond: func(f *flow) bool {
			return f.first("has_symptom_rash") == "yes" && f.first("itching") == "no" &&
				f.first("trigger_cosmetics") == "no"
		}},
}

// currentQuestion returns the next unanswered reachable question, or
// nil when the tree is exhausted and a diagnosis should be produced.
func (f *flow) currentQuestion() *api.Question {
	for _, r := range questionRules {
		if f.answered(r.id) || !r.cond(f) {
			continue
		}
		return &api.Question{
			ID:         r.id,
			Text:       r.text,
			Options:    r.options,
			IsMultiple: r.multiple,
		}
	}
	return nil
}

// progress estimates completion. Paths through the tree run eight to
// ten questions; report against the longer bound and saturate at 95
// until the diagnosis lands.
func (f *flow) progress() float64 {
	p := float64(f.asked) * 100 / 10
	if f.currentQuestion() == nil {
		return 100
	}
	if p > 95 {
		p = 95
	}
	return p
}

// diagnosisRule declares a disease with its base confidence factor and
// the answer pattern that suggests it.
type diagnosisRule struct {
	disease   string
	reasoning string
	cf        float64
	ageMin    int
	ageMax    int
	duration  string // common duration bucket, "" when irrelevant
	when      func(f *flow) bool
}

var diagnosisRules = []diagnosisRule{
	{
		disease: "Lipoma", cf: 0.8, ageMin: 30, ageMax: 65, duration: "months to years",
		reasoning: "Soft lump is characteristic of lipoma",
		when:      func(f *flow) bool { return f.first("has_symptom_soft_lump") == "yes" },
	},
	{
		disease: "Dermatofibroma", cf: 0.8, ageMin: 20, ageMax: 50, duration: "months to years",
		reasoning: "Firm lump is characteristic of dermatofibroma",
		when:      func(f *flow) bool { return f.first("has_symptom_firm_lump") == "yes" },
	},
	{
		disease: "Warts (Verruca Vulgaris)", cf: 0.7, ageMin: 5, ageMax: 30, duration: "weeks to months",
		reasoning: "Rough grainy bumps suggest warts",
		when:      func(f *flow) bool { return f.first("has_symptom_rough_bumps") == "yes" },
	},
	{
		disease: "Melanoma Skin Cancer", cf: 0.85, ageMin: 40, ageMax: 90, duration: "weeks to months",
		reasoning: "An evolving mole may indicate melanoma",
		when:      func(f *flow) bool { return f.first("has_symptom_evolution_of_mole") == "yes" },
	},
	{
		disease: "Alopecia Areata", cf: 0.85, ageMin: 10, ageMax: 40, duration: "weeks to months",
		reasoning: "Patchy hair loss is characteristic of alopecia areata",
		when:      func(f *flow) bool { return f.first("has_symptom_patchy_hair_loss") == "yes" },
	},
	{
		disease: "Nail Psoriasis", cf: 0.85, ageMin: 20, ageMax: 60, duration: "chronic",
		reasoning: "Nail pitting is characteristic of nail psoriasis",
		when:      func(f *flow) bool { return f.first("has_symptom_nail_pitting") == "yes" },
	},
	{
		disease: "Onychomycosis", cf: 0.85, ageMin: 40, ageMax: 80, duration: "months to years",
		reasoning: "Nail thickening with discoloration is characteristic of nail fungus",
		when:      func(f *flow) bool { return f.first("has_symptom_nail_thickening") == "yes" },
	},
	{
		disease: "Atopic Dermatitis", cf: 0.8, ageMin: 1, ageMax: 25, duration: "chronic",
		reasoning: "Itchy dry skin suggests atopic dermatitis",
		when:      func(f *flow) bool { return f.first("itching") == "yes" && f.first("dryness") == "yes" },
	},
	{
		disease: "Urticaria (Hives)", cf: 0.65, ageMin: 10, ageMax: 60, duration: "days to weeks",
		reasoning: "Itchy rash without dryness suggests urticaria",
		when:      func(f *flow) bool { return f.first("itching") == "yes" && f.first("dryness") == "no" },
	},
	{
		disease: "Contact Dermatitis", cf: 0.8, ageMin: 10, ageMax: 70, duration: "days to weeks",
		reasoning: "Rash following cosmetic use suggests contact dermatitis",
		when:      func(f *flow) bool { return f.first("trigger_cosmetics") == "yes" },
	},
	{
		disease: "Tinea Corporis (Ringworm)", cf: 0.8, ageMin: 5, ageMax: 60, duration: "1-2 weeks",
		reasoning: "Ring-shaped lesions with a clear border suggest ringworm",
		when:      func(f *flow) bool { return f.first("rash_shape") == "yes" },
	},
}

var shortDurations = map[string]bool{
	"days to weeks": true,
	"1-2 weeks":     true,
}

var longDurations = map[string]bool{
	"weeks to months": true,
	"months to years": true,
	"chronic":         true,
}

// combineCF merges confidence factors with standard CF algebra.
func combineCF(cf1, cf2 float64) float64 {
	switch {
	case cf1 >= 0 && cf2 >= 0:
		return cf1 + cf2*(1-cf1)
	case cf1 < 0 && cf2 < 0:
		return cf1 + cf2*(1+cf1)
	default:
		d := abs(cf1)
		if abs(cf2) < d {
			d = abs(cf2)
		}
		return (cf1 + cf2) / (1 - d)
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// diagnose evaluates every matching rule, adjusts its confidence for
// the patient's age and symptom duration, and returns the best. The
// reasoning keeps the rule's primary rationale first, with one
// semicolon-joined note per adjustment.
func (f *flow) diagnose() *api.Diagnosis {
	var best *api.Diagnosis
	for _, r := range diagnosisRules {
		if !r.when(f) {
			continue
		}

		cf := r.cf
		clauses := []string{r.reasoning}

		if age, err := strconv.Atoi(f.first("age")); err == nil && r.ageMax > 0 {
			if age >= r.ageMin && age <= r.ageMax {
				cf = combineCF(cf, 0.15)
			} else {
				cf = combineCF(cf, -0.2)
				clauses = append(clauses, fmt.Sprintf("age %d is atypical for %s", age, r.disease))
			}
		}

		if dur := f.first("duration"); dur != "" && r.duration != "" {
			switch {
			case dur == r.duration:
				cf = combineCF(cf, 0.1)
			case longDurations[dur] && shortDurations[r.duration]:
				cf = combineCF(cf, -0.4)
				clauses = append(clauses, fmt.Sprintf("symptom duration %q does not fit the usual course", dur))
			}
		}

		if sev := f.first("severity"); sev == "severe" {
			clauses = append(clauses, "reported severity warrants prompt professional review")
		}

		if cf < 0 {
			cf = 0
		}
		candidate := &api.Diagnosis{
			Disease:    r.disease,
			Confidence: cf * 100,
			Reasoning:  strings.Join(clauses, "; "),
		}
		if best == nil || candidate.Confidence > best.Confidence {
			best = candidate
		}
	}

	if best == nil {
		best = &api.Diagnosis{
			Disease:    "No Specific Condition Identified",
			Confidence: 0,
			Reasoning:  "The reported answers do not match a known pattern",
			Explanation: "Unable to make a diagnosis based on the provided information. " +
				"Please consult a dermatologist for proper evaluation.",
		}
	}
	if best.Explanation == "" {
		best.Explanation = fmt.Sprintf(
			"This is a preliminary assessment of %s at %.1f%% confidence. "+
				"Please consult a healthcare professional for proper diagnosis and treatment.",
			best.Disease, best.Confidence,
		)
	}
	return best
}
