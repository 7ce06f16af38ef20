// Package report renders a finished diagnosis as a plain-text report
// and writes it to disk. It is a pure consumer of session output; it
// never talks to the service.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/api"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/transcript"
)

const divider = "=================================================="

const disclaimer = `DISCLAIMER: This report is generated by an AI-based expert system
and should not replace professional medical consultation. Always
consult qualified healthcare professionals for proper diagnosis
and treatment.`

// Render builds the printable report for a finished session. The first
// reasoning clause is presented as the rationale; later clauses are
// the engine's adjustment notes and keep their order.
func Render(diag *api.Diagnosis, entries []transcript.Entry, now time.Time) string {
	var b strings.Builder

	b.WriteString("DERMATOLOGY EXPERT SYSTEM - DIAGNOSIS REPORT\n")
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "Generated on: %s\n\n", now.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&b, "Most Likely Diagnosis: %s\n", diag.Disease)
	fmt.Fprintf(&b, "   Confidence: %.1f%%\n", diag.Confidence)

	clauses := diag.ReasoningClauses()
	if len(clauses) > 0 {
		fmt.Fprintf(&b, "   Reasoning: %s\n", clauses[0])
		for _, note := range clauses[1:] {
			fmt.Fprintf(&b, "   Note: %s\n", note)
		}
	}
	if diag.Explanation != "" {
		b.WriteString("\n" + diag.Explanation + "\n")
	}

	if len(entries) > 0 {
		b.WriteString("\nAnswer Log\n")
		b.WriteString(strings.Repeat("-", len("Answer Log")) + "\n")
		for i, e := range entries {
			fmt.Fprintf(&b, "%2d. %s\n    %s\n", i+1, e.Question.Text, e.AnswerText())
		}
	}

	b.WriteString("\n" + divider + "\n")
	b.WriteString(disclaimer + "\n")
	return b.String()
}

// Save writes the rendered report into dir under a timestamped name
// and returns the full path.
func Save(dir string, diag *api.Diagnosis, entries []transcript.Entry, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	name := fmt.Sprintf("diagnosis_%s.txt", now.Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(Render(diag, entries, now)), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// DefaultDir resolves where reports are saved: the current working
// directory, since reports are something the patient wants at hand.
func DefaultDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}
