package result

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/nav"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/report"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/screen"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/session"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/ui/layout"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/ui/theme"
)

// ResultScreen presents the diagnosis once the assessment finished.
type ResultScreen struct {
	store *session.Store
	ctl   *nav.Controller

	savedPath string
	saveErr   error
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen.
func New(store *session.Store, ctl *nav.Controller) *ResultScreen {
	return &ResultScreen{store: store, ctl: ctl}
}

func (r *ResultScreen) Title() string {
	return "Diagnosis"
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "V", Description: "Review answers"},
		{Key: "S", Description: "Save report"},
		{Key: "N", Description: "New assessment"},
	}
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	snap := r.store.Snapshot()
	switch kmsg.String() {
	case "v", "V":
		r.ctl.ToggleReview(snap, true)
		return r, func() tea.Msg { return screen.StateChangedMsg{} }

	case "s", "S":
		if snap.Diagnosis != nil {
			r.savedPath, r.saveErr = report.Save(
				report.DefaultDir(), snap.Diagnosis, snap.Transcript, time.Now())
		}
		return r, nil

	case "n", "N":
		if snap.Busy {
			return r, nil
		}
		r.ctl.Reset()
		store := r.store
		return r, func() tea.Msg {
			_ = store.Reset(context.Background())
			return screen.StateChangedMsg{}
		}
	}
	return r, nil
}

func (r *ResultScreen) View(width, height int) string {
	snap := r.store.Snapshot()
	diag := snap.Diagnosis
	if diag == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Waiting for the diagnosis..."))
	}

	confStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	if diag.Confidence < 50 {
		confStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	}

	card := []string{
		theme.Subtitle.Render("Most Likely Diagnosis"),
		"",
		theme.Title.Render(diag.Disease),
		confStyle.Render(fmt.Sprintf("Confidence: %.1f%%", diag.Confidence)),
		"",
	}

	clauses := diag.ReasoningClauses()
	if len(clauses) > 0 {
		card = append(card, theme.Body.Render("Reasoning: "+clauses[0]))
		for _, note := range clauses[1:] {
			card = append(card, theme.Hint.Render("Note: "+note))
		}
	}
	if diag.Explanation != "" {
		card = append(card, "", theme.Body.Render(diag.Explanation))
	}

	sections := []string{
		theme.Card.Width(min(width-8, 64)).Render(strings.Join(card, "\n")),
	}

	switch {
	case r.saveErr != nil:
		sections = append(sections, "", theme.Warning.Render("Could not save report: "+r.saveErr.Error()))
	case r.savedPath != "":
		sections = append(sections, "", theme.Hint.Render("Report saved to "+r.savedPath))
	}

	sections = append(sections, "",
		theme.Hint.Render("This assessment does not replace professional medical advice."))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
