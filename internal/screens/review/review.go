package review

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/nav"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/screen"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/session"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/ui/layout"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/ui/theme"
)

// ReviewScreen shows the full answer transcript next to the diagnosis.
// It is read-only; the only way out is back to the result.
type ReviewScreen struct {
	store  *session.Store
	ctl    *nav.Controller
	offset int
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates a ReviewScreen.
func New(store *session.Store, ctl *nav.Controller) *ReviewScreen {
	return &ReviewScreen{store: store, ctl: ctl}
}

func (r *ReviewScreen) Title() string {
	return "Review"
}

func (r *ReviewScreen) Init() tea.Cmd {
	return nil
}

func (r *ReviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back to diagnosis"},
	}
}

func (r *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "esc", "b", "B":
		r.ctl.ToggleReview(r.store.Snapshot(), false)
		return r, func() tea.Msg { return screen.StateChangedMsg{} }
	case "up", "k":
		if r.offset > 0 {
			r.offset--
		}
	case "down", "j":
		if r.offset < len(r.store.Snapshot().Transcript)-1 {
			r.offset++
		}
	}
	return r, nil
}

func (r *ReviewScreen) View(width, height int) string {
	snap := r.store.Snapshot()

	var lines []string
	if diag := snap.Diagnosis; diag != nil {
		lines = append(lines,
			theme.Body.Bold(true).Render(diag.Disease)+
				theme.Hint.Render(fmt.Sprintf("  (%.1f%% confidence)", diag.Confidence)))
		if clauses := diag.ReasoningClauses(); len(clauses) > 0 {
			lines = append(lines, theme.Body.Render(clauses[0]))
			for _, note := range clauses[1:] {
				lines = append(lines, theme.Hint.Render("note: "+note))
			}
		}
		lines = append(lines, "")
	}

	entries := snap.Transcript
	if len(entries) == 0 {
		lines = append(lines, theme.Hint.Render("No answers were recorded."))
	}

	visible := height - 8
	if visible < 3 {
		visible = 3
	}
	if r.offset > len(entries)-1 {
		r.offset = 0
	}

	shown := 0
	for i := r.offset; i < len(entries) && shown < visible; i++ {
		e := entries[i]
		lines = append(lines,
			theme.Body.Render(fmt.Sprintf("%2d. %s", i+1, e.Question.Text)),
			theme.Hint.Render("    "+e.AnswerText()),
		)
		shown++
	}

	if r.offset > 0 || r.offset+shown < len(entries) {
		lines = append(lines, "",
			theme.Hint.Render(fmt.Sprintf("showing %d-%d of %d", r.offset+1, r.offset+shown, len(entries))))
	}

	card := theme.Card.Width(min(width-8, 70)).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
