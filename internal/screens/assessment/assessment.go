package assessment

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/answer"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/api"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/screen"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/session"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/ui/components"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/ui/layout"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/ui/theme"
)

// AssessmentScreen drives the question/answer loop: it renders the
// store's current question, collects input with the widget matching
// the question kind, and submits validated answers.
type AssessmentScreen struct {
	store *session.Store

	boundQuestion string // id of the question the widgets were built for
	kind          api.QuestionKind
	choices       components.ChoiceList
	checks        components.CheckList
	input         components.NumericInput

	validationMsg string
	confirmReset  bool
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)

// New creates an AssessmentScreen over the given store.
func New(store *session.Store) *AssessmentScreen {
	return &AssessmentScreen{store: store}
}

func (a *AssessmentScreen) Title() string {
	return "Assessment"
}

func (a *AssessmentScreen) Init() tea.Cmd {
	return a.bind()
}

func (a *AssessmentScreen) KeyHints() []layout.KeyHint {
	if a.confirmReset {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon assessment"},
			{Key: "N", Description: "Keep going"},
		}
	}

	snap := a.store.Snapshot()
	if snap.Err != nil {
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Abandon"},
		}
	}

	hints := []layout.KeyHint{{Key: "Enter", Description: "Submit"}}
	if a.kind == api.KindMultiChoice {
		hints = append([]layout.KeyHint{{Key: "Space", Description: "Toggle"}}, hints...)
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Abandon"})
}

// bind rebuilds the input widgets when the current question changed.
func (a *AssessmentScreen) bind() tea.Cmd {
	snap := a.store.Snapshot()
	q := snap.Question
	if q == nil || q.ID == a.boundQuestion {
		return nil
	}

	a.boundQuestion = q.ID
	a.kind = q.Kind()
	a.validationMsg = ""

	switch a.kind {
	case api.KindSingleChoice:
		a.choices = components.NewChoiceList(q.Options)
	case api.KindMultiChoice:
		a.checks = components.NewCheckList(q.Options)
	case api.KindNumeric:
		a.input = components.NewNumericInput("Enter a number...")
		return a.input.Init()
	}
	return nil
}

func (a *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.StateChangedMsg:
		return a, a.bind()

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a.forward(msg)
}

func (a *AssessmentScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if a.confirmReset {
		switch key {
		case "y", "Y":
			a.confirmReset = false
			return a, a.resetCmd()
		case "n", "N", "esc":
			a.confirmReset = false
		}
		return a, nil
	}

	snap := a.store.Snapshot()
	if snap.Busy {
		return a, nil
	}

	switch key {
	case "esc":
		a.confirmReset = true
		return a, nil
	case "r", "R":
		if snap.Err != nil || snap.AnswerPending {
			return a, a.refreshCmd()
		}
	case "enter":
		if snap.Question != nil && snap.Question.ID == a.boundQuestion {
			return a.submit(snap.Question)
		}
		return a, nil
	}

	return a.forward(msg)
}

// forward routes a message to the widget for the bound question.
func (a *AssessmentScreen) forward(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch a.kind {
	case api.KindSingleChoice:
		a.choices, cmd = a.choices.Update(msg)
	case api.KindMultiChoice:
		a.checks, cmd = a.checks.Update(msg)
	case api.KindNumeric:
		a.input, cmd = a.input.Update(msg)
	}
	return a, cmd
}

// submit validates the widget's value and, when accepted, sends it.
// Validation failures stay local: the store is untouched and the
// patient can correct the input.
func (a *AssessmentScreen) submit(q *api.Question) (screen.Screen, tea.Cmd) {
	var payload api.AnswerPayload
	var err error

	switch a.kind {
	case api.KindSingleChoice:
		payload, err = answer.SingleChoice(q, a.choices.Selected())
	case api.KindMultiChoice:
		payload, err = answer.MultiChoice(q, a.checks.Selection)
	case api.KindNumeric:
		payload, err = answer.Numeric(q, a.input.Value())
	}

	if err != nil {
		var verr *answer.ValidationError
		if errors.As(err, &verr) {
			a.validationMsg = verr.Reason
			return a, nil
		}
		a.validationMsg = err.Error()
		return a, nil
	}

	a.validationMsg = ""
	store := a.store
	return a, func() tea.Msg {
		_ = store.Answer(context.Background(), payload)
		return screen.StateChangedMsg{}
	}
}

func (a *AssessmentScreen) View(width, height int) string {
	snap := a.store.Snapshot()

	if a.confirmReset {
		dialog := strings.Join([]string{
			theme.Warning.Render("Abandon this assessment?"),
			"",
			theme.Body.Render("Your answers so far will be discarded."),
			"",
			theme.Hint.Render("Y to abandon, N to keep going"),
		}, "\n")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Card.Render(dialog))
	}

	var sections []string

	bar := components.NewProgressBar("Progress", snap.Progress, min(width-8, 50))
	sections = append(sections, bar.View(), "")

	q := snap.Question
	switch {
	case q == nil:
		sections = append(sections, theme.Hint.Render("Waiting for the next question..."))

	default:
		card := []string{theme.Body.Bold(true).Render(q.Text), ""}
		switch a.kind {
		case api.KindSingleChoice:
			card = append(card, a.choices.View())
		case api.KindMultiChoice:
			card = append(card, a.checks.View())
		case api.KindNumeric:
			card = append(card, a.input.View())
		}
		sections = append(sections, theme.Card.Width(min(width-8, 64)).Render(strings.Join(card, "\n")))
	}

	if a.validationMsg != "" {
		sections = append(sections, "", theme.Warning.Render(a.validationMsg))
	}

	switch {
	case snap.Busy:
		sections = append(sections, "", theme.Hint.Render("Submitting..."))
	case snap.Err != nil:
		sections = append(sections, "",
			theme.Warning.Render(snap.Err.Error()))
		if snap.AnswerPending {
			sections = append(sections, theme.Hint.Render("Your answer was sent. Press R to fetch the next question."))
		} else {
			sections = append(sections, theme.Hint.Render("Press R to retry."))
		}
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (a *AssessmentScreen) refreshCmd() tea.Cmd {
	store := a.store
	return func() tea.Msg {
		_ = store.Refresh(context.Background())
		return screen.StateChangedMsg{}
	}
}

func (a *AssessmentScreen) resetCmd() tea.Cmd {
	store := a.store
	return func() tea.Msg {
		_ = store.Reset(context.Background())
		return screen.StateChangedMsg{}
	}
}
