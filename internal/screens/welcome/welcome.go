package welcome

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/screen"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/session"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/ui/layout"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/ui/theme"
)

const crestArt = `   ╭─────────────╮
   │   ◠◠◠◠◠     │
   │  (  ⚕  )    │
   │   ◡◡◡◡◡     │
   ╰─────────────╯`

// WelcomeScreen is the entry point: it offers to start an assessment
// and surfaces a failed start so the patient can retry.
type WelcomeScreen struct {
	store    *session.Store
	starting bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen over the given store.
func New(store *session.Store) *WelcomeScreen {
	return &WelcomeScreen{store: store}
}

func (w *WelcomeScreen) Title() string {
	return "Welcome"
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Begin assessment"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.StateChangedMsg:
		w.starting = false
		return w, nil

	case tea.KeyMsg:
		if msg.String() == "enter" && !w.starting {
			w.starting = true
			return w, w.startCmd()
		}
	}
	return w, nil
}

func (w *WelcomeScreen) startCmd() tea.Cmd {
	store := w.store
	return func() tea.Msg {
		_ = store.Start(context.Background())
		return screen.StateChangedMsg{}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Primary).Render(crestArt),
		"",
		theme.Title.Render("Dermatology Smart Expert System"),
		theme.Subtitle.Render("A guided skin assessment, not a medical diagnosis"),
		"",
	)

	snap := w.store.Snapshot()
	switch {
	case w.starting || snap.Busy:
		sections = append(sections, theme.Hint.Render("Contacting the assessment service..."))
	case snap.Err != nil:
		sections = append(sections,
			theme.Warning.Render("Could not start the assessment"),
			theme.Subtitle.Render(snap.Err.Error()),
			"",
			theme.Hint.Render("press Enter to try again"),
		)
	default:
		sections = append(sections, theme.Hint.Render("press Enter to begin"))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
