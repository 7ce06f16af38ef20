package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/nav"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/router"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/screen"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/screens/assessment"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/screens/result"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/screens/review"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/screens/welcome"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/session"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/ui/layout"
)

// AppModel is the root Bubble Tea model. It owns the session store and
// the navigation controller; after every finished session operation it
// re-derives the phase and lets the router swap the screen.
type AppModel struct {
	store  *session.Store
	ctl    *nav.Controller
	router *router.Router
	width  int
	height int
}

// newAppModel wires the phase-to-screen table over the given store.
func newAppModel(store *session.Store) AppModel {
	ctl := &nav.Controller{}
	r := router.New(map[nav.Phase]router.Factory{
		nav.PhaseWelcome:  func() screen.Screen { return welcome.New(store) },
		nav.PhaseQuestion: func() screen.Screen { return assessment.New(store) },
		nav.PhaseResult:   func() screen.Screen { return result.New(store, ctl) },
		nav.PhaseReview:   func() screen.Screen { return review.New(store, ctl) },
	})
	return AppModel{store: store, ctl: ctl, router: r}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.SyncTo(m.ctl.Phase(m.store.Snapshot()))
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case screen.StateChangedMsg:
		phase := m.ctl.Phase(m.store.Snapshot())
		if phase != m.router.Phase() {
			return m, m.router.SyncTo(phase)
		}
		// Same phase: let the active screen react to the new snapshot.
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	snap := m.store.Snapshot()
	progress := 0.0
	if m.router.Phase() == nav.PhaseQuestion {
		progress = snap.Progress
	}
	header := layout.RenderHeader(title, progress, m.width)

	var hints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		hints = provider.KeyHints()
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program over the given store.
func Run(store *session.Store) error {
	p := tea.NewProgram(newAppModel(store))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
