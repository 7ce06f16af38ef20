package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/nav"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/screen"
)

// stubScreen counts interactions so the tests can observe routing.
type stubScreen struct {
	title   string
	inits   int
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	return s, nil
}

func (s *stubScreen) View(width, height int) string { return s.title }
func (s *stubScreen) Title() string                 { return s.title }

func TestRouter_SyncBuildsFreshScreens(t *testing.T) {
	var built int
	r := New(map[nav.Phase]Factory{
		nav.PhaseWelcome: func() screen.Screen {
			built++
			return &stubScreen{title: "welcome"}
		},
		nav.PhaseQuestion: func() screen.Screen { return &stubScreen{title: "question"} },
	})

	if r.Active() != nil {
		t.Fatal("no screen may be active before the first sync")
	}

	r.SyncTo(nav.PhaseWelcome)
	if r.Active() == nil || r.Active().Title() != "welcome" {
		t.Fatalf("active = %v, want the welcome screen", r.Active())
	}
	if built != 1 {
		t.Fatalf("built %d welcome screens, want 1", built)
	}

	// Same phase again: the screen instance survives.
	r.SyncTo(nav.PhaseWelcome)
	if built != 1 {
		t.Errorf("re-sync rebuilt the screen, built = %d", built)
	}

	r.SyncTo(nav.PhaseQuestion)
	if r.Phase() != nav.PhaseQuestion {
		t.Errorf("Phase = %v, want PhaseQuestion", r.Phase())
	}

	// Returning to a phase builds a fresh screen, not the old instance.
	r.SyncTo(nav.PhaseWelcome)
	if built != 2 {
		t.Errorf("built %d welcome screens, want 2", built)
	}
}

func TestRouter_SyncInitializesScreen(t *testing.T) {
	s := &stubScreen{title: "welcome"}
	r := New(map[nav.Phase]Factory{
		nav.PhaseWelcome: func() screen.Screen { return s },
	})

	r.SyncTo(nav.PhaseWelcome)
	if s.inits != 1 {
		t.Errorf("inits = %d, want 1", s.inits)
	}
}

func TestRouter_UpdateForwardsToActive(t *testing.T) {
	s := &stubScreen{title: "welcome"}
	r := New(map[nav.Phase]Factory{
		nav.PhaseWelcome: func() screen.Screen { return s },
	})

	// Updates before any sync are dropped, not a panic.
	r.Update(screen.StateChangedMsg{})

	r.SyncTo(nav.PhaseWelcome)
	r.Update(screen.StateChangedMsg{})
	if s.updates != 1 {
		t.Errorf("updates = %d, want 1", s.updates)
	}
}

func TestRouter_UnknownPhaseIsIgnored(t *testing.T) {
	s := &stubScreen{title: "welcome"}
	r := New(map[nav.Phase]Factory{
		nav.PhaseWelcome: func() screen.Screen { return s },
	})
	r.SyncTo(nav.PhaseWelcome)

	r.SyncTo(nav.PhaseReview)
	if r.Active() != screen.Screen(s) {
		t.Error("an unknown phase must keep the current screen")
	}
	if r.Phase() != nav.PhaseWelcome {
		t.Errorf("Phase = %v, want PhaseWelcome", r.Phase())
	}
}
