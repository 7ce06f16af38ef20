package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StateChangedMsg signals that a session operation finished and the
// visible phase should be re-derived from the store snapshot.
type StateChangedMsg struct{}
