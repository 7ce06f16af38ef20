// Package router keeps the active screen in lockstep with the derived
// navigation phase. Screens never navigate directly; they change
// session state, the phase is re-derived, and the router swaps the
// screen when the phase moved.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/nav"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/screen"
)

// Factory builds a fresh screen for a phase.
type Factory func() screen.Screen

// Router maps phases to screens and forwards messages to the active
// one.
type Router struct {
	factories map[nav.Phase]Factory
	active    screen.Screen
	phase     nav.Phase
	started   bool
}

// New creates a Router. Every reachable phase must have a factory.
func New(factories map[nav.Phase]Factory) *Router {
	return &Router{factories: factories}
}

// SyncTo makes the screen for phase active. A fresh screen is built
// and initialized when the phase changed; syncing to the current phase
// is a no-op so in-screen state survives unrelated updates.
func (r *Router) SyncTo(phase nav.Phase) tea.Cmd {
	if r.started && phase == r.phase {
		return nil
	}

	factory, ok := r.factories[phase]
	if !ok {
		return nil
	}
	r.phase = phase
	r.started = true
	r.active = factory()
	return r.active.Init()
}

// Active returns the current screen, nil before the first SyncTo.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Phase returns the phase the router is currently showing.
func (r *Router) Phase() nav.Phase {
	return r.phase
}

// Update forwards a message to the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if r.active == nil {
		return nil
	}
	updated, cmd := r.active.Update(msg)
	r.active = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if r.active == nil {
		return ""
	}
	return r.active.View(width, height)
}
