package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/answer"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/ui/theme"
)

// CheckList is a multi-select option list backed by an order-preserving
// selection: space toggles the option under the cursor, and the toggle
// order is what gets submitted.
type CheckList struct {
	Options   []string
	Cursor    int
	Selection *answer.Selection
}

// NewCheckList creates a CheckList over the given options.
func NewCheckList(options []string) CheckList {
	return CheckList{
		Options:   options,
		Selection: &answer.Selection{},
	}
}

// Update handles navigation and toggling.
func (c CheckList) Update(msg tea.Msg) (CheckList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "space", " ":
		if c.Cursor >= 0 && c.Cursor < len(c.Options) {
			c.Selection.Toggle(c.Options[c.Cursor])
		}
	}
	return c, nil
}

// View renders the list with checkbox markers.
func (c CheckList) View() string {
	var s string
	for i, opt := range c.Options {
		box := "[ ]"
		if c.Selection.Contains(opt) {
			box = "[x]"
		}

		prefix := "   "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == c.Cursor {
			prefix = " ▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		if c.Selection.Contains(opt) && i != c.Cursor {
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}
		s += style.Render(fmt.Sprintf("%s%s %s", prefix, box, opt)) + "\n"
	}
	return s
}
