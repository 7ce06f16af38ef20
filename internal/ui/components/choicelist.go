package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/ui/theme"
)

// ChoiceList is a single-select option list.
type ChoiceList struct {
	Options []string
	Cursor  int
}

// NewChoiceList creates a ChoiceList over the given options.
func NewChoiceList(options []string) ChoiceList {
	return ChoiceList{Options: options}
}

// Update handles keyboard navigation.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
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
	}
	return c, nil
}

// Selected returns the option under the cursor, or "" when the list is
// empty.
func (c ChoiceList) Selected() string {
	if c.Cursor < 0 || c.Cursor >= len(c.Options) {
		return ""
	}
	return c.Options[c.Cursor]
}

// View renders the list.
func (c ChoiceList) View() string {
	var s string
	for i, opt := range c.Options {
		prefix := "   ( ) "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == c.Cursor {
			prefix = " ▸ (•) "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		s += style.Render(fmt.Sprintf("%s%s", prefix, opt)) + "\n"
	}
	return s
}
