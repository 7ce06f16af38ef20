package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/ui/theme"
)

// NumericInput wraps bubbles/textinput for numeric answers. Keys other
// than digits, a leading sign, and a decimal point are dropped before
// they reach the input; full validation still happens in the answer
// collector on submit.
type NumericInput struct {
	Model textinput.Model
}

// NewNumericInput creates a focused numeric input.
func NewNumericInput(placeholder string) NumericInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 12
	ti.Focus()
	styles := ti.Styles()
	styles.Focused.Placeholder = styles.Focused.Placeholder.Foreground(theme.TextDim)
	ti.SetStyles(styles)
	return NumericInput{Model: ti}
}

// Init returns the initial command.
func (n NumericInput) Init() tea.Cmd {
	return n.Model.Focus()
}

// Update handles messages.
func (n NumericInput) Update(msg tea.Msg) (NumericInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && !numericKey(key[0]) {
			return n, nil
		}
	}

	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	return n, cmd
}

// View renders the input.
func (n NumericInput) View() string {
	return n.Model.View()
}

// Value returns the current input text.
func (n NumericInput) Value() string {
	return n.Model.Value()
}

func numericKey(b byte) bool {
	return (b >= '0' && b <= '9') || b == '.' || b == '-'
}
