package answer

// Selection is an order-preserving set of toggled options. Toggling an
// option that is already selected removes it; toggling a new one
// appends it, so Values reflects the order the patient made choices.
type Selection struct {
	values []string
}

// Toggle flips the membership of option.
func (s *Selection) Toggle(option string) {
	for i, v := range s.values {
		if v == option {
			s.values = append(s.values[:i], s.values[i+1:]...)
			return
		}
	}
	s.values = append(s.values, option)
}

// Contains reports whether option is currently selected.
func (s *Selection) Contains(option string) bool {
	for _, v := range s.values {
		if v == option {
			return true
		}
	}
	return false
}

// Values returns a copy of the selections in toggle order.
func (s *Selection) Values() []string {
	out := make([]string, len(s.values))
	copy(out, s.values)
	return out
}

// Empty reports whether nothing is selected.
func (s *Selection) Empty() bool {
	return len(s.values) == 0
}

// Clear removes all selections.
func (s *Selection) Clear() {
	s.values = nil
}
