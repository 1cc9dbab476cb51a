package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tactix/internal/ui/theme"
)

// MoveInput wraps bubbles/textinput for entering a move sequence.
type MoveInput struct {
	Model     textinput.Model
	submitted bool
	valid     bool
}

// NewMoveInput creates a focused input with the given placeholder.
func NewMoveInput(placeholder string) MoveInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	return MoveInput{Model: ti}
}

// Init returns the initial command.
func (m MoveInput) Init() tea.Cmd {
	return m.Model.Focus()
}

// Update handles messages.
func (m MoveInput) Update(msg tea.Msg) (MoveInput, tea.Cmd) {
	var cmd tea.Cmd
	m.Model, cmd = m.Model.Update(msg)
	return m, cmd
}

// View renders the input, with a result marker once submitted.
func (m MoveInput) View() string {
	view := m.Model.View()
	if m.submitted {
		if m.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (m MoveInput) Value() string {
	return m.Model.Value()
}

// Submit marks the input as submitted with a validation result.
func (m *MoveInput) Submit(valid bool) {
	m.submitted = true
	m.valid = valid
}

// Reset clears the input for the next puzzle.
func (m *MoveInput) Reset() {
	m.Model.SetValue("")
	m.submitted = false
	m.valid = false
}
