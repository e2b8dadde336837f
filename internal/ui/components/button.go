package components

import (
	"github.com/abhisek/trivia/internal/ui/theme"
)

// Button is a styled, optionally disabled button.
type Button struct {
	Label   string
	Enabled bool
	Focused bool
}

// NewButton creates a new button.
func NewButton(label string, enabled bool) Button {
	return Button{
		Label:   label,
		Enabled: enabled,
	}
}

// View renders the button. Disabled buttons are dimmed and never show focus.
func (b Button) View() string {
	if !b.Enabled {
		return theme.ButtonInactive.Render(b.Label)
	}
	label := b.Label
	if b.Focused {
		label = "▸ " + label
	}
	return theme.ButtonActive.Render(label)
}
