package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for cards.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(1, 2).
		Render(content)
}

// Chip renders a small labelled pill, used for feature highlights.
func Chip(label string) string {
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Secondary).
		Padding(0, 1).
		Render(label)
}

// Chips lays out chips on one row.
func Chips(labels ...string) string {
	parts := make([]string, 0, len(labels)*2)
	for i, l := range labels {
		if i > 0 {
			parts = append(parts, " ")
		}
		parts = append(parts, Chip(l))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
