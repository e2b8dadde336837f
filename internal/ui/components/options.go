package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/ui/theme"
)

// OptionList renders the answer options of one question. Focused is the
// keyboard cursor; Chosen is the recorded answer, if any.
type OptionList struct {
	Options []string
	Focused int
	Chosen  string
}

// Label returns the letter shown next to option i.
func Label(i int) string {
	return string(rune('A' + i))
}

// View renders the option list at width w.
func (o OptionList) View(w int) string {
	var b strings.Builder
	for i, opt := range o.Options {
		focused := i == o.Focused
		chosen := opt == o.Chosen && o.Chosen != ""

		prefix := "  "
		if focused {
			prefix = "▸ "
		}
		mark := "○"
		if chosen {
			mark = "●"
		}
		line := fmt.Sprintf("%s%s  %s)  %s", prefix, mark, Label(i), opt)

		style := lipgloss.NewStyle().
			Width(w).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.Text)
		switch {
		case chosen && focused:
			style = style.BorderForeground(theme.Primary).Foreground(theme.Primary).Bold(true)
		case chosen:
			style = style.BorderForeground(theme.Secondary).Foreground(theme.Secondary).Bold(true)
		case focused:
			style = style.BorderForeground(theme.Primary).Foreground(theme.Primary)
		}
		b.WriteString(style.Render(line))
		if i < len(o.Options)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
