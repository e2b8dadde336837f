package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/quiz"
	"github.com/abhisek/trivia/internal/ui/theme"
)

const ringSegments = 24

// ScoreRing draws a percentage inside a segmented ring. value is the number
// shown right now, which may lag behind the final score while counting up.
func ScoreRing(value int, band quiz.Band) string {
	value = max(0, min(value, 100))
	lit := value * ringSegments / 100

	on := lipgloss.NewStyle().Foreground(theme.BandColor(band))
	off := lipgloss.NewStyle().Foreground(theme.Border)
	seg := func(i int, glyph string) string {
		if i < lit {
			return on.Render(glyph)
		}
		return off.Render(glyph)
	}

	// Segments run clockwise from the top-left corner: 7 across the top,
	// down the right side, back along the bottom and up the left.
	var top, bottom, left, right []string
	for i := 0; i < 7; i++ {
		top = append(top, seg(i, "━"))
	}
	for i := 7; i < 12; i++ {
		right = append(right, seg(i, "┃"))
	}
	for i := 12; i < 19; i++ {
		bottom = append([]string{seg(i, "━")}, bottom...)
	}
	for i := 19; i < ringSegments; i++ {
		left = append([]string{seg(i, "┃")}, left...)
	}

	label := lipgloss.NewStyle().
		Foreground(theme.BandColor(band)).
		Bold(true).
		Render(fmt.Sprintf("%3d%%", value))

	inner := 12
	var b strings.Builder
	b.WriteString("   " + strings.Join(top, " ") + "\n")
	for row := 0; row < 5; row++ {
		mid := strings.Repeat(" ", inner)
		if row == 2 {
			pad := inner - lipgloss.Width(label)
			mid = strings.Repeat(" ", pad/2) + label + strings.Repeat(" ", pad-pad/2)
		}
		b.WriteString(" " + left[row] + mid + right[row] + "\n")
	}
	b.WriteString("   " + strings.Join(bottom, " "))
	return b.String()
}
