package question

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/ui/components"
	"github.com/abhisek/trivia/internal/ui/theme"
)

func (s *QuestionScreen) View(width, height int) string {
	ctrl := s.machine.Controller()
	p := ctrl.Progress()
	q := ctrl.CurrentQuestion()
	total := ctrl.Bank().Len()
	chosen, _ := ctrl.CurrentAnswer()
	cw := components.ContentWidth(width)

	var b strings.Builder

	// Greeting.
	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Good luck, %s!", p.UserName)))
	b.WriteString("\n\n")

	// Progress.
	label := fmt.Sprintf("Question %d of %d", p.CurrentQuestion+1, total)
	pct := float64(p.CurrentQuestion+1) / float64(total)
	b.WriteString(components.NewProgressBar(label, pct, true, cw).View())
	b.WriteString("\n")
	answered := make([]bool, total)
	for i := range answered {
		_, answered[i] = p.Answer(i)
	}
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center,
		components.StepDots(p.CurrentQuestion, answered)))
	b.WriteString("\n\n")

	// Category and prompt.
	b.WriteString(theme.CategoryBadge(q.Category))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("%d. %s", p.CurrentQuestion+1, q.Prompt)))
	b.WriteString("\n")

	// Feedback flash.
	flash := ""
	if s.flash.Visible() {
		flash = lipgloss.NewStyle().Foreground(theme.Success).Render("✓ " + s.flash.Text())
	}
	b.WriteString(flash)
	b.WriteString("\n")

	// Options.
	b.WriteString(components.OptionList{
		Options: q.Options,
		Focused: s.focus.Index(),
		Chosen:  chosen,
	}.View(cw))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Use ↑↓ arrows to navigate, Enter to select"))
	b.WriteString("\n\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(s.renderNav(cw, chosen != ""))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// renderNav renders Back, the centre slot and Next on one row.
func (s *QuestionScreen) renderNav(cw int, hasAnswer bool) string {
	ctrl := s.machine.Controller()

	back := components.NewButton("← Back", ctrl.CanGoBack()).View()
	next := components.NewButton("Next →", ctrl.CanGoNext()).View()

	var center string
	switch {
	case ctrl.IsLastQuestion():
		center = components.NewButton("Review Answers", hasAnswer).View()
	case !hasAnswer:
		center = theme.Hint.Render("Select an answer to continue")
	}

	gap := cw - lipgloss.Width(back) - lipgloss.Width(center) - lipgloss.Width(next)
	left := max(gap/2, 1)
	right := max(gap-left, 1)
	return lipgloss.JoinHorizontal(lipgloss.Center,
		back, strings.Repeat(" ", left), center, strings.Repeat(" ", right), next)
}
