package review

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/flow"
	"github.com/abhisek/trivia/internal/quiz"
	"github.com/abhisek/trivia/internal/screen"
	"github.com/abhisek/trivia/internal/ui/components"
	"github.com/abhisek/trivia/internal/ui/layout"
	"github.com/abhisek/trivia/internal/ui/theme"
)

// ReviewScreen lists every question with its answer. Enter on a row jumps
// back to that question; the last row submits.
type ReviewScreen struct {
	machine  *flow.Machine
	selected int // 0..n-1 are questions, n is the submit button
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates a ReviewScreen with the cursor on the submit button.
func New(machine *flow.Machine) *ReviewScreen {
	return &ReviewScreen{
		machine:  machine,
		selected: machine.Controller().Bank().Len(),
	}
}

func (s *ReviewScreen) Init() tea.Cmd {
	return nil
}

func (s *ReviewScreen) Title() string {
	return "Review"
}

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Change answer"},
		{Key: "S", Description: "Submit"},
		{Key: "Ctrl+T", Description: "Theme"},
	}
}

func (s *ReviewScreen) count() int {
	return s.machine.Controller().Bank().Len()
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < s.count() {
			s.selected++
		}
	case "s":
		return s, s.submit()
	case "enter", "space":
		if s.selected == s.count() {
			return s, s.submit()
		}
		t, err := s.machine.Jump(context.Background(), s.selected)
		if err != nil {
			return s, nil
		}
		return s, func() tea.Msg { return t }
	}
	return s, nil
}

func (s *ReviewScreen) submit() tea.Cmd {
	t, _, err := s.machine.Submit()
	if err != nil {
		return nil
	}
	return func() tea.Msg { return t }
}

// submitLabel is the submit button text for the current answer count.
func submitLabel(p quiz.Progress) string {
	if p.AllAnswered() {
		return "Submit Quiz"
	}
	return fmt.Sprintf("Answer all questions (%d/%d)", p.AnsweredCount(), len(p.SelectedAnswers))
}

func (s *ReviewScreen) View(width, height int) string {
	ctrl := s.machine.Controller()
	p := ctrl.Progress()
	bank := ctrl.Bank()
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Review Your Answers"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d of %d questions answered • Enter to change", p.AnsweredCount(), bank.Len())))
	b.WriteString("\n\n")

	// Each row takes two lines; keep the cursor in view.
	visible := max((height-8)/2, 3)
	first := 0
	if cursor := min(s.selected, bank.Len()-1); cursor >= visible {
		first = cursor - visible + 1
	}
	last := min(first+visible, bank.Len())

	if first > 0 {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  ↑ %d more", first)))
		b.WriteString("\n")
	}
	for i := first; i < last; i++ {
		b.WriteString(s.renderRow(i, cw))
		b.WriteString("\n")
	}
	if last < bank.Len() {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  ↓ %d more", bank.Len()-last)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	btn := components.NewButton(submitLabel(p), p.AllAnswered())
	btn.Focused = s.selected == bank.Len()
	b.WriteString(btn.View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *ReviewScreen) renderRow(i, cw int) string {
	ctrl := s.machine.Controller()
	q := ctrl.Bank().At(i)
	answer, answered := ctrl.Progress().Answer(i)

	status := lipgloss.NewStyle().Foreground(theme.TextDim).Render("○")
	detail := theme.Hint.Render("Not answered")
	if answered {
		status = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("✓")
		detail = lipgloss.NewStyle().Foreground(theme.Secondary).Render("Your answer: " + answer)
	}

	prefix := "  "
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if i == s.selected {
		prefix = "▸ "
		promptStyle = promptStyle.Foreground(theme.Primary).Bold(true)
	}

	head := fmt.Sprintf("%s%s %s %s", prefix, status, theme.CategoryBadge(q.Category),
		promptStyle.Render(fmt.Sprintf("%d. %s", i+1, q.Prompt)))
	line := lipgloss.NewStyle().MaxWidth(cw).Render(head)
	return line + "\n      " + detail
}
