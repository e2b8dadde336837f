package start

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/flow"
	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/screen"
	"github.com/abhisek/trivia/internal/ui/components"
	"github.com/abhisek/trivia/internal/ui/layout"
	"github.com/abhisek/trivia/internal/ui/theme"
)

const (
	nameLimit     = 40
	emptyNameHint = "Please enter your name to continue"
)

// StartScreen asks for the player's name and starts the quiz.
type StartScreen struct {
	machine        *flow.Machine
	input          components.TextInput
	historyFactory func() screen.Screen
}

var _ screen.Screen = (*StartScreen)(nil)
var _ screen.KeyHintProvider = (*StartScreen)(nil)

// New creates a StartScreen. The input is prefilled with any saved name.
// historyFactory may be nil, which hides the history shortcut.
func New(machine *flow.Machine, historyFactory func() screen.Screen) *StartScreen {
	input := components.NewTextInput("Enter your name", nameLimit)
	input.SetValue(machine.Controller().Progress().UserName)
	return &StartScreen{
		machine:        machine,
		input:          input,
		historyFactory: historyFactory,
	}
}

func (s *StartScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *StartScreen) Title() string {
	return "Welcome"
}

func (s *StartScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Start Quiz"},
	}
	if s.historyFactory != nil {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+P", Description: "Past attempts"})
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+T", Description: "Theme"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

func (s *StartScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter":
			return s, s.submit()
		case "ctrl+p":
			if s.historyFactory == nil {
				return s, nil
			}
			next := s.historyFactory()
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *StartScreen) submit() tea.Cmd {
	t, err := s.machine.Start(context.Background(), s.input.Value())
	switch {
	case errors.Is(err, flow.ErrEmptyName):
		s.input.SetError(emptyNameHint)
		return nil
	case err != nil:
		s.input.SetError(err.Error())
		return nil
	}
	return func() tea.Msg { return t }
}

func (s *StartScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	bank := s.machine.Controller().Bank()

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Trivia Quiz")

	names := make([]string, 0, len(bank.Categories()))
	for _, c := range bank.Categories() {
		names = append(names, c.DisplayName())
	}
	subtitle := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Challenge yourself with questions across %s!", joinNames(names)))

	form := strings.Join([]string{
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Your Name"),
		s.input.View(),
		"",
		components.NewButton("Start Quiz", true).View(),
	}, "\n")

	chips := components.Chips(
		fmt.Sprintf("%d Questions", bank.Len()),
		fmt.Sprintf("%d Categories", len(bank.Categories())),
		"Track Progress",
	)

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		subtitle,
		"",
		components.Card(form, cw),
		"",
		chips,
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// joinNames renders "a, b, c, and d".
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	}
	return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
}
