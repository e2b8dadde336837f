package question

import (
	"context"
	"strconv"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/trivia/internal/anim"
	"github.com/abhisek/trivia/internal/flow"
	"github.com/abhisek/trivia/internal/keynav"
	"github.com/abhisek/trivia/internal/screen"
	"github.com/abhisek/trivia/internal/ui/layout"
)

const feedbackText = "Answer recorded"

// QuestionScreen shows the current question and handles answering and
// moving between questions.
type QuestionScreen struct {
	machine *flow.Machine
	focus   keynav.Focus
	flash   anim.Flash
	shown   int // question index the focus is attached to
	errMsg  string
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)

// New creates a QuestionScreen on the controller's current question.
func New(machine *flow.Machine) *QuestionScreen {
	s := &QuestionScreen{
		machine: machine,
		focus:   keynav.New(),
		flash:   anim.NewFlash(),
		shown:   -1,
	}
	s.sync()
	return s
}

func (s *QuestionScreen) Init() tea.Cmd {
	return nil
}

func (s *QuestionScreen) Title() string {
	return "Quiz"
}

func (s *QuestionScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "←→", Description: "Back/Next"},
	}
	if s.machine.CanReview() {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Review"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+T", Description: "Theme"})
}

// sync re-attaches keyboard focus when the current question changed, and
// cancels a feedback flash that belonged to the old question.
func (s *QuestionScreen) sync() {
	ctrl := s.machine.Controller()
	i := ctrl.Progress().CurrentQuestion
	if i == s.shown {
		return
	}
	s.shown = i
	s.errMsg = ""
	s.flash.Cancel()
	s.focus.Attach(ctrl.CurrentQuestion().Options)
}

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case anim.FlashExpiredMsg:
		s.flash.Update(msg)
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuestionScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	ctx := context.Background()
	ctrl := s.machine.Controller()

	switch msg.String() {
	case "left", "h":
		ctrl.Back(ctx)
		s.sync()
		return s, nil
	case "right", "l":
		ctrl.Next(ctx)
		s.sync()
		return s, nil
	case "r", "tab":
		return s, s.review()
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		n, _ := strconv.Atoi(msg.String())
		opts := ctrl.CurrentQuestion().Options
		if n > len(opts) {
			return s, nil
		}
		s.focus.SetIndex(n - 1)
		return s, s.choose(opts[n-1])
	}

	action, opt := s.focus.HandleKey(msg)
	if action == keynav.ActionSelect {
		return s, s.choose(opt)
	}
	return s, nil
}

// choose records answer and flashes confirmation when it changed.
func (s *QuestionScreen) choose(answer string) tea.Cmd {
	ctrl := s.machine.Controller()
	if prev, ok := ctrl.CurrentAnswer(); ok && prev == answer {
		return nil
	}
	if err := ctrl.SelectAnswer(context.Background(), answer); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.errMsg = ""
	return s.flash.Show(feedbackText)
}

func (s *QuestionScreen) review() tea.Cmd {
	t, err := s.machine.Review()
	if err != nil {
		return nil
	}
	s.flash.Cancel()
	s.focus.Detach()
	return func() tea.Msg { return t }
}
