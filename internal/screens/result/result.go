package result

import (
	"context"
	"fmt"
	"log"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/anim"
	"github.com/abhisek/trivia/internal/flow"
	"github.com/abhisek/trivia/internal/quiz"
	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/screen"
	"github.com/abhisek/trivia/internal/store"
	"github.com/abhisek/trivia/internal/ui/components"
	"github.com/abhisek/trivia/internal/ui/layout"
	"github.com/abhisek/trivia/internal/ui/theme"
)

// attemptRecordedMsg reports the outcome of saving the attempt.
type attemptRecordedMsg struct {
	Err error
}

// ResultScreen shows the final score with an animated ring.
type ResultScreen struct {
	machine        *flow.Machine
	result         quiz.Result
	userName       string
	attempts       store.AttemptRepo
	log            *log.Logger
	historyFactory func() screen.Screen
	ring           anim.CountUp
	menu           components.Menu
	recorded       bool
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen for the machine's scored result. attempts and
// historyFactory may be nil.
func New(machine *flow.Machine, attempts store.AttemptRepo, logger *log.Logger, historyFactory func() screen.Screen) *ResultScreen {
	if logger == nil {
		logger = log.Default()
	}
	r, _ := machine.Result()
	s := &ResultScreen{
		machine:        machine,
		result:         r,
		userName:       machine.Controller().Progress().UserName,
		attempts:       attempts,
		log:            logger,
		historyFactory: historyFactory,
		ring:           anim.NewCountUp(r.Percentage),
	}

	items := []components.MenuItem{
		{Label: "Try Again", Action: s.restart},
	}
	if historyFactory != nil {
		items = append(items, components.MenuItem{Label: "Past Attempts", Action: s.openHistory})
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *ResultScreen) Init() tea.Cmd {
	return tea.Batch(s.ring.Start(s.result.Percentage), s.record())
}

func (s *ResultScreen) Title() string {
	return "Results"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+T", Description: "Theme"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// record saves the attempt once. Failures are logged and never block the
// screen.
func (s *ResultScreen) record() tea.Cmd {
	if s.attempts == nil || s.recorded {
		return nil
	}
	s.recorded = true
	a := store.Attempt{
		UserName:   s.userName,
		Score:      s.result.Score,
		Total:      s.result.Total,
		Percentage: s.result.Percentage,
	}
	repo := s.attempts
	return func() tea.Msg {
		_, err := repo.Record(context.Background(), a)
		return attemptRecordedMsg{Err: err}
	}
}

func (s *ResultScreen) restart() tea.Cmd {
	t, err := s.machine.Restart(context.Background())
	if err != nil {
		return nil
	}
	s.ring.Cancel()
	return func() tea.Msg { return t }
}

func (s *ResultScreen) openHistory() tea.Cmd {
	next := s.historyFactory()
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case anim.CountUpTickMsg:
		return s, s.ring.Update(msg)

	case attemptRecordedMsg:
		if msg.Err != nil {
			s.log.Printf("warning: failed to record attempt: %v", msg.Err)
		}
		return s, nil

	case tea.KeyPressMsg:
		if !s.ring.Done() {
			s.ring.Finish()
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	r := s.result
	cw := components.ContentWidth(width)
	center := func(st lipgloss.Style, text string) string {
		return st.Width(cw).Align(lipgloss.Center).Render(text)
	}

	sections := []string{
		center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), r.Verdict.Title),
		center(lipgloss.NewStyle().Foreground(theme.TextDim), fmt.Sprintf("%s, your score is", s.userName)),
		"",
		lipgloss.PlaceHorizontal(cw, lipgloss.Center, components.ScoreRing(s.ring.Value(), r.Band)),
		"",
		center(lipgloss.NewStyle().Foreground(theme.Text).Bold(true),
			fmt.Sprintf("You got %d out of %d questions correct", r.Score, r.Total)),
		center(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true), r.Verdict.Message),
		"",
		lipgloss.PlaceHorizontal(cw, lipgloss.Center, s.menu.View()),
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
