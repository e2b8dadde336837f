// Package flow is the start → quiz → review → result screen state machine.
package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/trivia/internal/quiz"
)

// Screen is one of the top-level UI modes.
type Screen int

const (
	ScreenStart Screen = iota
	ScreenQuiz
	ScreenReview
	ScreenResult
)

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case ScreenStart:
		return "start"
	case ScreenQuiz:
		return "quiz"
	case ScreenReview:
		return "review"
	case ScreenResult:
		return "result"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

var (
	ErrEmptyName         = errors.New("name is required")
	ErrNotReviewable     = errors.New("answer the last question before reviewing")
	ErrIncomplete        = errors.New("all questions must be answered before submitting")
	ErrInvalidTransition = errors.New("invalid transition")
)

// TransitionMsg tells the root model that the machine moved to a new screen.
type TransitionMsg struct {
	From, To Screen
}

// Machine drives screen changes from user actions. Quiz progress is read
// and written only through the controller.
type Machine struct {
	ctrl   *quiz.Controller
	screen Screen
	result *quiz.Result
}

// New creates a machine over a hydrated controller. A started quiz resumes
// on the quiz screen; review and result are never restored.
func New(ctrl *quiz.Controller) *Machine {
	s := ScreenStart
	if ctrl.Progress().QuizStarted {
		s = ScreenQuiz
	}
	return &Machine{ctrl: ctrl, screen: s}
}

// Screen returns the current screen.
func (m *Machine) Screen() Screen {
	return m.screen
}

// Controller returns the quiz controller the machine drives.
func (m *Machine) Controller() *quiz.Controller {
	return m.ctrl
}

// Result returns the scored result while on the result screen.
func (m *Machine) Result() (quiz.Result, bool) {
	if m.result == nil {
		return quiz.Result{}, false
	}
	return *m.result, true
}

func (m *Machine) expect(s Screen, event string) error {
	if m.screen != s {
		return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, event, m.screen)
	}
	return nil
}

func (m *Machine) moveTo(s Screen) TransitionMsg {
	msg := TransitionMsg{From: m.screen, To: s}
	m.screen = s
	return msg
}

// Start begins the quiz for name. Surrounding whitespace is ignored and an
// empty name is rejected with ErrEmptyName.
func (m *Machine) Start(ctx context.Context, name string) (TransitionMsg, error) {
	if err := m.expect(ScreenStart, "start"); err != nil {
		return TransitionMsg{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return TransitionMsg{}, ErrEmptyName
	}
	if err := m.ctrl.Begin(ctx, name); err != nil {
		return TransitionMsg{}, err
	}
	return m.moveTo(ScreenQuiz), nil
}

// CanReview reports whether the review action is available.
func (m *Machine) CanReview() bool {
	if m.screen != ScreenQuiz || !m.ctrl.IsLastQuestion() {
		return false
	}
	_, answered := m.ctrl.CurrentAnswer()
	return answered
}

// Review moves from the last, answered question to the review screen.
func (m *Machine) Review() (TransitionMsg, error) {
	if err := m.expect(ScreenQuiz, "review"); err != nil {
		return TransitionMsg{}, err
	}
	if !m.CanReview() {
		return TransitionMsg{}, ErrNotReviewable
	}
	return m.moveTo(ScreenReview), nil
}

// Jump returns to the quiz screen at question i. Other answers are kept.
func (m *Machine) Jump(ctx context.Context, i int) (TransitionMsg, error) {
	if err := m.expect(ScreenReview, "jump"); err != nil {
		return TransitionMsg{}, err
	}
	if err := m.ctrl.JumpTo(ctx, i); err != nil {
		return TransitionMsg{}, err
	}
	return m.moveTo(ScreenQuiz), nil
}

// CanSubmit reports whether every question has an answer.
func (m *Machine) CanSubmit() bool {
	return m.screen == ScreenReview && m.ctrl.Progress().AllAnswered()
}

// Submit scores the quiz and shows the result.
func (m *Machine) Submit() (TransitionMsg, quiz.Result, error) {
	if err := m.expect(ScreenReview, "submit"); err != nil {
		return TransitionMsg{}, quiz.Result{}, err
	}
	if !m.CanSubmit() {
		return TransitionMsg{}, quiz.Result{}, ErrIncomplete
	}
	r := m.ctrl.Result()
	m.result = &r
	return m.moveTo(ScreenResult), r, nil
}

// Restart clears progress and goes back to the start screen.
func (m *Machine) Restart(ctx context.Context) (TransitionMsg, error) {
	if err := m.expect(ScreenResult, "restart"); err != nil {
		return TransitionMsg{}, err
	}
	m.ctrl.Reset(ctx)
	m.result = nil
	return m.moveTo(ScreenStart), nil
}
