package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/trivia/internal/quiz"
)

func TestContentWidthBounds(t *testing.T) {
	assert.Equal(t, 20, ContentWidth(10))
	assert.Equal(t, 54, ContentWidth(60))
	assert.Equal(t, 64, ContentWidth(200))
}

func TestOptionListMarksChosenAndFocused(t *testing.T) {
	o := OptionList{
		Options: []string{"Paris", "Rome", "Madrid"},
		Focused: 2,
		Chosen:  "Rome",
	}
	view := o.View(40)
	assert.Contains(t, view, "A)  Paris")
	assert.Contains(t, view, "● ")
	assert.Contains(t, view, "▸ ")
	assert.Equal(t, 1, strings.Count(view, "●"))
	assert.Equal(t, 1, strings.Count(view, "▸"))
}

func TestOptionListNothingChosen(t *testing.T) {
	o := OptionList{Options: []string{"Yes", "No"}}
	assert.NotContains(t, o.View(30), "●")
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "A", Label(0))
	assert.Equal(t, "D", Label(3))
}

func TestStepDots(t *testing.T) {
	dots := StepDots(1, []bool{true, true, false, false})
	assert.Equal(t, 1, strings.Count(dots, "◉"))
	assert.Equal(t, 1, strings.Count(dots, "●"))
	assert.Equal(t, 2, strings.Count(dots, "○"))
}

func TestProgressBarPercent(t *testing.T) {
	view := NewProgressBar("Question 3 of 12", 0.25, true, 60).View()
	assert.Contains(t, view, "Question 3 of 12")
	assert.Contains(t, view, "25%")
}

func TestScoreRingLabel(t *testing.T) {
	assert.Contains(t, ScoreRing(83, quiz.BandExcellent), "83%")
	assert.Contains(t, ScoreRing(150, quiz.BandExcellent), "100%")
	assert.Contains(t, ScoreRing(-4, quiz.BandLow), "0%")
}

func TestButtonDisabledHidesFocus(t *testing.T) {
	b := NewButton("Submit Quiz", false)
	b.Focused = true
	assert.NotContains(t, b.View(), "▸")

	b.Enabled = true
	assert.Contains(t, b.View(), "▸ Submit Quiz")
}

func TestChips(t *testing.T) {
	view := Chips("12 Questions", "4 Categories")
	assert.Contains(t, view, "12 Questions")
	assert.Contains(t, view, "4 Categories")
}

func TestMenuSkipsDisabledAndRunsAction(t *testing.T) {
	ran := ""
	m := NewMenu([]MenuItem{
		{Label: "Try Again", Action: func() tea.Cmd { ran = "again"; return nil }},
		{Label: "Locked", Disabled: true},
		{Label: "History", Action: func() tea.Cmd { ran = "history"; return nil }},
	})
	require.Equal(t, 0, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 2, m.Selected)

	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, "history", ran)
}

func TestTextInputErrorClearsOnEdit(t *testing.T) {
	in := NewTextInput("Your name", 40)
	in.SetError("Please enter your name to continue")
	assert.Contains(t, in.View(), "Please enter your name")

	in, _ = in.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	assert.Equal(t, "a", in.Value())
	assert.Empty(t, in.Error())
}
