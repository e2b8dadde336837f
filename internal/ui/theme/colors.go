package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/questions"
	"github.com/abhisek/trivia/internal/quiz"
)

// CategoryColor returns the badge color of a question category.
func CategoryColor(c questions.Category) color.Color {
	switch c {
	case questions.CategoryGeneral:
		return Secondary
	case questions.CategoryScience:
		return Primary
	case questions.CategoryHistory:
		return Accent
	case questions.CategoryGeography:
		return Success
	}
	return TextDim
}

// CategoryBadge renders the category as a colored pill.
func CategoryBadge(c questions.Category) string {
	return lipgloss.NewStyle().
		Foreground(Bg).
		Background(CategoryColor(c)).
		Bold(true).
		Padding(0, 1).
		Render(c.DisplayName())
}

// BandColor returns the color used for a score band.
func BandColor(b quiz.Band) color.Color {
	switch b {
	case quiz.BandExcellent:
		return Success
	case quiz.BandGood:
		return Secondary
	case quiz.BandFair:
		return Warning
	case quiz.BandLow:
		return Error
	}
	return TextDim
}
