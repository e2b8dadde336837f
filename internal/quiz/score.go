package quiz

import (
	"math"

	"github.com/abhisek/trivia/internal/questions"
)

// Verdict is the headline and encouragement shown with a score.
type Verdict struct {
	Title   string
	Message string
}

// Band groups percentages for colouring the score ring.
type Band int

const (
	BandLow       Band = iota // below 40%
	BandFair                  // 40% and up
	BandGood                  // 60% and up
	BandExcellent             // 80% and up
)

// Result is a scored quiz run.
type Result struct {
	Score      int
	Total      int
	Percentage int
	Verdict    Verdict
	Band       Band
}

// Score counts answers matching the correct answer at the same index.
func Score(bank *questions.Bank, answers []*string) int {
	score := 0
	for i, a := range answers {
		if i >= bank.Len() {
			break
		}
		if a != nil && bank.At(i).IsCorrect(*a) {
			score++
		}
	}
	return score
}

// Percentage returns score/total as a whole percentage, rounded half up.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(score) / float64(total)))
}

// VerdictFor picks the verdict for a percentage.
func VerdictFor(pct int) Verdict {
	switch {
	case pct == 100:
		return Verdict{Title: "Perfect Score! 🎉", Message: "You're a true knowledge master!"}
	case pct >= 80:
		return Verdict{Title: "Excellent! 🌟", Message: "You really know your stuff!"}
	case pct >= 60:
		return Verdict{Title: "Good Job! 👍", Message: "Solid performance, keep learning!"}
	case pct >= 40:
		return Verdict{Title: "Keep Trying! 💪", Message: "Practice makes perfect!"}
	default:
		return Verdict{Title: "Keep Learning! 📚", Message: "Every attempt is a step forward!"}
	}
}

// BandFor picks the colour band for a percentage.
func BandFor(pct int) Band {
	switch {
	case pct >= 80:
		return BandExcellent
	case pct >= 60:
		return BandGood
	case pct >= 40:
		return BandFair
	default:
		return BandLow
	}
}

// Evaluate scores answers against bank.
func Evaluate(bank *questions.Bank, answers []*string) Result {
	score := Score(bank, answers)
	pct := Percentage(score, bank.Len())
	return Result{
		Score:      score,
		Total:      bank.Len(),
		Percentage: pct,
		Verdict:    VerdictFor(pct),
		Band:       BandFor(pct),
	}
}
