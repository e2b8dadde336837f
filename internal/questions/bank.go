package questions

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/abhisek/trivia/internal/validate"
)

//go:embed bank.json
var defaultBankJSON []byte

var (
	ErrDuplicateID     = errors.New("duplicate question id")
	ErrAnswerNotOption = errors.New("correct answer is not one of the options")
)

// Question is a single multiple-choice question.
type Question struct {
	ID            int      `json:"id"`
	Category      Category `json:"category"`
	Prompt        string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// HasOption reports whether answer is one of the question's options.
func (q Question) HasOption(answer string) bool {
	return slices.Contains(q.Options, answer)
}

// IsCorrect reports whether answer matches the correct answer.
func (q Question) IsCorrect(answer string) bool {
	return answer == q.CorrectAnswer
}

// Bank is an immutable, ordered set of questions.
type Bank struct {
	questions []Question
}

// Load parses and validates a question bank document.
func Load(data []byte) (*Bank, error) {
	if err := validate.JSON(validate.Schema{Name: "question-bank", Definition: bankSchema}, data); err != nil {
		return nil, err
	}

	var qs []Question
	if err := json.Unmarshal(data, &qs); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}

	seen := make(map[int]bool, len(qs))
	for _, q := range qs {
		if seen[q.ID] {
			return nil, fmt.Errorf("question %d: %w", q.ID, ErrDuplicateID)
		}
		seen[q.ID] = true
		if !q.Category.Valid() {
			return nil, fmt.Errorf("question %d: unknown category %q", q.ID, q.Category)
		}
		if !q.HasOption(q.CorrectAnswer) {
			return nil, fmt.Errorf("question %d: %w", q.ID, ErrAnswerNotOption)
		}
	}

	return &Bank{questions: qs}, nil
}

// Default returns the built-in question bank.
func Default() (*Bank, error) {
	b, err := Load(defaultBankJSON)
	if err != nil {
		return nil, fmt.Errorf("load built-in questions: %w", err)
	}
	return b, nil
}

// New builds a bank from already-constructed questions. Intended for tests
// and callers that assemble questions in code; no validation is performed.
func New(qs []Question) *Bank {
	return &Bank{questions: slices.Clone(qs)}
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// At returns the question at index i. It panics if i is out of range.
func (b *Bank) At(i int) Question {
	return b.questions[i]
}

// All returns a copy of all questions in order.
func (b *Bank) All() []Question {
	return slices.Clone(b.questions)
}

// ByCategory returns the questions in the given category, in bank order.
func (b *Bank) ByCategory(c Category) []Question {
	var out []Question
	for _, q := range b.questions {
		if q.Category == c {
			out = append(out, q)
		}
	}
	return out
}

// Categories returns the distinct categories present, in display order.
func (b *Bank) Categories() []Category {
	var out []Category
	for _, c := range AllCategories() {
		if len(b.ByCategory(c)) > 0 {
			out = append(out, c)
		}
	}
	return out
}
