package quiz

import (
	"slices"
)

// Progress is the persisted record of a quiz run: where the user is, what
// they answered, who they are and whether they have started.
type Progress struct {
	CurrentQuestion int       `json:"currentQuestion"`
	SelectedAnswers []*string `json:"selectedAnswers"` // nil entry = unanswered
	UserName        string    `json:"userName"`
	QuizStarted     bool      `json:"quizStarted"`
}

// DefaultProgress returns the zero state for a bank of n questions.
func DefaultProgress(n int) Progress {
	return Progress{
		SelectedAnswers: make([]*string, n),
	}
}

// Clone returns a deep copy of p.
func (p Progress) Clone() Progress {
	out := p
	out.SelectedAnswers = make([]*string, len(p.SelectedAnswers))
	for i, a := range p.SelectedAnswers {
		if a != nil {
			v := *a
			out.SelectedAnswers[i] = &v
		}
	}
	return out
}

// Answer returns the answer for question i, if any.
func (p Progress) Answer(i int) (string, bool) {
	if i < 0 || i >= len(p.SelectedAnswers) || p.SelectedAnswers[i] == nil {
		return "", false
	}
	return *p.SelectedAnswers[i], true
}

// AnsweredCount returns how many questions have an answer.
func (p Progress) AnsweredCount() int {
	n := 0
	for _, a := range p.SelectedAnswers {
		if a != nil {
			n++
		}
	}
	return n
}

// AllAnswered reports whether every question has an answer.
func (p Progress) AllAnswered() bool {
	return !slices.Contains(p.SelectedAnswers, nil)
}

// Patch is a partial update to Progress. Nil fields are left unchanged.
type Patch struct {
	CurrentQuestion *int
	SelectedAnswers []*string
	UserName        *string
	QuizStarted     *bool
}

// apply shallow-merges the set fields of patch into p.
func (p Progress) apply(patch Patch) Progress {
	out := p.Clone()
	if patch.CurrentQuestion != nil {
		out.CurrentQuestion = *patch.CurrentQuestion
	}
	if patch.SelectedAnswers != nil {
		out.SelectedAnswers = Progress{SelectedAnswers: patch.SelectedAnswers}.Clone().SelectedAnswers
	}
	if patch.UserName != nil {
		out.UserName = *patch.UserName
	}
	if patch.QuizStarted != nil {
		out.QuizStarted = *patch.QuizStarted
	}
	return out
}

// Ptr returns a pointer to v. Handy for building a Patch.
func Ptr[T any](v T) *T {
	return &v
}
