// Package quiz owns the quiz progress: it hydrates it from the key-value
// store, applies user intents to it and persists every change.
package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/abhisek/trivia/internal/questions"
	"github.com/abhisek/trivia/internal/store"
	"github.com/abhisek/trivia/internal/validate"
)

var (
	ErrNotAnOption    = errors.New("answer is not one of the options")
	ErrOutOfRange     = errors.New("question index out of range")
	ErrLengthMismatch = errors.New("answer count does not match question count")
	ErrNotLoaded      = errors.New("quiz state not hydrated")
)

// Controller is the single owner and writer of quiz progress.
// It is not safe for concurrent use; Bubble Tea serializes all calls.
type Controller struct {
	kv     store.KV
	bank   *questions.Bank
	log    *log.Logger
	state  Progress
	loaded bool
}

// NewController creates a controller over kv for the given bank.
// Call Hydrate once before anything else.
func NewController(kv store.KV, bank *questions.Bank, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{
		kv:    kv,
		bank:  bank,
		log:   logger,
		state: DefaultProgress(bank.Len()),
	}
}

// Hydrate loads saved progress. Anything missing, unreadable or
// incompatible with the current bank yields the default state.
func (c *Controller) Hydrate(ctx context.Context) Progress {
	if c.loaded {
		return c.Progress()
	}
	c.loaded = true
	c.state = DefaultProgress(c.bank.Len())

	raw, found, err := c.kv.Get(ctx, store.KeyQuizState)
	if err != nil {
		c.log.Printf("warning: failed to load quiz state: %v", err)
		return c.Progress()
	}
	if !found {
		return c.Progress()
	}

	p, err := c.decode(raw)
	if err != nil {
		c.log.Printf("warning: discarding saved quiz state: %v", err)
		return c.Progress()
	}
	c.state = p
	return c.Progress()
}

// decode parses and checks saved progress against the bank.
func (c *Controller) decode(raw string) (Progress, error) {
	if err := validate.JSON(progressSchema, []byte(raw)); err != nil {
		return Progress{}, err
	}
	var p Progress
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Progress{}, fmt.Errorf("decode quiz state: %w", err)
	}
	if err := c.check(p); err != nil {
		return Progress{}, err
	}
	return p, nil
}

// check verifies the invariants tying progress to the bank.
func (c *Controller) check(p Progress) error {
	n := c.bank.Len()
	if len(p.SelectedAnswers) != n {
		return fmt.Errorf("%w: have %d, want %d", ErrLengthMismatch, len(p.SelectedAnswers), n)
	}
	if p.CurrentQuestion < 0 || p.CurrentQuestion >= n {
		return fmt.Errorf("%w: %d", ErrOutOfRange, p.CurrentQuestion)
	}
	for i, a := range p.SelectedAnswers {
		if a != nil && !c.bank.At(i).HasOption(*a) {
			return fmt.Errorf("question %d: %w: %q", i+1, ErrNotAnOption, *a)
		}
	}
	return nil
}

// Loaded reports whether Hydrate has run.
func (c *Controller) Loaded() bool {
	return c.loaded
}

// Progress returns a copy of the current state.
func (c *Controller) Progress() Progress {
	return c.state.Clone()
}

// Bank returns the question bank.
func (c *Controller) Bank() *questions.Bank {
	return c.bank
}

// Update merges patch into the current state and persists the result.
// A patch that would break the progress invariants is rejected. Storage
// failures are logged and never returned.
func (c *Controller) Update(ctx context.Context, patch Patch) error {
	if !c.loaded {
		return ErrNotLoaded
	}
	next := c.state.apply(patch)
	if err := c.check(next); err != nil {
		return err
	}
	c.state = next
	c.persist(ctx)
	return nil
}

// Reset restores the default state and removes the saved record.
func (c *Controller) Reset(ctx context.Context) {
	c.state = DefaultProgress(c.bank.Len())
	if err := c.kv.Delete(ctx, store.KeyQuizState); err != nil {
		c.log.Printf("warning: failed to clear quiz state: %v", err)
	}
}

func (c *Controller) persist(ctx context.Context) {
	b, err := json.Marshal(c.state)
	if err != nil {
		c.log.Printf("warning: failed to encode quiz state: %v", err)
		return
	}
	if err := c.kv.Set(ctx, store.KeyQuizState, string(b)); err != nil {
		c.log.Printf("warning: failed to save quiz state: %v", err)
	}
}

// CurrentQuestion returns the question at the current index.
func (c *Controller) CurrentQuestion() questions.Question {
	return c.bank.At(c.state.CurrentQuestion)
}

// CurrentAnswer returns the answer selected for the current question.
func (c *Controller) CurrentAnswer() (string, bool) {
	return c.state.Answer(c.state.CurrentQuestion)
}

// SelectAnswer records answer for the current question, replacing any
// earlier choice. Re-selecting the same answer changes nothing.
func (c *Controller) SelectAnswer(ctx context.Context, answer string) error {
	i := c.state.CurrentQuestion
	if !c.bank.At(i).HasOption(answer) {
		return fmt.Errorf("question %d: %w: %q", i+1, ErrNotAnOption, answer)
	}
	if prev, ok := c.state.Answer(i); ok && prev == answer {
		return nil
	}
	answers := c.Progress().SelectedAnswers
	answers[i] = Ptr(answer)
	return c.Update(ctx, Patch{SelectedAnswers: answers})
}

// CanGoBack reports whether there is a previous question.
func (c *Controller) CanGoBack() bool {
	return c.state.CurrentQuestion > 0
}

// CanGoNext reports whether the user may move forward: the current
// question is answered and it is not the last one.
func (c *Controller) CanGoNext() bool {
	_, answered := c.CurrentAnswer()
	return answered && !c.IsLastQuestion()
}

// IsLastQuestion reports whether the current question is the final one.
func (c *Controller) IsLastQuestion() bool {
	return c.state.CurrentQuestion == c.bank.Len()-1
}

// Next moves to the following question if allowed.
func (c *Controller) Next(ctx context.Context) bool {
	if !c.CanGoNext() {
		return false
	}
	return c.Update(ctx, Patch{CurrentQuestion: Ptr(c.state.CurrentQuestion + 1)}) == nil
}

// Back moves to the previous question. Always allowed except at the start.
func (c *Controller) Back(ctx context.Context) bool {
	if !c.CanGoBack() {
		return false
	}
	return c.Update(ctx, Patch{CurrentQuestion: Ptr(c.state.CurrentQuestion - 1)}) == nil
}

// JumpTo sets the current question index.
func (c *Controller) JumpTo(ctx context.Context, i int) error {
	return c.Update(ctx, Patch{CurrentQuestion: Ptr(i)})
}

// Begin records the user's name and marks the quiz as started.
func (c *Controller) Begin(ctx context.Context, name string) error {
	return c.Update(ctx, Patch{UserName: Ptr(name), QuizStarted: Ptr(true)})
}

// Result scores the current answers.
func (c *Controller) Result() Result {
	return Evaluate(c.bank, c.state.SelectedAnswers)
}
