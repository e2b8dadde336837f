package quiz

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/trivia/internal/questions"
	"github.com/abhisek/trivia/internal/store"
)

// memKV is an in-memory store.KV with switchable failures.
type memKV struct {
	data     map[string]string
	getErr   error
	setErr   error
	delErr   error
	setCalls int
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string]string)}
}

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(_ context.Context, key, value string) error {
	m.setCalls++
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func (m *memKV) Delete(_ context.Context, key string) error {
	if m.delErr != nil {
		return m.delErr
	}
	delete(m.data, key)
	return nil
}

func testBank(t *testing.T) *questions.Bank {
	t.Helper()
	b, err := questions.Default()
	require.NoError(t, err)
	return b
}

func newTestController(t *testing.T, kv store.KV) (*Controller, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	c := NewController(kv, testBank(t), log.New(&buf, "", 0))
	return c, &buf
}

func saveRaw(t *testing.T, kv *memKV, p Progress) {
	t.Helper()
	b, err := json.Marshal(p)
	require.NoError(t, err)
	kv.data[store.KeyQuizState] = string(b)
}

func TestHydrateFreshIsDefault(t *testing.T) {
	c, _ := newTestController(t, newMemKV())
	p := c.Hydrate(context.Background())

	assert.True(t, c.Loaded())
	assert.Equal(t, 0, p.CurrentQuestion)
	assert.Len(t, p.SelectedAnswers, 12)
	for _, a := range p.SelectedAnswers {
		assert.Nil(t, a)
	}
	assert.False(t, p.QuizStarted)
	assert.Empty(t, p.UserName)
}

func TestResetRestoresDefaultAndClearsStore(t *testing.T) {
	kv := newMemKV()
	c, _ := newTestController(t, kv)
	ctx := context.Background()
	c.Hydrate(ctx)

	require.NoError(t, c.Begin(ctx, "Ada"))
	require.NoError(t, c.SelectAnswer(ctx, "Meow-Meow"))
	require.True(t, c.Next(ctx))
	_, saved := kv.data[store.KeyQuizState]
	require.True(t, saved)

	c.Reset(ctx)

	assert.Equal(t, DefaultProgress(12), c.Progress())
	_, saved = kv.data[store.KeyQuizState]
	assert.False(t, saved)
}

func TestRoundTrip(t *testing.T) {
	kv := newMemKV()
	ctx := context.Background()

	c, _ := newTestController(t, kv)
	c.Hydrate(ctx)
	require.NoError(t, c.Begin(ctx, "Grace"))
	require.NoError(t, c.SelectAnswer(ctx, "Meow-Meow"))
	require.True(t, c.Next(ctx))
	require.NoError(t, c.SelectAnswer(ctx, "Books"))
	want := c.Progress()

	reloaded, _ := newTestController(t, kv)
	got := reloaded.Hydrate(ctx)

	assert.Equal(t, want, got)
	assert.Equal(t, 1, got.CurrentQuestion)
	assert.Equal(t, "Grace", got.UserName)
	assert.True(t, got.QuizStarted)
}

func TestRoundTripSQLite(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "trivia.db"))
	require.NoError(t, err)
	defer s.Close()
	ctx := context.Background()

	c, _ := newTestController(t, s.KV())
	c.Hydrate(ctx)
	require.NoError(t, c.Begin(ctx, "Linus"))
	require.NoError(t, c.SelectAnswer(ctx, "Bhau-Bhau"))

	reloaded, _ := newTestController(t, s.KV())
	assert.Equal(t, c.Progress(), reloaded.Hydrate(ctx))
}

func TestHydrateRejectsStaleData(t *testing.T) {
	tests := []struct {
		name string
		raw  func(t *testing.T, kv *memKV)
	}{
		{
			name: "shorter answer list",
			raw: func(t *testing.T, kv *memKV) {
				p := DefaultProgress(10)
				p.QuizStarted = true
				p.CurrentQuestion = 3
				saveRaw(t, kv, p)
			},
		},
		{
			name: "longer answer list",
			raw: func(t *testing.T, kv *memKV) {
				p := DefaultProgress(13)
				p.UserName = "Old"
				saveRaw(t, kv, p)
			},
		},
		{
			name: "index out of range",
			raw: func(t *testing.T, kv *memKV) {
				p := DefaultProgress(12)
				p.CurrentQuestion = 12
				saveRaw(t, kv, p)
			},
		},
		{
			name: "answer from another question set",
			raw: func(t *testing.T, kv *memKV) {
				p := DefaultProgress(12)
				p.SelectedAnswers[0] = Ptr("Woof")
				saveRaw(t, kv, p)
			},
		},
		{
			name: "malformed json",
			raw: func(t *testing.T, kv *memKV) {
				kv.data[store.KeyQuizState] = `{"currentQuestion":`
			},
		},
		{
			name: "wrong shape",
			raw: func(t *testing.T, kv *memKV) {
				kv.data[store.KeyQuizState] = `{"currentQuestion":"two","selectedAnswers":[],"userName":"x","quizStarted":true}`
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := newMemKV()
			tt.raw(t, kv)

			c, logs := newTestController(t, kv)
			got := c.Hydrate(context.Background())

			assert.Equal(t, DefaultProgress(12), got)
			assert.Contains(t, logs.String(), "discarding saved quiz state")
		})
	}
}

func TestHydrateReadFailureFallsBack(t *testing.T) {
	kv := newMemKV()
	kv.getErr = errors.New("disk on fire")

	c, logs := newTestController(t, kv)
	got := c.Hydrate(context.Background())

	assert.Equal(t, DefaultProgress(12), got)
	assert.Contains(t, logs.String(), "failed to load quiz state")
}

func TestHydrateOnlyOnce(t *testing.T) {
	kv := newMemKV()
	c, _ := newTestController(t, kv)
	ctx := context.Background()
	c.Hydrate(ctx)
	require.NoError(t, c.Begin(ctx, "Ada"))

	p := DefaultProgress(12)
	saveRaw(t, kv, p)

	got := c.Hydrate(ctx)
	assert.Equal(t, "Ada", got.UserName, "second hydrate keeps in-memory state")
}

func TestWriteFailureKeepsSessionUsable(t *testing.T) {
	kv := newMemKV()
	kv.setErr = errors.New("quota exceeded")

	c, logs := newTestController(t, kv)
	ctx := context.Background()
	c.Hydrate(ctx)

	require.NoError(t, c.Begin(ctx, "Ada"))
	require.NoError(t, c.SelectAnswer(ctx, "Meow-Meow"))

	got, ok := c.CurrentAnswer()
	assert.True(t, ok)
	assert.Equal(t, "Meow-Meow", got)
	assert.True(t, c.Progress().QuizStarted)
	assert.Contains(t, logs.String(), "failed to save quiz state")
}

func TestResetDeleteFailureIsLogged(t *testing.T) {
	kv := newMemKV()
	kv.delErr = errors.New("read-only")

	c, logs := newTestController(t, kv)
	ctx := context.Background()
	c.Hydrate(ctx)
	require.NoError(t, c.Begin(ctx, "Ada"))

	c.Reset(ctx)
	assert.Equal(t, DefaultProgress(12), c.Progress())
	assert.Contains(t, logs.String(), "failed to clear quiz state")
}

func TestSelectAnswerIdempotent(t *testing.T) {
	kv := newMemKV()
	c, _ := newTestController(t, kv)
	ctx := context.Background()
	c.Hydrate(ctx)

	require.NoError(t, c.SelectAnswer(ctx, "Oink-Oink"))
	once := c.Progress()
	writes := kv.setCalls

	require.NoError(t, c.SelectAnswer(ctx, "Oink-Oink"))
	assert.Equal(t, once, c.Progress())
	assert.Equal(t, writes, kv.setCalls)
}

func TestSelectAnswerOverwrites(t *testing.T) {
	c, _ := newTestController(t, newMemKV())
	ctx := context.Background()
	c.Hydrate(ctx)

	require.NoError(t, c.SelectAnswer(ctx, "Oink-Oink"))
	require.NoError(t, c.SelectAnswer(ctx, "Meow-Meow"))

	got, _ := c.CurrentAnswer()
	assert.Equal(t, "Meow-Meow", got)
	assert.Equal(t, 1, c.Progress().AnsweredCount())
}

func TestSelectAnswerRejectsUnknownOption(t *testing.T) {
	c, _ := newTestController(t, newMemKV())
	ctx := context.Background()
	c.Hydrate(ctx)

	err := c.SelectAnswer(ctx, "Woof")
	assert.ErrorIs(t, err, ErrNotAnOption)
	_, ok := c.CurrentAnswer()
	assert.False(t, ok)
}

func TestUpdateBeforeHydrate(t *testing.T) {
	c, _ := newTestController(t, newMemKV())
	err := c.Update(context.Background(), Patch{UserName: Ptr("Ada")})
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestUpdateRejectsInvalidPatch(t *testing.T) {
	c, _ := newTestController(t, newMemKV())
	ctx := context.Background()
	c.Hydrate(ctx)

	assert.ErrorIs(t, c.Update(ctx, Patch{CurrentQuestion: Ptr(-1)}), ErrOutOfRange)
	assert.ErrorIs(t, c.Update(ctx, Patch{CurrentQuestion: Ptr(12)}), ErrOutOfRange)
	assert.ErrorIs(t, c.Update(ctx, Patch{SelectedAnswers: make([]*string, 3)}), ErrLengthMismatch)
	assert.Equal(t, DefaultProgress(12), c.Progress())
}

func TestUpdateShallowMerge(t *testing.T) {
	c, _ := newTestController(t, newMemKV())
	ctx := context.Background()
	c.Hydrate(ctx)

	require.NoError(t, c.Update(ctx, Patch{UserName: Ptr("Ada")}))
	require.NoError(t, c.Update(ctx, Patch{CurrentQuestion: Ptr(4)}))

	p := c.Progress()
	assert.Equal(t, "Ada", p.UserName)
	assert.Equal(t, 4, p.CurrentQuestion)
	assert.False(t, p.QuizStarted)
}

func TestNavigationGuards(t *testing.T) {
	c, _ := newTestController(t, newMemKV())
	ctx := context.Background()
	c.Hydrate(ctx)

	assert.False(t, c.CanGoBack())
	assert.False(t, c.CanGoNext(), "unanswered question blocks next")
	assert.False(t, c.Next(ctx))

	require.NoError(t, c.SelectAnswer(ctx, "Meow-Meow"))
	assert.True(t, c.CanGoNext())
	require.True(t, c.Next(ctx))
	assert.Equal(t, 1, c.Progress().CurrentQuestion)

	// Back is allowed even with the current question unanswered.
	assert.False(t, c.CanGoNext())
	assert.True(t, c.CanGoBack())
	require.True(t, c.Back(ctx))
	assert.Equal(t, 0, c.Progress().CurrentQuestion)
	assert.False(t, c.Back(ctx))
}

func TestCanGoNextFalseOnLastQuestion(t *testing.T) {
	c, _ := newTestController(t, newMemKV())
	ctx := context.Background()
	c.Hydrate(ctx)

	require.NoError(t, c.JumpTo(ctx, 11))
	require.NoError(t, c.SelectAnswer(ctx, "Nile"))

	assert.True(t, c.IsLastQuestion())
	assert.False(t, c.CanGoNext())
	assert.False(t, c.Next(ctx))
}

func TestProgressIsSnapshot(t *testing.T) {
	c, _ := newTestController(t, newMemKV())
	ctx := context.Background()
	c.Hydrate(ctx)
	require.NoError(t, c.SelectAnswer(ctx, "Meow-Meow"))

	p := c.Progress()
	*p.SelectedAnswers[0] = "tampered"
	p.SelectedAnswers[1] = Ptr("Books")

	got, _ := c.CurrentAnswer()
	assert.Equal(t, "Meow-Meow", got)
	assert.Equal(t, 1, c.Progress().AnsweredCount())
}
