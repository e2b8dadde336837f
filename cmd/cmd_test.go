package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/trivia/internal/store"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("TRIVIA_DB", "")
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		_ = rootCmd.PersistentFlags().Set("db", "")
		_ = resetCmd.Flags().Set("all", "false")
		_ = statsCmd.Flags().Set("limit", "10")
		_ = questionsCmd.Flags().Set("category", "")
	})
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func seed(t *testing.T, path string) {
	t.Helper()
	st, err := store.Open(path)
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()
	require.NoError(t, st.KV().Set(ctx, store.KeyQuizState, `{"userName":"Ada"}`))
	require.NoError(t, st.KV().Set(ctx, store.KeyTheme, "light"))
	_, err = st.AttemptRepo().Record(ctx, store.Attempt{UserName: "Ada", Score: 9, Total: 12, Percentage: 75})
	require.NoError(t, err)
}

func TestQuestionsCommand(t *testing.T) {
	out, err := execute(t, "questions")
	require.NoError(t, err)
	assert.Contains(t, out, "12 questions")

	out, err = execute(t, "questions", "--category", "Science")
	require.NoError(t, err)
	assert.Contains(t, out, "3 questions")
	assert.NotContains(t, out, "History ")
}

func TestQuestionsCommandUnknownCategory(t *testing.T) {
	_, err := execute(t, "questions", "--category", "sports")
	assert.ErrorContains(t, err, "unknown category")
}

func TestStatsCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "trivia.db")

	out, err := execute(t, "stats", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No attempts yet.")

	seed(t, db)
	out, err = execute(t, "stats", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "9/12")
	assert.Contains(t, out, "1 attempts, best 75%, average 75%")
}

func TestResetKeepsHistoryByDefault(t *testing.T) {
	db := filepath.Join(t.TempDir(), "trivia.db")
	seed(t, db)

	out, err := execute(t, "reset", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Quiz progress cleared.")

	st, err := store.Open(db)
	require.NoError(t, err)
	defer st.Close()
	ctx := context.Background()

	_, ok, err := st.KV().Get(ctx, store.KeyQuizState)
	require.NoError(t, err)
	assert.False(t, ok)

	mode, ok, err := st.KV().Get(ctx, store.KeyTheme)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", mode)

	sum, err := st.AttemptRepo().Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Count)
}

func TestResetAll(t *testing.T) {
	db := filepath.Join(t.TempDir(), "trivia.db")
	seed(t, db)

	_, err := execute(t, "reset", "--all", "--db", db)
	require.NoError(t, err)

	st, err := store.Open(db)
	require.NoError(t, err)
	defer st.Close()
	ctx := context.Background()

	_, ok, err := st.KV().Get(ctx, store.KeyTheme)
	require.NoError(t, err)
	assert.False(t, ok)

	sum, err := st.AttemptRepo().Summary(ctx)
	require.NoError(t, err)
	assert.Zero(t, sum.Count)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "trivia")
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ada", "Ada"},
		{"Ada Lovelace", "Ada Lovelace"},
		{"Augusta Ada King-Noel", "Augusta Ada King-..."},
		{"Zoë Zoë Zoë Zoë Zoë Zoë", "Zoë Zoë Zoë Zoë Z..."},
	}
	for _, tt := range tests {
		got := truncateName(tt.in, 20)
		assert.Equal(t, tt.want, got)
		assert.True(t, utf8.ValidString(got))
		assert.LessOrEqual(t, utf8.RuneCountInString(got), 20)
	}
}
