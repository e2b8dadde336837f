package questions

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBank(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 12, b.Len())
	assert.Equal(t, "What sound does a cat make?", b.At(0).Prompt)
	assert.Equal(t, "Meow-Meow", b.At(0).CorrectAnswer)
	assert.Equal(t, CategoryGeography, b.At(11).Category)

	for i, q := range b.All() {
		assert.Equal(t, i+1, q.ID, "ids are sequential")
		assert.True(t, q.HasOption(q.CorrectAnswer), "question %d answer among options", q.ID)
	}

	assert.Equal(t, AllCategories(), b.Categories())
	assert.Len(t, b.ByCategory(CategoryScience), 3)
}

func TestLoadRejectsInvalidBanks(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name: "empty",
			doc:  `[]`,
		},
		{
			name: "unknown category",
			doc:  `[{"id":1,"category":"Sports","question":"q","options":["a","b"],"correctAnswer":"a"}]`,
		},
		{
			name: "missing answer",
			doc:  `[{"id":1,"category":"General","question":"q","options":["a","b"]}]`,
		},
		{
			name:    "answer not an option",
			doc:     `[{"id":1,"category":"General","question":"q","options":["a","b"],"correctAnswer":"c"}]`,
			wantErr: ErrAnswerNotOption,
		},
		{
			name: "duplicate ids",
			doc: `[{"id":1,"category":"General","question":"q","options":["a","b"],"correctAnswer":"a"},
			       {"id":1,"category":"Science","question":"r","options":["c","d"],"correctAnswer":"d"}]`,
			wantErr: ErrDuplicateID,
		},
		{
			name: "malformed",
			doc:  `[{"id":`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.doc))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
		})
	}
}

func TestAllReturnsCopy(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)

	all := b.All()
	all[0].Prompt = "changed"
	assert.NotEqual(t, "changed", b.At(0).Prompt)
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("science")
	require.NoError(t, err)
	assert.Equal(t, CategoryScience, c)

	_, err = ParseCategory("sports")
	assert.Error(t, err)
}
