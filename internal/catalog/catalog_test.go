package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mockround/internal/interview"
)

func TestDefault_Loads(t *testing.T) {
	c := Default()
	require.NotNil(t, c)
	assert.Equal(t, "embedded", c.Source())
	assert.Equal(t, 18, c.Len())

	counts := c.CountByDifficulty()
	for _, d := range interview.Difficulties {
		assert.Equal(t, 6, counts[d], "tier %s", d)
	}
	assert.Equal(t, []string{"Data Structures", "Databases", "Go", "Python", "Security", "System Design"}, c.Skills())
}

func TestDefault_QuestionsAreWellFormed(t *testing.T) {
	for _, q := range Default().Questions() {
		assert.NotEmpty(t, q.ExpectedKeywords, q.ID)
		assert.Positive(t, q.TimeLimitSeconds, q.ID)
		assert.True(t, q.Difficulty.Valid(), q.ID)
	}
}

func TestFilter(t *testing.T) {
	c := Default()

	easy := c.Filter(interview.Easy, "")
	assert.Len(t, easy, 6)

	py := c.Filter(interview.Medium, "Python")
	require.Len(t, py, 1)
	assert.Equal(t, "py_02", py[0].ID)

	assert.Len(t, c.Filter("", "Security"), 3)
	assert.Empty(t, c.Filter(interview.Hard, "Cooking"))
}

func TestQuestions_ReturnsCopy(t *testing.T) {
	c := Default()
	qs := c.Questions()
	qs[0].ID = "mutated"
	assert.NotEqual(t, "mutated", c.Questions()[0].ID)
}

const validCatalog = `{
  "version": 1,
  "questions": [
    {"id": "q1", "skill": "Go", "difficulty": "easy", "prompt": "p",
     "expected_keywords": ["goroutine"], "time_limit_seconds": 30}
  ]
}`

func TestParse_Valid(t *testing.T) {
	c, err := Parse([]byte(validCatalog), "inline")
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, interview.Easy, c.Questions()[0].Difficulty)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantMsg string
	}{
		{
			name:    "not json",
			data:    `{`,
			wantMsg: "invalid JSON",
		},
		{
			name:    "no questions",
			data:    `{"questions": []}`,
			wantMsg: "schema validation failed",
		},
		{
			name: "empty keywords",
			data: `{"questions": [{"id": "q1", "skill": "Go", "difficulty": "easy", "prompt": "p",
				"expected_keywords": [], "time_limit_seconds": 30}]}`,
			wantMsg: "schema validation failed",
		},
		{
			name: "zero time limit",
			data: `{"questions": [{"id": "q1", "skill": "Go", "difficulty": "easy", "prompt": "p",
				"expected_keywords": ["a"], "time_limit_seconds": 0}]}`,
			wantMsg: "schema validation failed",
		},
		{
			name: "unknown difficulty",
			data: `{"questions": [{"id": "q1", "skill": "Go", "difficulty": "expert", "prompt": "p",
				"expected_keywords": ["a"], "time_limit_seconds": 30}]}`,
			wantMsg: "schema validation failed",
		},
		{
			name: "unknown field",
			data: `{"questions": [{"id": "q1", "skill": "Go", "difficulty": "easy", "prompt": "p",
				"expected_keywords": ["a"], "time_limit_seconds": 30, "points": 3}]}`,
			wantMsg: "schema validation failed",
		},
		{
			name: "duplicate id",
			data: `{"questions": [
				{"id": "q1", "skill": "Go", "difficulty": "easy", "prompt": "p", "expected_keywords": ["a"], "time_limit_seconds": 30},
				{"id": "q1", "skill": "Go", "difficulty": "hard", "prompt": "p", "expected_keywords": ["b"], "time_limit_seconds": 30}]}`,
			wantMsg: `duplicate question ID: "q1"`,
		},
		{
			name: "blank keyword",
			data: `{"questions": [{"id": "q1", "skill": "Go", "difficulty": "easy", "prompt": "p",
				"expected_keywords": ["  "], "time_limit_seconds": 30}]}`,
			wantMsg: "blank expected keyword",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), "inline")
			require.Error(t, err)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, "inline", ve.Source)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.json")
	require.NoError(t, os.WriteFile(path, []byte(validCatalog), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, c.Source())

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
