package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func results(skillScores ...any) []QuestionResult {
	var out []QuestionResult
	for i := 0; i+1 < len(skillScores); i += 2 {
		out = append(out, QuestionResult{
			Index:    len(out) + 1,
			Question: Question{ID: "q", Skill: skillScores[i].(string)},
			Score:    ScoreBreakdown{Overall: skillScores[i+1].(float64)},
		})
	}
	return out
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		name    string
		history []QuestionResult
		want    float64
	}{
		{"no answers", nil, 80},
		{"single answer", results("Go", 10.0), 80},
		{"identical scores", results("Go", 80.0, "Go", 80.0), 100},
		{"spread of ten", results("Go", 90.0, "Go", 70.0), 80},
		{"floored at zero", results("Go", 100.0, "Go", 0.0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Confidence(tt.history), 1e-9)
		})
	}
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		score    float64
		label    string
		category string
	}{
		{100, ReadinessHireReady, CategoryStrong},
		{80, ReadinessHireReady, CategoryStrong},
		{79.99, ReadinessBorderline, CategoryAverage},
		{60, ReadinessBorderline, CategoryAverage},
		{59.9, ReadinessNotReady, CategoryNeedsImprovement},
		{0, ReadinessNotReady, CategoryNeedsImprovement},
	}
	for _, tt := range tests {
		label, category := Readiness(tt.score)
		assert.Equal(t, tt.label, label, "score %v", tt.score)
		assert.Equal(t, tt.category, category, "score %v", tt.score)
	}
}

func TestSuggestions_ReturnsCopy(t *testing.T) {
	s := Suggestions(CategoryStrong)
	assert.Len(t, s, 3)
	s[0] = "changed"
	assert.NotEqual(t, "changed", Suggestions(CategoryStrong)[0])
	assert.Empty(t, Suggestions("unknown"))
}

func TestSkillBreakdown(t *testing.T) {
	got := SkillBreakdown(results("Go", 80.0, "SQL", 30.0, "Go", 40.0))
	assert.InDelta(t, 60, got["Go"], 1e-9)
	assert.InDelta(t, 30, got["SQL"], 1e-9)
}

func TestBuildReport_StrengthsAndWeaknesses(t *testing.T) {
	history := results("SQL", 30.0, "Go", 80.0, "Go", 40.0, "Networking", 60.0)
	r := buildReport(reportInput{
		sessionID: "s1",
		total:     210,
		answered:  4,
		status:    StateCompleted,
		history:   history,
	})

	assert.InDelta(t, 52.5, r.FinalScore, 1e-9)
	assert.Equal(t, ReadinessNotReady, r.Readiness)
	assert.Equal(t, []string{"Go"}, r.Strengths)
	assert.Equal(t, []string{"Go", "SQL"}, r.Weaknesses)
	assert.Equal(t, Suggestions(CategoryNeedsImprovement), r.Suggestions)
}

func TestBuildReport_NoAnswers(t *testing.T) {
	r := buildReport(reportInput{sessionID: "s1", status: StateCompleted})

	assert.Zero(t, r.FinalScore)
	assert.Equal(t, ReadinessNotReady, r.Readiness)
	assert.InDelta(t, 80, r.Confidence, 1e-9)
	assert.NotNil(t, r.Strengths)
	assert.NotNil(t, r.Weaknesses)
	assert.Empty(t, r.SkillBreakdown)
}
