package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func greekQuestion() Question {
	return Question{
		ID:               "greek",
		Skill:            "Alphabet",
		Difficulty:       Medium,
		ExpectedKeywords: []string{"alpha", "beta", "gamma", "delta"},
		TimeLimitSeconds: 60,
	}
}

func TestFeedback_AllRemarks(t *testing.T) {
	q := greekQuestion()
	answer := "gamma only here um um um um"
	s := Score(q, answer, 100)

	got := Feedback(s, q, answer)
	assert.Equal(t,
		"Low technical accuracy. Missing key concepts like alpha, beta. "+
			"Usage of filler words detected. Work on professional articulation. "+
			"Response time was slow for this difficulty level.",
		got)
}

func TestFeedback_SpeedBonus(t *testing.T) {
	q := greekQuestion()
	answer := "alpha beta gamma delta"
	s := Score(q, answer, 10)

	assert.Equal(t, "Strong technical alignment with expected keywords. Excellent speed and accuracy streak!",
		Feedback(s, q, answer))
}

func TestFeedback_AlignmentOnly(t *testing.T) {
	q := greekQuestion()
	answer := "alpha beta gamma delta"
	s := Score(q, answer, 40)

	assert.Equal(t, "Strong technical alignment with expected keywords.", Feedback(s, q, answer))
}

func TestFeedback_LowAccuracyWithoutMissingKeywords(t *testing.T) {
	q := greekQuestion()
	s := ScoreBreakdown{Accuracy: 25, Clarity: 100, TimeEfficiency: 100}

	assert.Equal(t, "Low technical accuracy.", Feedback(s, q, "alpha beta gamma delta"))
}

func TestFeedback_EmptyAnswer(t *testing.T) {
	q := greekQuestion()
	for _, answer := range []string{"", "  \t "} {
		s := Score(q, answer, 100)
		assert.Equal(t, EmptyResponseFeedback, Feedback(s, q, answer))
	}
}
