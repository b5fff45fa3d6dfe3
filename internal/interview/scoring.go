package interview

import (
	"math"
	"strings"
)

// Component weights of the overall score.
const (
	accuracyWeight       = 0.4
	relevanceWeight      = 0.2
	clarityWeight        = 0.2
	timeEfficiencyWeight = 0.2
)

const (
	// noKeywordAccuracy is awarded when a question declares no keywords.
	noKeywordAccuracy = 80.0

	// relevanceWordTarget is the word count that earns full relevance.
	relevanceWordTarget = 20.0

	// fillerPenalty is deducted from clarity per filler word.
	fillerPenalty = 10.0

	// guessSeconds is the elapsed time at or under which an answer is
	// treated as a guess.
	guessSeconds = 5.0
	guessScore   = 10.0

	// speedBonus rewards accurate answers given in under half the limit.
	speedBonus = 5.0
)

// fillerWords is the closed set of words that reduce clarity.
var fillerWords = map[string]bool{
	"basically": true,
	"um":        true,
	"ah":        true,
	"like":      true,
	"actually":  true,
	"just":      true,
}

// IsDegenerate reports whether an answer is empty or whitespace only.
func IsDegenerate(answer string) bool {
	return strings.TrimSpace(answer) == ""
}

// FiniteElapsed maps a non-finite elapsed time onto the scale: NaN and
// -Inf count as an instant answer, +Inf as the largest finite time.
func FiniteElapsed(t float64) float64 {
	switch {
	case math.IsNaN(t), math.IsInf(t, -1):
		return 0
	case math.IsInf(t, 1):
		return math.MaxFloat64
	}
	return t
}

// Score grades an answer. It is total: any input, including an empty
// answer or a negative or non-finite elapsed time, yields a breakdown.
func Score(q Question, answer string, elapsedSeconds float64) ScoreBreakdown {
	elapsedSeconds = FiniteElapsed(elapsedSeconds)
	words := strings.Fields(strings.ToLower(answer))

	s := ScoreBreakdown{
		Accuracy:       accuracyScore(q.ExpectedKeywords, answer),
		Relevance:      relevanceScore(len(words)),
		Clarity:        clarityScore(words),
		TimeEfficiency: TimeEfficiency(elapsedSeconds, float64(q.TimeLimitSeconds)),
	}

	limit := float64(q.TimeLimitSeconds)
	if s.Accuracy > 80 && elapsedSeconds < limit*0.5 {
		s.Bonus = speedBonus
	}

	overall := s.Accuracy*accuracyWeight +
		s.Relevance*relevanceWeight +
		s.Clarity*clarityWeight +
		s.TimeEfficiency*timeEfficiencyWeight +
		s.Bonus
	if overall > 100 {
		overall = 100
	}
	s.Overall = overall
	return s
}

// accuracyScore is the percentage of keywords found as case-insensitive
// substrings of the answer.
func accuracyScore(keywords []string, answer string) float64 {
	if IsDegenerate(answer) {
		return 0
	}
	if len(keywords) == 0 {
		return noKeywordAccuracy
	}
	return float64(len(keywords)-len(MissingKeywords(keywords, answer))) / float64(len(keywords)) * 100
}

// MissingKeywords returns the expected keywords absent from answer, in
// declaration order.
func MissingKeywords(keywords []string, answer string) []string {
	lower := strings.ToLower(answer)
	var missing []string
	for _, kw := range keywords {
		if !strings.Contains(lower, strings.ToLower(kw)) {
			missing = append(missing, kw)
		}
	}
	return missing
}

func relevanceScore(wordCount int) float64 {
	if wordCount == 0 {
		return 0
	}
	return min(100, float64(wordCount)/relevanceWordTarget*100)
}

func clarityScore(words []string) float64 {
	return max(0, 100-float64(CountFillers(words))*fillerPenalty)
}

// CountFillers counts lower-cased tokens that are filler words.
func CountFillers(words []string) int {
	n := 0
	for _, w := range words {
		if fillerWords[w] {
			n++
		}
	}
	return n
}

// TimeEfficiency scores elapsed time t against limit l:
//
//	t <= 5         10
//	t <= 0.4*l     100
//	t <= l         100 - 30*t/l
//	t > l          max(0, 50 - 2*(t-l))
//
// A NaN t scores as a guess.
func TimeEfficiency(t, l float64) float64 {
	switch {
	case math.IsNaN(t):
		return guessScore
	case t <= guessSeconds:
		return guessScore
	case t <= l*0.4:
		return 100
	case t <= l:
		return 100 - (t/l)*30
	default:
		return max(0, 50-(t-l)*2)
	}
}
