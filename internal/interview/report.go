package interview

import (
	"math"
	"sort"
)

// Readiness bands and labels.
const (
	hireReadyScore  = 80.0
	borderlineScore = 60.0

	strengthScore = 75.0
	weaknessScore = 50.0

	// defaultConfidence is reported when fewer than two answers exist.
	defaultConfidence = 80.0
)

const (
	ReadinessHireReady  = "Hire Ready"
	ReadinessBorderline = "Borderline"
	ReadinessNotReady   = "Not Ready"

	CategoryStrong           = "Strong"
	CategoryAverage          = "Average"
	CategoryNeedsImprovement = "Needs Improvement"
)

var suggestions = map[string][]string{
	CategoryStrong: {
		"Deepen architectural insight.",
		"Consistency is key, keep up the streak.",
		"Practice explaining trade-offs at the next tier up.",
	},
	CategoryAverage: {
		"Improve response depth.",
		"Minimize filler words.",
		"Cover every expected concept before elaborating.",
	},
	CategoryNeedsImprovement: {
		"Revise core fundamentals.",
		"Practice answering under time pressure.",
		"Structure answers around the key terms of the question.",
	},
}

// Readiness maps a final score to its readiness label and category. Each
// band includes its lower bound.
func Readiness(finalScore float64) (label, category string) {
	switch {
	case finalScore >= hireReadyScore:
		return ReadinessHireReady, CategoryStrong
	case finalScore >= borderlineScore:
		return ReadinessBorderline, CategoryAverage
	default:
		return ReadinessNotReady, CategoryNeedsImprovement
	}
}

// Suggestions returns the canned suggestions for a readiness category.
func Suggestions(category string) []string {
	s := suggestions[category]
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// Confidence is 100 minus twice the population standard deviation of the
// overall scores, floored at 0. With fewer than two results it is 80.
func Confidence(history []QuestionResult) float64 {
	if len(history) < 2 {
		return defaultConfidence
	}
	var sum float64
	for _, r := range history {
		sum += r.Score.Overall
	}
	mean := sum / float64(len(history))

	var variance float64
	for _, r := range history {
		d := r.Score.Overall - mean
		variance += d * d
	}
	variance /= float64(len(history))

	return max(0, 100-2*math.Sqrt(variance))
}

// SkillBreakdown is the mean overall score per skill.
func SkillBreakdown(history []QuestionResult) map[string]float64 {
	totals := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range history {
		totals[r.Question.Skill] += r.Score.Overall
		counts[r.Question.Skill]++
	}
	out := make(map[string]float64, len(totals))
	for skill, total := range totals {
		out[skill] = total / float64(counts[skill])
	}
	return out
}

// skillsWhere returns the sorted set of skills with at least one result
// matching pred.
func skillsWhere(history []QuestionResult, pred func(float64) bool) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, r := range history {
		if pred(r.Score.Overall) && !seen[r.Question.Skill] {
			seen[r.Question.Skill] = true
			out = append(out, r.Question.Skill)
		}
	}
	sort.Strings(out)
	return out
}

// reportInput is everything buildReport aggregates.
type reportInput struct {
	sessionID string
	candidate CandidateProfile
	role      string
	total     float64
	answered  int
	status    State
	reason    string
	history   []QuestionResult
	log       []string
}

// buildReport aggregates a finished session.
func buildReport(in reportInput) InterviewResult {
	var final float64
	if in.answered > 0 {
		final = in.total / float64(in.answered)
	}
	label, category := Readiness(final)

	return InterviewResult{
		SessionID:         in.sessionID,
		Candidate:         in.candidate,
		Role:              in.role,
		FinalScore:        final,
		Readiness:         label,
		Category:          category,
		Confidence:        Confidence(in.history),
		SkillBreakdown:    SkillBreakdown(in.history),
		Strengths:         skillsWhere(in.history, func(s float64) bool { return s >= strengthScore }),
		Weaknesses:        skillsWhere(in.history, func(s float64) bool { return s < weaknessScore }),
		Suggestions:       Suggestions(category),
		Status:            in.status,
		TerminationReason: in.reason,
		History:           in.history,
		DecisionLog:       in.log,
	}
}
