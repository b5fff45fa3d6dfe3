package interview

import "fmt"

// Progress is the session snapshot the termination policy evaluates.
type Progress struct {
	Answered      int
	TotalScore    float64
	FailureStreak int // consecutive answers scoring below WeakScore; never reset by a step-down
}

// Average returns the running average overall score, 0 with no answers.
func (p Progress) Average() float64 {
	if p.Answered == 0 {
		return 0
	}
	return p.TotalScore / float64(p.Answered)
}

// minAnswersForAverage is the sample size before the average rule applies.
const minAnswersForAverage = 2

// Policy decides whether a session must stop early.
//
// The failure streak it reads is the session's own count of consecutive
// weak answers. It is not the difficulty controller's failure counter,
// which resets after every step-down, so a candidate who steps down from
// Medium is still terminated once the session streak reaches the limit.
type Policy struct {
	FailureStreakLimit int
	MinAverageScore    float64
}

// NewPolicy builds the policy from a config.
func NewPolicy(cfg Config) Policy {
	return Policy{
		FailureStreakLimit: cfg.FailureStreakLimit,
		MinAverageScore:    cfg.MinAverageScore,
	}
}

// Evaluate applies the failure-streak rule, then the running-average
// rule. Only the first rule that fires supplies the reason.
func (p Policy) Evaluate(pr Progress) (bool, string) {
	if pr.FailureStreak >= p.FailureStreakLimit {
		return true, fmt.Sprintf("Consecutive failure threshold (%d) exceeded.", p.FailureStreakLimit)
	}
	if pr.Answered >= minAnswersForAverage {
		if avg := pr.Average(); avg < p.MinAverageScore {
			return true, fmt.Sprintf("Average score (%.1f%%) dropped below minimum threshold of %g%%.", avg, p.MinAverageScore)
		}
	}
	return false, ""
}
