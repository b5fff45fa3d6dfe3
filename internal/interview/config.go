package interview

import "math"

// Config holds the per-session interview limits.
type Config struct {
	// MaxQuestions is the number of answers after which the session completes.
	MaxQuestions int `json:"max_questions" yaml:"max_questions"`

	// FailureStreakLimit is the number of consecutive weak answers that
	// ends the session early.
	FailureStreakLimit int `json:"failure_streak_limit" yaml:"failure_streak_limit"`

	// MinAverageScore is the running-average floor (0-100) checked once at
	// least two questions have been answered.
	MinAverageScore float64 `json:"min_average_score" yaml:"min_average_score"`

	// RampRate scales the two-in-a-row streak needed to change tier.
	RampRate float64 `json:"ramp_rate" yaml:"ramp_rate"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxQuestions:       5,
		FailureStreakLimit: 2,
		MinAverageScore:    30,
		RampRate:           1.0,
	}
}

// Validate checks every field and returns the first *ConfigError found.
func (c Config) Validate() error {
	if c.MaxQuestions < 1 {
		return &ConfigError{Field: "max_questions", Value: c.MaxQuestions, Reason: "must be at least 1"}
	}
	if c.FailureStreakLimit < 1 {
		return &ConfigError{Field: "failure_streak_limit", Value: c.FailureStreakLimit, Reason: "must be at least 1"}
	}
	if math.IsNaN(c.MinAverageScore) || c.MinAverageScore < 0 || c.MinAverageScore > 100 {
		return &ConfigError{Field: "min_average_score", Value: c.MinAverageScore, Reason: "must be between 0 and 100"}
	}
	if math.IsNaN(c.RampRate) || math.IsInf(c.RampRate, 0) || c.RampRate <= 0 {
		return &ConfigError{Field: "ramp_rate", Value: c.RampRate, Reason: "must be a positive number"}
	}
	return nil
}

// baseStreak is the number of consecutive strong or weak answers that
// moves the tier at a ramp rate of 1.
const baseStreak = 2

// StreakThreshold is the streak length that triggers a tier change,
// never less than 1.
func (c Config) StreakThreshold() int {
	n := int(math.Round(baseStreak * c.RampRate))
	if n < 1 {
		return 1
	}
	return n
}
