package cmd

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/abhisek/mockround/internal/catalog"
	"github.com/abhisek/mockround/internal/config"
	"github.com/abhisek/mockround/internal/interview"
)

// addSessionFlags registers the flags that shape a single interview.
func addSessionFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.String("name", "", "Candidate name")
	fs.String("seniority", "", "Candidate seniority: entry, mid, senior or lead")
	fs.StringSlice("skills", nil, "Candidate skills (comma separated)")
	fs.StringSlice("required", nil, "Skills required by the role (comma separated)")
	fs.String("role", "", "Role being interviewed for")
	fs.Uint64("seed", 0, "Seed for question selection (random when unset)")
	fs.String("session-id", "", "Session ID (random UUID when unset)")
	fs.Int("max-questions", 0, "Questions before the interview completes")
	fs.Int("fail-streak", 0, "Consecutive weak answers that end the interview")
	fs.Float64("min-average", 0, "Running average below which the interview ends")
	fs.Float64("ramp-rate", 0, "Scales the streak needed to change difficulty")
	fs.String("catalog", "", "Question bank JSON file (built-in bank when unset)")
}

// applySessionFlags overrides f with every session flag the user set.
func applySessionFlags(cmd *cobra.Command, f *config.File) error {
	fs := cmd.Flags()
	if fs.Changed("name") {
		f.Candidate.Name, _ = fs.GetString("name")
	}
	if fs.Changed("seniority") {
		v, _ := fs.GetString("seniority")
		f.Candidate.Seniority = interview.Seniority(v)
	}
	if fs.Changed("skills") {
		f.Candidate.Skills, _ = fs.GetStringSlice("skills")
	}
	if fs.Changed("required") {
		f.Job.RequiredSkills, _ = fs.GetStringSlice("required")
	}
	if fs.Changed("role") {
		f.Job.Role, _ = fs.GetString("role")
	}
	if fs.Changed("seed") {
		seed, _ := fs.GetUint64("seed")
		f.Seed = &seed
	}
	if fs.Changed("max-questions") {
		f.Interview.MaxQuestions, _ = fs.GetInt("max-questions")
	}
	if fs.Changed("fail-streak") {
		f.Interview.FailureStreakLimit, _ = fs.GetInt("fail-streak")
	}
	if fs.Changed("min-average") {
		f.Interview.MinAverageScore, _ = fs.GetFloat64("min-average")
	}
	if fs.Changed("ramp-rate") {
		f.Interview.RampRate, _ = fs.GetFloat64("ramp-rate")
	}
	if fs.Changed("catalog") {
		f.Catalog, _ = fs.GetString("catalog")
	}
	return f.Validate()
}

// loadCatalog returns the bank at path, or the built-in bank.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}

// newEngine builds an engine from settings. Extra options are applied
// after the defaults.
func newEngine(cmd *cobra.Command, f config.File, logger *slog.Logger, extra ...interview.Option) (*interview.Engine, *catalog.Catalog, error) {
	cat, err := loadCatalog(f.Catalog)
	if err != nil {
		return nil, nil, err
	}

	seed := rand.Uint64()
	if f.Seed != nil {
		seed = *f.Seed
	}
	logger.Debug("question selection seeded", "seed", seed, "catalog", cat.Source(), "questions", cat.Len())

	opts := []interview.Option{
		interview.WithRand(rand.New(rand.NewPCG(seed, seed))),
		interview.WithLogger(logger),
	}
	if id, _ := cmd.Flags().GetString("session-id"); id != "" {
		opts = append(opts, interview.WithSessionID(id))
	}
	opts = append(opts, extra...)

	e, err := interview.New(cat, f.Candidate, f.Job, f.Interview, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("new interview: %w", err)
	}
	return e, cat, nil
}
