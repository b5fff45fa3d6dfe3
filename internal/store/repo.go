package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/mockround/internal/interview"
)

// ErrNotFound is returned when no archived result has the given id.
var ErrNotFound = errors.New("result not found")

// ListOpts configures result listing.
type ListOpts struct {
	Limit     int    // max results (0 = unlimited)
	Candidate string // exact candidate name, empty for all
}

// ResultSummary is one row of the archive listing.
type ResultSummary struct {
	SessionID  string
	Candidate  string
	Seniority  interview.Seniority
	Role       string
	Status     interview.State
	FinalScore float64
	Readiness  string
	Answered   int
	FinishedAt time.Time
}

// ResultRepo archives finished interview reports.
type ResultRepo interface {
	// Save stores a finished report and its decision log.
	Save(ctx context.Context, r interview.InterviewResult, finishedAt time.Time) error

	// Get returns the full report, or ErrNotFound.
	Get(ctx context.Context, sessionID string) (*interview.InterviewResult, error)

	// List returns summaries, newest first.
	List(ctx context.Context, opts ListOpts) ([]ResultSummary, error)

	// DecisionLog returns the archived log lines in order, or ErrNotFound.
	DecisionLog(ctx context.Context, sessionID string) ([]string, error)

	// Delete removes a report and its log.
	Delete(ctx context.Context, sessionID string) error
}
