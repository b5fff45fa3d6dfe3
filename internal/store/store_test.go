package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mockround/internal/interview"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleResult(id, candidate string, final float64) interview.InterviewResult {
	return interview.InterviewResult{
		SessionID:      id,
		Candidate:      interview.CandidateProfile{Name: candidate, Seniority: interview.Mid, Skills: []string{"Go"}},
		Role:           "Backend Engineer",
		FinalScore:     final,
		Readiness:      interview.ReadinessBorderline,
		Category:       interview.CategoryAverage,
		Confidence:     90,
		SkillBreakdown: map[string]float64{"Go": final},
		Strengths:      []string{},
		Weaknesses:     []string{},
		Suggestions:    interview.Suggestions(interview.CategoryAverage),
		Status:         interview.StateCompleted,
		History: []interview.QuestionResult{{
			Index:      1,
			Question:   interview.Question{ID: "go_01", Skill: "Go", Difficulty: interview.Easy, TimeLimitSeconds: 45},
			Response:   interview.Response{QuestionID: "go_01", Answer: "lightweight threads", ElapsedSeconds: 12},
			Score:      interview.ScoreBreakdown{Overall: final},
			State:      interview.StateInProgress,
			Difficulty: interview.Easy,
			Feedback:   "Strong technical alignment with expected keywords.",
		}},
		DecisionLog: []string{"Interview started.", "Q1 evaluated.", "State transition: IN_PROGRESS -> COMPLETED."},
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		require.NoError(t, db.QueryRow("PRAGMA "+tt.pragma).Scan(&got))
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestMigrationIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.migrate())

	var n int
	require.NoError(t, s.DB().QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('results', 'decision_log')`,
	).Scan(&n))
	assert.Equal(t, 2, n)
}

func TestResultSaveAndGet(t *testing.T) {
	repo := openTestStore(t).Results()
	ctx := context.Background()
	want := sampleResult("s-1", "Ada", 72.5)

	require.NoError(t, repo.Save(ctx, want, time.Now()))

	got, err := repo.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestResultGetMissing(t *testing.T) {
	repo := openTestStore(t).Results()
	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResultSaveDuplicate(t *testing.T) {
	repo := openTestStore(t).Results()
	ctx := context.Background()
	r := sampleResult("s-1", "Ada", 70)

	require.NoError(t, repo.Save(ctx, r, time.Now()))
	assert.Error(t, repo.Save(ctx, r, time.Now()))

	log, err := repo.DecisionLog(ctx, "s-1")
	require.NoError(t, err)
	assert.Len(t, log, 3, "failed save must not append log lines")
}

func TestResultList(t *testing.T) {
	repo := openTestStore(t).Results()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, sampleResult("s-1", "Ada", 50), base))
	require.NoError(t, repo.Save(ctx, sampleResult("s-2", "Grace", 80), base.Add(time.Hour)))
	require.NoError(t, repo.Save(ctx, sampleResult("s-3", "Ada", 65), base.Add(2*time.Hour)))

	all, err := repo.List(ctx, ListOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "s-3", all[0].SessionID, "newest first")
	assert.Equal(t, "s-1", all[2].SessionID)
	assert.True(t, all[0].FinishedAt.Equal(base.Add(2*time.Hour)))
	assert.Equal(t, interview.StateCompleted, all[0].Status)
	assert.Equal(t, interview.Mid, all[0].Seniority)
	assert.Equal(t, 1, all[0].Answered)

	limited, err := repo.List(ctx, ListOpts{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "s-3", limited[0].SessionID)

	ada, err := repo.List(ctx, ListOpts{Candidate: "Ada"})
	require.NoError(t, err)
	assert.Len(t, ada, 2)
}

func TestResultListOrdersWithinSecond(t *testing.T) {
	repo := openTestStore(t).Results()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, sampleResult("s-whole", "Ada", 50), base))
	require.NoError(t, repo.Save(ctx, sampleResult("s-frac", "Ada", 60), base.Add(100*time.Millisecond)))

	all, err := repo.List(ctx, ListOpts{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "s-frac", all[0].SessionID)
	assert.Equal(t, "s-whole", all[1].SessionID)
	assert.True(t, all[0].FinishedAt.Equal(base.Add(100*time.Millisecond)))
}

func TestResultDecisionLog(t *testing.T) {
	repo := openTestStore(t).Results()
	ctx := context.Background()
	r := sampleResult("s-1", "Ada", 70)
	require.NoError(t, repo.Save(ctx, r, time.Now()))

	log, err := repo.DecisionLog(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, r.DecisionLog, log)

	_, err = repo.DecisionLog(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResultDeleteCascades(t *testing.T) {
	s := openTestStore(t)
	repo := s.Results()
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, sampleResult("s-1", "Ada", 70), time.Now()))

	require.NoError(t, repo.Delete(ctx, "s-1"))
	assert.ErrorIs(t, repo.Delete(ctx, "s-1"), ErrNotFound)

	var n int
	require.NoError(t, s.DB().QueryRow(`SELECT COUNT(*) FROM decision_log`).Scan(&n))
	assert.Zero(t, n)
}

func TestFileDatabaseUsesWAL(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	defer s.Close()

	var mode string
	require.NoError(t, s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestResolveDBPath(t *testing.T) {
	dir := t.TempDir()

	p, err := ResolveDBPath(filepath.Join(dir, "nested", "x.db"))
	require.NoError(t, err)
	assert.DirExists(t, filepath.Join(dir, "nested"))
	assert.Equal(t, filepath.Join(dir, "nested", "x.db"), p)

	t.Setenv("MOCKROUND_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = ResolveDBPath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "mockround", "mockround.db"), p)

	t.Setenv("MOCKROUND_DB", filepath.Join(dir, "env.db"))
	p, err = DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "env.db"), p)
}
