package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/mockround/internal/interview"
)

// finishedLayout is fixed width so that finished_at sorts as text.
const finishedLayout = "2006-01-02T15:04:05.000000000Z07:00"

// resultRepo implements ResultRepo with raw SQL.
type resultRepo struct {
	db *sql.DB
}

func (r *resultRepo) Save(ctx context.Context, res interview.InterviewResult, finishedAt time.Time) error {
	report, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO results (session_id, candidate, seniority, role, status, final_score, readiness, answered, report, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.SessionID,
		res.Candidate.Name,
		string(res.Candidate.Seniority),
		res.Role,
		string(res.Status),
		res.FinalScore,
		res.Readiness,
		len(res.History),
		string(report),
		finishedAt.UTC().Format(finishedLayout),
	)
	if err != nil {
		return fmt.Errorf("save result %s: %w", res.SessionID, err)
	}

	for i, line := range res.DecisionLog {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO decision_log (session_id, seq, line) VALUES (?, ?, ?)`,
			res.SessionID, i, line,
		); err != nil {
			return fmt.Errorf("save decision log line %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *resultRepo) Get(ctx context.Context, sessionID string) (*interview.InterviewResult, error) {
	var report string
	err := r.db.QueryRowContext(ctx,
		`SELECT report FROM results WHERE session_id = ?`, sessionID,
	).Scan(&report)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query result %s: %w", sessionID, err)
	}

	var res interview.InterviewResult
	if err := json.Unmarshal([]byte(report), &res); err != nil {
		return nil, fmt.Errorf("unmarshal report %s: %w", sessionID, err)
	}
	return &res, nil
}

func (r *resultRepo) List(ctx context.Context, opts ListOpts) ([]ResultSummary, error) {
	query := `SELECT session_id, candidate, seniority, role, status, final_score, readiness, answered, finished_at
		FROM results`
	var args []any
	if opts.Candidate != "" {
		query += ` WHERE candidate = ?`
		args = append(args, opts.Candidate)
	}
	query += ` ORDER BY finished_at DESC, session_id`
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []ResultSummary
	for rows.Next() {
		var (
			s                         ResultSummary
			seniority, status, finish string
		)
		if err := rows.Scan(&s.SessionID, &s.Candidate, &seniority, &s.Role, &status,
			&s.FinalScore, &s.Readiness, &s.Answered, &finish); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		s.Seniority = interview.Seniority(seniority)
		s.Status = interview.State(status)
		s.FinishedAt, err = time.Parse(time.RFC3339Nano, finish)
		if err != nil {
			return nil, fmt.Errorf("parse finished_at %q: %w", finish, err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *resultRepo) DecisionLog(ctx context.Context, sessionID string) ([]string, error) {
	var exists int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM results WHERE session_id = ?`, sessionID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("query result %s: %w", sessionID, err)
	}
	if exists == 0 {
		return nil, ErrNotFound
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT line FROM decision_log WHERE session_id = ? ORDER BY seq`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query decision log %s: %w", sessionID, err)
	}
	defer func() { _ = rows.Close() }()

	lines := []string{}
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, fmt.Errorf("scan decision log: %w", err)
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *resultRepo) Delete(ctx context.Context, sessionID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM results WHERE session_id = ?`, sessionID)
	if err != nil {
		return fmt.Errorf("delete result %s: %w", sessionID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete result %s: %w", sessionID, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
