package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Store records shell activity. A nil *Store is valid and discards
// every write, so callers never need to branch on whether persistence
// is available.
type Store struct {
	db *sql.DB
}

// NewStore creates a store over an open database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// RecordInput appends one shell input line.
func (s *Store) RecordInput(ctx context.Context, line string) error {
	if s == nil || s.db == nil {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO inputs(entered_at, line) VALUES(?, ?)`,
		time.Now().UTC().Format(time.RFC3339), line)
	if err != nil {
		return fmt.Errorf("insert input: %w", err)
	}
	return nil
}

// Exchange is one completed agent call.
type Exchange struct {
	ID          int64
	RunID       string
	Role        string
	Model       string
	Prompt      string
	Reply       string
	TotalTokens int
	CreatedAt   string
}

// RecordExchange appends a completed agent call. runID may be empty for
// direct mentions outside a workflow.
func (s *Store) RecordExchange(ctx context.Context, ex Exchange) error {
	if s == nil || s.db == nil {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO exchanges(run_id, role, model, prompt, reply, total_tokens, created_at)
		VALUES(?, ?, ?, ?, ?, ?, ?)`,
		nullableString(ex.RunID), ex.Role, ex.Model, ex.Prompt, ex.Reply, ex.TotalTokens,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert exchange: %w", err)
	}
	return nil
}

// Run is one workflow run summary.
type Run struct {
	RunID          string
	Workflow       string
	Status         string
	StepsCompleted int
	StartedAt      string
	Duration       time.Duration
}

// RecordRun appends a workflow run summary.
func (s *Store) RecordRun(ctx context.Context, run Run) error {
	if s == nil || s.db == nil {
		return nil
	}
	startedAt := run.StartedAt
	if startedAt == "" {
		startedAt = time.Now().UTC().Format(time.RFC3339)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs(run_id, workflow, status, steps_completed, started_at, duration_ms)
		VALUES(?, ?, ?, ?, ?, ?)`,
		run.RunID, run.Workflow, run.Status, run.StepsCompleted, startedAt, run.Duration.Milliseconds())
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// RecentExchanges returns the newest exchanges, optionally filtered by
// role, newest first.
func (s *Store) RecentExchanges(ctx context.Context, role string, limit int) ([]Exchange, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, COALESCE(run_id, ''), role, model, prompt, reply, total_tokens, created_at
		FROM exchanges`
	args := []any{}
	if role != "" {
		query += ` WHERE role = ?`
		args = append(args, role)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query exchanges: %w", err)
	}
	defer rows.Close()

	var out []Exchange
	for rows.Next() {
		var ex Exchange
		if err := rows.Scan(&ex.ID, &ex.RunID, &ex.Role, &ex.Model, &ex.Prompt, &ex.Reply, &ex.TotalTokens, &ex.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan exchange: %w", err)
		}
		out = append(out, ex)
	}
	return out, rows.Err()
}

// RecentRuns returns the newest workflow runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, workflow, status, steps_completed, started_at, duration_ms
		FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var run Run
		var durationMS int64
		if err := rows.Scan(&run.RunID, &run.Workflow, &run.Status, &run.StepsCompleted, &run.StartedAt, &durationMS); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.Duration = time.Duration(durationMS) * time.Millisecond
		out = append(out, run)
	}
	return out, rows.Err()
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
