package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Attempt is a finished quiz run.
type Attempt struct {
	ID         string
	UserName   string
	Score      int
	Total      int
	Percentage int
	FinishedAt time.Time
}

// AttemptSummary aggregates all recorded attempts.
type AttemptSummary struct {
	Count   int
	Best    int     // highest percentage
	Average float64 // mean percentage
}

// AttemptRepo records and lists finished quiz runs.
type AttemptRepo interface {
	// Record stores a finished attempt. An empty ID is filled with a new UUID
	// and a zero FinishedAt with the current time.
	Record(ctx context.Context, a Attempt) (Attempt, error)

	// Recent returns up to limit attempts, newest first. limit <= 0 means all.
	Recent(ctx context.Context, limit int) ([]Attempt, error)

	// Summary aggregates all attempts.
	Summary(ctx context.Context) (AttemptSummary, error)

	// DeleteAll removes every recorded attempt.
	DeleteAll(ctx context.Context) error
}

type attemptRepo struct {
	drv *entsql.Driver
}

func (r *attemptRepo) Record(ctx context.Context, a Attempt) (Attempt, error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.FinishedAt.IsZero() {
		a.FinishedAt = time.Now()
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(attemptTable).
		Columns("id", "user_name", "score", "total", "percentage", "finished_at").
		Values(a.ID, a.UserName, a.Score, a.Total, a.Percentage, a.FinishedAt.UnixMilli()).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return Attempt{}, fmt.Errorf("record attempt: %w", err)
	}
	return a, nil
}

func (r *attemptRepo) Recent(ctx context.Context, limit int) ([]Attempt, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select("id", "user_name", "score", "total", "percentage", "finished_at").
		From(entsql.Table(attemptTable)).
		OrderBy(entsql.Desc("finished_at"))
	if limit > 0 {
		sel.Limit(limit)
	}
	query, args := sel.Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var (
			a          Attempt
			finishedMs int64
		)
		if err := rows.Scan(&a.ID, &a.UserName, &a.Score, &a.Total, &a.Percentage, &finishedMs); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		a.FinishedAt = time.UnixMilli(finishedMs)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return out, nil
}

func (r *attemptRepo) Summary(ctx context.Context) (AttemptSummary, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(entsql.Count("*"), entsql.Max("percentage"), entsql.Avg("percentage")).
		From(entsql.Table(attemptTable)).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return AttemptSummary{}, fmt.Errorf("query attempt summary: %w", err)
	}
	defer rows.Close()

	var (
		sum  AttemptSummary
		best sql.NullInt64
		avg  sql.NullFloat64
	)
	if rows.Next() {
		if err := rows.Scan(&sum.Count, &best, &avg); err != nil {
			return AttemptSummary{}, fmt.Errorf("scan attempt summary: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return AttemptSummary{}, fmt.Errorf("iterate attempt summary: %w", err)
	}
	sum.Best = int(best.Int64)
	sum.Average = avg.Float64
	return sum, nil
}

func (r *attemptRepo) DeleteAll(ctx context.Context) error {
	query, args := entsql.Dialect(dialect.SQLite).Delete(attemptTable).Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("delete attempts: %w", err)
	}
	return nil
}
