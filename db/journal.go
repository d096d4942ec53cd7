// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/meikai-waitlist/models"
	"github.com/danielhkuo/meikai-waitlist/waitlist"
)

// Supported journal types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

const writeTimeout = 10 * time.Second

// Journal is a write-only record of relay outcomes for operators. Nothing
// in the request path reads it back.
type Journal struct {
	db   *sqlx.DB
	pool *workerpool.WorkerPool
	now  func() time.Time
}

// Open connects, pings, and creates the schema.
func Open(journalType, url string) (*Journal, error) {
	if journalType != TypeSQLite && journalType != TypePostgres {
		return nil, fmt.Errorf("unsupported journal type %q", journalType)
	}

	conn, err := sqlx.Open(journalType, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping journal: %w", err)
	}

	if err := CreateSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return New(conn), nil
}

// New wraps an open connection. Writes run one at a time, in order.
func New(conn *sqlx.DB) *Journal {
	return &Journal{
		db:   conn,
		pool: workerpool.New(1),
		now:  time.Now,
	}
}

// Record queues an insert and returns immediately. Write failures are
// logged and dropped.
func (j *Journal) Record(a models.Attempt) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.AttemptedAt == "" {
		a.AttemptedAt = j.now().UTC().Format(waitlist.TimestampLayout)
	}

	j.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()

		_, err := j.db.NamedExecContext(ctx, `
			INSERT INTO signup_attempt (id, email_hash, outcome, sink_configured, attempted_at)
			VALUES (:id, :email_hash, :outcome, :sink_configured, :attempted_at)
		`, a)
		if err != nil {
			slog.Error("failed to write journal entry", "error", err, "outcome", a.Outcome)
			return
		}

		slog.Debug("journal entry written", "id", a.ID, "outcome", a.Outcome)
	})
}

// Flush blocks until every queued write has run.
func (j *Journal) Flush() {
	j.pool.SubmitWait(func() {})
}

// Recent returns up to limit entries, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]models.Attempt, error) {
	var attempts []models.Attempt
	err := j.db.SelectContext(ctx, &attempts, j.db.Rebind(`
		SELECT id, email_hash, outcome, sink_configured, attempted_at
		FROM signup_attempt
		ORDER BY attempted_at DESC
		LIMIT ?
	`), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}

	return attempts, nil
}

// Close drains queued writes and closes the connection.
func (j *Journal) Close() error {
	j.pool.StopWait()
	return j.db.Close()
}
