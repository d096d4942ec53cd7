// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CreateSchema creates the journal table.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// One statement per entry
var schema = []string{
	`
-- Relay outcomes, one row per request that reached validation
CREATE TABLE IF NOT EXISTS signup_attempt (
    id TEXT PRIMARY KEY,
    email_hash TEXT NOT NULL,
    outcome TEXT NOT NULL CHECK (outcome IN ('accepted', 'invalid_email', 'not_configured', 'forward_failed')),
    sink_configured BOOLEAN NOT NULL,
    attempted_at TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_signup_attempt_outcome ON signup_attempt(outcome)`,
	`CREATE INDEX IF NOT EXISTS idx_signup_attempt_attempted_at ON signup_attempt(attempted_at)`,
}
