// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db keeps the relay's optional attempt journal.

# Opening

	j, err := db.Open(db.TypeSQLite, "file:journal.db")
	if err != nil {
		log.Fatal(err)
	}
	defer j.Close()

Open pings the database and calls CreateSchema, which is safe to run on
every start (IF NOT EXISTS). Both SQLite (modernc.org/sqlite) and
PostgreSQL (lib/pq) work; queries are written once and rebound by sqlx.

# Tables

  - signup_attempt: id, email_hash, outcome, sink_configured, attempted_at

Addresses are stored as a SHA-256 of the normalized email only. The journal
is not a second copy of the waitlist; the sink is the only store of record.

# Writes

Record queues the insert on a single worker and returns at once, so a slow
database never holds up a relay response. Failed writes are logged and
dropped. Flush waits for queued writes; Close drains and disconnects.

# Indexes

  - signup_attempt.outcome
  - signup_attempt.attempted_at
*/
package db
