// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration
for the relay server.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - SinkURL: Spreadsheet endpoint that receives signups (optional)
  - JournalURL: Attempt journal connection string (optional)
  - JournalType: sqlite or postgres (default: sqlite)
  - LogLevel: debug, info, warn or error (default: info)

# CLI Flags

	-p, --port          Server port
	    --sink-url      Sink URL
	-d, --journal-url   Journal database URL
	-t, --journal-type  Journal database type
	    --log-level     Log level
	    --env-file      Dotenv file (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	GOOGLE_SHEETS_URL → --sink-url
	JOURNAL_URL       → -d
	JOURNAL_TYPE      → -t
	LOG_LEVEL         → --log-level

CLI flags take precedence over environment variables. The env file is
loaded first and never overrides a variable that is already set.

# Validation

ParseFlags returns an error for an out-of-range port, an unknown journal
type or an unknown log level. A missing sink URL is accepted: the relay
starts and answers every valid submission with a generic failure until the
URL is provided.

# Example

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	mux := router.NewRouter(cfg, opaque.NewPoster(nil), journal)
*/
package cliparse
