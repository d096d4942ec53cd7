// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the meikai waitlist relay.

The relay takes a visitor's email from the landing page, checks it, stamps
it with the server's clock and posts it to a spreadsheet web app. The web
app's reply is never read.

# Starting the Server

	GOOGLE_SHEETS_URL=https://script.google.com/macros/s/.../exec go run .

Or with flags:

	go run . -p 3318 --sink-url "https://..." -d journal.db

Settings are also read from a .env file in the working directory.

# Configuration

All settings are optional:

  - PORT (-p): Server port (default: 3318)
  - GOOGLE_SHEETS_URL (--sink-url): Spreadsheet endpoint. Without it the
    server still starts and answers valid signups with a 500.
  - JOURNAL_URL (-d): Attempt journal database
  - JOURNAL_TYPE (-t): sqlite or postgres (default: sqlite)
  - LOG_LEVEL (--log-level): debug, info, warn or error (default: info)

# Architecture

  - handlers: The relay handler
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, request IDs, logging, JSON helpers
  - opaque: Fire-and-forget JSON POST
  - waitlist: Email rule, timestamps, user-facing messages
  - submission: Client status machine and controller
  - metrics: Prometheus counters
  - db: Attempt journal
  - models: Wire and journal types
  - cliparse: Relay configuration
  - clientconfig, tui, cmd/join: Terminal client

See package documentation for each component.
*/
package main
