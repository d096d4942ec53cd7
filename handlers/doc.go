// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handler for the waitlist relay.

# Handler

WaitlistHandler is a struct with its dependencies injected by constructor:

	h := handlers.NewWaitlistHandler(cfg, opaque.NewPoster(nil), journal)
	mux.Handle("/api/waitlist", middleware.CORS(middleware.WithLogging(h.Join)))

journal is any Recorder and may be nil; *db.Journal is the usual one.

# Join

Join answers every method on /api/waitlist:

	OPTIONS                      → 200, empty body
	not POST                     → 405 {"error":"Method not allowed"}
	bad body or bad email        → 400 {"error":"Invalid email address"}
	no sink URL configured       → 500 {"error":"Failed to join waitlist. Please try again."}
	sink call errored            → 500, same body
	sink call returned           → 200 {"success":true,"message":"Successfully joined the waitlist!"}

The sink receives {"email", "timestamp"} with the relay's own clock. Its
status and body are never read, so a 200 here does not mean the row was
stored. Configuration and forwarding errors are logged with detail; the
caller only ever sees the generic message.

# Bookkeeping

Every request bumps waitlist_relay_requests_total by outcome. Requests that
reach validation also queue one journal entry carrying a hash of the email,
never the address itself.
*/
package handlers
