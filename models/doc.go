// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and record types shared by the
relay and the client.

# Request Types

  - JoinRequest: email (anything else in the body is ignored)

# Wire Types

  - SignupRequest: email, timestamp (ISO-8601, UTC)

SignupRequest is built once per submission and never modified. The client
posts it to the relay; the relay builds a fresh one with its own timestamp
and posts that to the sink.

# Response Types

  - RelayResponse: success, message
  - ErrorResponse: error

RelayResponse.Success means the relay's forwarding call returned without an
error. The sink is posted to in opaque mode, so nothing here can say the row
was stored.

# Journal Types

  - Attempt: one relay outcome (hashed email, outcome, sink_configured)

Outcome values:

	OutcomeAccepted      = "accepted"
	OutcomeInvalidEmail  = "invalid_email"
	OutcomeNotConfigured = "not_configured"
	OutcomeForwardFailed = "forward_failed"
*/
package models
