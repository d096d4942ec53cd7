package models

// Journal outcome constants
const (
	OutcomeAccepted      = "accepted"
	OutcomeInvalidEmail  = "invalid_email"
	OutcomeNotConfigured = "not_configured"
	OutcomeForwardFailed = "forward_failed"
)

// Request types

// JoinRequest is what the relay reads from a client body. Any client
// timestamp is ignored; the relay stamps its own.
type JoinRequest struct {
	Email string `json:"email"`
}

// Wire types

// SignupRequest is the record sent to the relay by the client and to the
// sink by the relay. Timestamp is ISO-8601 in UTC.
type SignupRequest struct {
	Email     string `json:"email"`
	Timestamp string `json:"timestamp"`
}

// Response types

// RelayResponse reports that the relay accepted the request. Success never
// means the sink stored the row.
type RelayResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Journal types

// Attempt is one relay outcome as written to the operator journal.
type Attempt struct {
	ID             string `db:"id"`
	EmailHash      string `db:"email_hash"`
	Outcome        string `db:"outcome"`
	SinkConfigured bool   `db:"sink_configured"`
	AttemptedAt    string `db:"attempted_at"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
