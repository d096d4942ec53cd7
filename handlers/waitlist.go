// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/meikai-waitlist/cliparse"
	"github.com/danielhkuo/meikai-waitlist/metrics"
	"github.com/danielhkuo/meikai-waitlist/middleware"
	"github.com/danielhkuo/meikai-waitlist/models"
	"github.com/danielhkuo/meikai-waitlist/opaque"
	"github.com/danielhkuo/meikai-waitlist/waitlist"
)

var errMissingEmail = errors.New("body has no email field")

// Recorder receives one Attempt per request that reached validation.
// *db.Journal satisfies it.
type Recorder interface {
	Record(a models.Attempt)
}

type WaitlistHandler struct {
	cfg     cliparse.Config
	sender  opaque.Sender
	journal Recorder
	now     func() time.Time
}

// NewWaitlistHandler builds the relay. journal may be nil.
func NewWaitlistHandler(cfg cliparse.Config, sender opaque.Sender, journal Recorder) *WaitlistHandler {
	return &WaitlistHandler{
		cfg:     cfg,
		sender:  sender,
		journal: journal,
		now:     time.Now,
	}
}

// Join handles every method on /api/waitlist
func (h *WaitlistHandler) Join(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		metrics.RecordOutcome(metrics.OutcomePreflight)
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodPost:
	default:
		metrics.RecordOutcome(metrics.OutcomeMethodNotAllowed)
		w.Header().Set("Allow", "POST, OPTIONS")
		middleware.ErrorResponse(w, http.StatusMethodNotAllowed, waitlist.MsgMethodNotAllowed)
		return
	}

	requestID := middleware.RequestID(r.Context())

	req, err := readJoinRequest(r)
	if err != nil {
		slog.Debug("unreadable waitlist body", "request_id", requestID, "error", err)
		h.finish(req.Email, models.OutcomeInvalidEmail)
		middleware.ErrorResponse(w, http.StatusBadRequest, waitlist.MsgRelayInvalidEmail)
		return
	}
	if !waitlist.ValidEmail(req.Email) {
		h.finish(req.Email, models.OutcomeInvalidEmail)
		middleware.ErrorResponse(w, http.StatusBadRequest, waitlist.MsgRelayInvalidEmail)
		return
	}

	if !h.cfg.SinkConfigured() {
		slog.Error("sink URL not configured", "request_id", requestID)
		h.finish(req.Email, models.OutcomeNotConfigured)
		middleware.ErrorResponse(w, http.StatusInternalServerError, waitlist.MsgRelayFailed)
		return
	}

	// The sink's answer is never read, so Ok only means the POST went out.
	signup := waitlist.NewSignup(req.Email, h.now())
	start := time.Now()
	result := h.sender.Post(r.Context(), h.cfg.SinkURL, signup)
	metrics.ObserveForward(time.Since(start))

	if result.IsError() {
		slog.Error("failed to forward signup", "request_id", requestID, "error", result.Error())
		h.finish(req.Email, models.OutcomeForwardFailed)
		middleware.ErrorResponse(w, http.StatusInternalServerError, waitlist.MsgRelayFailed)
		return
	}

	slog.Info("signup forwarded", "request_id", requestID, "timestamp", signup.Timestamp)
	h.finish(req.Email, models.OutcomeAccepted)

	middleware.JSONResponse(w, http.StatusOK, models.RelayResponse{
		Success: true,
		Message: waitlist.MsgRelayJoined,
	})
}

// readJoinRequest takes the "email" key exactly as written. encoding/json
// folds key case, so other spellings would otherwise be accepted.
func readJoinRequest(r *http.Request) (models.JoinRequest, error) {
	var fields map[string]json.RawMessage
	if err := middleware.ParseJSONBody(r, &fields); err != nil {
		return models.JoinRequest{}, err
	}

	raw, ok := fields["email"]
	if !ok {
		return models.JoinRequest{}, errMissingEmail
	}

	var req models.JoinRequest
	if err := json.Unmarshal(raw, &req.Email); err != nil {
		return models.JoinRequest{}, fmt.Errorf("email field: %w", err)
	}
	return req, nil
}

// finish counts the outcome and queues a journal entry.
func (h *WaitlistHandler) finish(email, outcome string) {
	metrics.RecordOutcome(outcome)

	if h.journal == nil {
		return
	}
	h.journal.Record(models.Attempt{
		EmailHash:      waitlist.HashEmail(email),
		Outcome:        outcome,
		SinkConfigured: h.cfg.SinkConfigured(),
		AttemptedAt:    h.now().UTC().Format(waitlist.TimestampLayout),
	})
}
