// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package opaque

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/samber/mo"
)

// ErrNoEndpoint is returned before any network activity when no
// destination URL is configured.
var ErrNoEndpoint = errors.New("endpoint URL not configured")

// Accepted means the POST completed at the transport level. The
// destination's status and body are never read, so this is the strongest
// result a Sender can report.
type Accepted struct {
	Endpoint string
	SentAt   time.Time
}

// Sender posts a JSON payload without reading the response.
type Sender interface {
	Post(ctx context.Context, endpoint string, payload any) mo.Result[Accepted]
}

// Ensure Poster implements Sender at compile time.
var _ Sender = (*Poster)(nil)

// Poster is the HTTP Sender. It sets no timeout of its own; the call ends
// when the transport settles or ctx is cancelled.
type Poster struct {
	http      *http.Client
	userAgent string
	now       func() time.Time
}

const defaultUserAgent = "meikai-waitlist/0.1"

// NewPoster builds a Poster on client. A nil client uses a fresh
// http.Client with no timeout.
func NewPoster(client *http.Client) *Poster {
	if client == nil {
		client = &http.Client{}
	}
	return &Poster{
		http:      client,
		userAgent: defaultUserAgent,
		now:       time.Now,
	}
}

// Post marshals payload and POSTs it to endpoint.
func (p *Poster) Post(ctx context.Context, endpoint string, payload any) mo.Result[Accepted] {
	if strings.TrimSpace(endpoint) == "" {
		return mo.Err[Accepted](ErrNoEndpoint)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return mo.Err[Accepted](fmt.Errorf("encode payload: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return mo.Err[Accepted](fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.http.Do(req)
	if err != nil {
		return mo.Err[Accepted](fmt.Errorf("execute request: %w", err))
	}
	// Drain so the connection can be reused; status is never inspected.
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	return mo.Ok(Accepted{Endpoint: endpoint, SentAt: p.now()})
}
