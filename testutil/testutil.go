// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/danielhkuo/meikai-waitlist/cliparse"
	"github.com/danielhkuo/meikai-waitlist/db"
	"github.com/danielhkuo/meikai-waitlist/models"
)

// Sink is a fake spreadsheet endpoint that records every body it receives
// and answers with a fixed status.
type Sink struct {
	server   *httptest.Server
	mu       sync.Mutex
	received []models.SignupRequest
	headers  []http.Header
}

// NewSink starts a Sink that replies with status. It is closed when the
// test ends.
func NewSink(t *testing.T, status int) *Sink {
	t.Helper()

	s := &Sink{}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("sink got undecodable body: %v", err)
		}

		s.mu.Lock()
		s.received = append(s.received, req)
		s.headers = append(s.headers, r.Header.Clone())
		s.mu.Unlock()

		w.WriteHeader(status)
		w.Write([]byte("<html>opaque</html>"))
	}))
	t.Cleanup(s.server.Close)

	return s
}

// URL is the address to post signups to
func (s *Sink) URL() string {
	return s.server.URL
}

// Received returns a copy of every signup posted so far
func (s *Sink) Received() []models.SignupRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.SignupRequest(nil), s.received...)
}

// Headers returns the request headers of every post so far
func (s *Sink) Headers() []http.Header {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]http.Header(nil), s.headers...)
}

// OpenTestJournal opens a SQLite journal in a temp directory
func OpenTestJournal(t *testing.T) *db.Journal {
	t.Helper()

	j, err := db.Open(db.TypeSQLite, filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Failed to open test journal: %v", err)
	}
	t.Cleanup(func() { _ = j.Close() })

	return j
}

// GetTestConfig returns a standard test configuration pointing at sinkURL
func GetTestConfig(sinkURL string) cliparse.Config {
	return cliparse.Config{
		Port:        3318,
		SinkURL:     sinkURL,
		JournalType: db.TypeSQLite,
		LogLevel:    "debug",
	}
}

// MakeRequest creates an HTTP test request. A string body is sent as is;
// anything else is JSON-encoded.
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		req = httptest.NewRequest(method, path, bytes.NewReader([]byte(b)))
		req.Header.Set("Content-Type", "application/json")
	default:
		jsonBody, _ := json.Marshal(b)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
