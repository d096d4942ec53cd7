// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/oklog/ulid/v2"

	"github.com/danielhkuo/meikai-waitlist/models"
)

func TestWithLogging_RequestID(t *testing.T) {
	var seen string
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte("queued"))
	})

	req := httptest.NewRequest("POST", "/api/waitlist", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusAccepted {
		t.Errorf("Expected status 202, got %d", w.Code)
	}
	if w.Body.String() != "queued" {
		t.Errorf("Expected body 'queued', got '%s'", w.Body.String())
	}

	header := w.Header().Get(RequestIDHeader)
	if header == "" {
		t.Fatal("Expected X-Request-ID header")
	}
	if _, err := ulid.Parse(header); err != nil {
		t.Errorf("Expected a ULID request ID, got '%s': %v", header, err)
	}
	if seen != header {
		t.Errorf("Handler saw request ID '%s', header has '%s'", seen, header)
	}
}

func TestWithLogging_UniqueIDs(t *testing.T) {
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {})

	ids := make(map[string]bool)
	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest("GET", "/health", nil))

		id := w.Header().Get(RequestIDHeader)
		if ids[id] {
			t.Fatalf("Duplicate request ID %s", id)
		}
		ids[id] = true
	}
}

func TestWithLogging_DefaultStatus(t *testing.T) {
	// A handler that only writes a body still reports 200
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/health", nil))

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}

func TestRequestID_Missing(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if id := RequestID(req.Context()); id != "" {
		t.Errorf("Expected empty request ID, got '%s'", id)
	}
}

func TestJSONResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		data       any
		expected   string
	}{
		{
			name:       "relay success",
			statusCode: http.StatusOK,
			data:       models.RelayResponse{Success: true, Message: "Successfully joined the waitlist!"},
			expected:   `{"success":true,"message":"Successfully joined the waitlist!"}`,
		},
		{
			name:       "error body",
			statusCode: http.StatusBadRequest,
			data:       models.ErrorResponse{Error: "Invalid email address"},
			expected:   `{"error":"Invalid email address"}`,
		},
		{
			name:       "map",
			statusCode: http.StatusOK,
			data:       map[string]string{"status": "ok"},
			expected:   `{"status":"ok"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			JSONResponse(w, tc.statusCode, tc.data)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Expected Content-Type 'application/json', got '%s'", ct)
			}

			// Encode adds a trailing newline
			body := strings.TrimSpace(w.Body.String())
			if body != tc.expected {
				t.Errorf("Expected body '%s', got '%s'", tc.expected, body)
			}
		})
	}
}

func TestErrorResponse(t *testing.T) {
	testCases := []struct {
		statusCode int
		message    string
	}{
		{http.StatusBadRequest, "Invalid email address"},
		{http.StatusMethodNotAllowed, "Method not allowed"},
		{http.StatusInternalServerError, "Failed to join waitlist. Please try again."},
	}

	for _, tc := range testCases {
		t.Run(http.StatusText(tc.statusCode), func(t *testing.T) {
			w := httptest.NewRecorder()

			ErrorResponse(w, tc.statusCode, tc.message)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}

			var resp map[string]any
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode error response: %v", err)
			}
			if len(resp) != 1 {
				t.Errorf("Expected only the error key, got %v", resp)
			}
			if resp["error"] != tc.message {
				t.Errorf("Expected error '%s', got '%v'", tc.message, resp["error"])
			}
		})
	}
}

func TestParseJSONBody(t *testing.T) {
	t.Run("valid JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.co","extra":1}`))

		var parsed models.JoinRequest
		if err := ParseJSONBody(req, &parsed); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if parsed.Email != "a@b.co" {
			t.Errorf("Expected email 'a@b.co', got '%s'", parsed.Email)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{email:`))

		var parsed models.JoinRequest
		if err := ParseJSONBody(req, &parsed); err == nil {
			t.Error("Expected error for invalid JSON")
		}
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(""))

		var parsed models.JoinRequest
		if err := ParseJSONBody(req, &parsed); err == nil {
			t.Error("Expected error for empty body")
		}
	})

	t.Run("oversized body", func(t *testing.T) {
		big := `{"email":"` + strings.Repeat("a", maxBodyBytes) + `@b.co"}`
		req := httptest.NewRequest("POST", "/", strings.NewReader(big))

		var parsed models.JoinRequest
		if err := ParseJSONBody(req, &parsed); err == nil {
			t.Error("Expected error for oversized body")
		}
	})

	t.Run("body is consumed", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.co"}`))

		var parsed models.JoinRequest
		_ = ParseJSONBody(req, &parsed)

		remaining, _ := io.ReadAll(req.Body)
		if len(remaining) > 0 {
			t.Error("Expected body to be consumed")
		}
	})
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("handled"))
	})
	handler := CORS(next)

	for _, method := range []string{"OPTIONS", "POST", "GET", "DELETE"} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(method, "/api/waitlist", nil)
			req.Header.Set("Origin", "https://meikai.example")
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			// Every method reaches the wrapped handler
			if w.Code != http.StatusTeapot || w.Body.String() != "handled" {
				t.Errorf("Expected next handler to run, got %d '%s'", w.Code, w.Body.String())
			}

			want := map[string]string{
				"Access-Control-Allow-Origin":  "*",
				"Access-Control-Allow-Methods": "POST, OPTIONS",
				"Access-Control-Allow-Headers": "Content-Type",
			}
			for k, v := range want {
				if got := w.Header().Get(k); got != v {
					t.Errorf("Expected %s '%s', got '%s'", k, v, got)
				}
			}
			if w.Header().Get("Access-Control-Allow-Credentials") != "" {
				t.Error("Credentials must not be allowed with a wildcard origin")
			}
		})
	}
}

func TestGetClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expectedIP string
	}{
		{"forwarded chain", map[string]string{"X-Forwarded-For": "203.0.113.195, 70.41.3.18"}, "127.0.0.1:1", "203.0.113.195"},
		{"forwarded beats real ip", map[string]string{"X-Forwarded-For": "192.168.1.100", "X-Real-IP": "203.0.113.50"}, "10.0.0.1:1", "192.168.1.100"},
		{"real ip", map[string]string{"X-Real-IP": "203.0.113.50"}, "10.0.0.1:1", "203.0.113.50"},
		{"remote with port", nil, "192.168.1.50:54321", "192.168.1.50"},
		{"remote without port", nil, "192.168.1.50", "192.168.1.50"},
		{"ipv6 remote", nil, "[::1]:12345", "[::1]"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			if got := GetClientIP(req); got != tc.expectedIP {
				t.Errorf("Expected IP '%s', got '%s'", tc.expectedIP, got)
			}
		})
	}
}
