// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Each request gets a ULID, stored on the request context (see RequestID)
and echoed in the X-Request-ID response header. Start and completion are
logged with that ID; completion adds the status and duration_ms.

# CORS

	mux.Handle("/api/waitlist", middleware.CORS(handler))

Every response carries:

	Access-Control-Allow-Origin:  *
	Access-Control-Allow-Methods: POST, OPTIONS
	Access-Control-Allow-Headers: Content-Type

Preflight requests are passed through; the handler answers them.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid email address")

ErrorResponse writes {"error": message}. ParseJSONBody decodes at most
64 KiB of the request body and closes it.

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Checks X-Forwarded-For, then X-Real-IP, then RemoteAddr. Only used in logs.
*/
package middleware
