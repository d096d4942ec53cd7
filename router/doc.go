// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the waitlist relay.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(cfg, opaque.NewPoster(nil), journal)

journal may be nil when no attempt journal is configured.

# Endpoints

	    /api/waitlist - Relay (any method; CORS headers on every response)
	GET /health       - Liveness, returns "OK"
	GET /metrics      - Prometheus exposition of the relay registry
	GET /             - Version banner, exact path only

/api/waitlist is registered without a method so the handler itself answers
OPTIONS with 200 and other non-POST methods with 405. Any other path is 404.
*/
package router
