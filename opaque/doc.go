// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package opaque posts JSON to destinations whose responses cannot be read.

The sink behind the waitlist (a spreadsheet web app) does not return a
response a cross-origin caller may read, so both hops are made in opaque
mode: the caller learns only whether the request went out and the transport
settled without an error.

# Posting

	p := opaque.NewPoster(nil)
	res := p.Post(ctx, endpoint, models.SignupRequest{...})
	if res.IsError() {
		// transport failure, missing endpoint, or unencodable payload
	}

The result type is mo.Result[Accepted]. There is no "persisted" variant;
a 4xx or 5xx from the destination is still Accepted.

# Configuration Errors

An empty endpoint returns ErrNoEndpoint without touching the network.

# Timeouts

Poster sets no timeout. A hung destination keeps the call open until the
transport gives up or ctx is cancelled.
*/
package opaque
