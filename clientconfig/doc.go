// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package clientconfig resolves the relay URL for the terminal client.
//
// Precedence, highest first: the WAITLIST_PUBLIC_ENDPOINT_URL environment
// variable, endpoint_url in ~/.config/meikai/waitlist.toml, then
// BuildEndpointURL. All three may be empty.
package clientconfig
