// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package waitlist holds the rules the client and the relay share.

# Validation

Both sides check addresses with the same pattern:

	^[^\s@]+@[^\s@]+\.[^\s@]+$

ValidEmail is a pure function; the same input always gets the same verdict.

# Signup Records

NewSignup builds the wire record with a UTC timestamp in the same shape as
JavaScript's Date.toISOString:

	req := waitlist.NewSignup("user@example.com", time.Now())
	// {"email":"user@example.com","timestamp":"2025-03-04T05:05:06.789Z"}

# Messages

User-visible strings live here so the client, the relay, and the tests
agree on them byte for byte.
*/
package waitlist
