// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package submission is the waitlist form's controller.

# State Machine

The form is a State value driven by a pure function:

	next, call := submission.Transition(state, submission.SubmitRequested{At: now})

Statuses move Idle → Loading → {Success, Error}. From Success or Error, a
new submit goes back to Loading. Nothing expires on its own.

Events:

  - EmailEdited: replace the address (ignored while Loading)
  - SubmitRequested: validate; on success go to Loading and ask for a call
  - RelaySettled: Success (email cleared) or Error (email kept)

When call is present the caller must send exactly that SignupRequest to
the relay, once.

# Messages

	invalid address  → "Please enter a valid email address"
	relay returned   → "You're on the waitlist! We'll be in touch soon."
	relay failed     → "Something went wrong. Please try again."

# Controller

Controller wraps the state machine for callers that want it to own the
goroutine:

	c := submission.NewController(opaque.NewPoster(nil), endpoint)
	c.SetEmail("user@example.com")
	task := c.Submit(ctx) // c.State().Status == Loading here
	_ = task.Wait()

Each Task can be cancelled for teardown. Normal flow never does; there are
no retries and no timeouts.
*/
package submission
