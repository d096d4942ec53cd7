// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package submission

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/danielhkuo/meikai-waitlist/models"
	"github.com/danielhkuo/meikai-waitlist/waitlist"
)

var submitAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestTransition(t *testing.T) {
	errBoom := errors.New("boom")

	testCases := []struct {
		name      string
		start     State
		event     Event
		want      State
		wantCall  bool
		wantEmail string
	}{
		{
			name:  "edit while idle",
			start: State{},
			event: EmailEdited{Value: "u"},
			want:  State{Email: "u"},
		},
		{
			name:  "edit ignored while loading",
			start: State{Email: "user@example.com", Status: Loading},
			event: EmailEdited{Value: "other"},
			want:  State{Email: "user@example.com", Status: Loading},
		},
		{
			name:  "edit after error keeps status and message",
			start: State{Email: "bad", Status: Error, Message: waitlist.MsgInvalidEmail},
			event: EmailEdited{Value: "bad2"},
			want:  State{Email: "bad2", Status: Error, Message: waitlist.MsgInvalidEmail},
		},
		{
			name:  "submit invalid",
			start: State{Email: "not-an-email"},
			event: SubmitRequested{At: submitAt},
			want:  State{Email: "not-an-email", Status: Error, Message: waitlist.MsgInvalidEmail},
		},
		{
			name:  "submit empty",
			start: State{},
			event: SubmitRequested{At: submitAt},
			want:  State{Status: Error, Message: waitlist.MsgInvalidEmail},
		},
		{
			name:      "submit valid from idle",
			start:     State{Email: "user@example.com"},
			event:     SubmitRequested{At: submitAt},
			want:      State{Email: "user@example.com", Status: Loading},
			wantCall:  true,
			wantEmail: "user@example.com",
		},
		{
			name:      "submit valid from error clears message",
			start:     State{Email: "user@example.com", Status: Error, Message: waitlist.MsgTryAgain},
			event:     SubmitRequested{At: submitAt},
			want:      State{Email: "user@example.com", Status: Loading},
			wantCall:  true,
			wantEmail: "user@example.com",
		},
		{
			name:      "submit valid while loading is not blocked",
			start:     State{Email: "user@example.com", Status: Loading},
			event:     SubmitRequested{At: submitAt},
			want:      State{Email: "user@example.com", Status: Loading},
			wantCall:  true,
			wantEmail: "user@example.com",
		},
		{
			name:  "submit empty after success",
			start: State{Status: Success, Message: waitlist.MsgJoined},
			event: SubmitRequested{At: submitAt},
			want:  State{Status: Error, Message: waitlist.MsgInvalidEmail},
		},
		{
			name:  "relay returned",
			start: State{Email: "user@example.com", Status: Loading},
			event: RelaySettled{},
			want:  State{Status: Success, Message: waitlist.MsgJoined},
		},
		{
			name:  "relay failed keeps email",
			start: State{Email: "user@example.com", Status: Loading},
			event: RelaySettled{Err: errBoom},
			want:  State{Email: "user@example.com", Status: Error, Message: waitlist.MsgTryAgain},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, call := Transition(tc.start, tc.event)

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("state mismatch (-want +got):\n%s", diff)
			}
			if call.IsPresent() != tc.wantCall {
				t.Fatalf("call present = %v, want %v", call.IsPresent(), tc.wantCall)
			}
			if tc.wantCall {
				want := models.SignupRequest{Email: tc.wantEmail, Timestamp: "2025-06-01T12:00:00.000Z"}
				if diff := cmp.Diff(want, call.MustGet()); diff != "" {
					t.Errorf("request mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestTransition_DoesNotMutateInput(t *testing.T) {
	start := State{Email: "user@example.com", Status: Loading}
	before := start

	Transition(start, RelaySettled{})

	if diff := cmp.Diff(before, start); diff != "" {
		t.Errorf("input state changed (-before +after):\n%s", diff)
	}
}

func TestTransition_InvalidInputsNeverCall(t *testing.T) {
	inputs := []string{"", " ", "plain", "a@b", "@b.c", "a@.c", "a b@c.d", "a@b c.d", "a@@b.c", "a@b.c "}
	for _, in := range inputs {
		got, call := Transition(State{Email: in}, SubmitRequested{At: submitAt})
		if call.IsPresent() {
			t.Errorf("%q: expected no relay call", in)
		}
		if got.Status != Error || got.Message != waitlist.MsgInvalidEmail {
			t.Errorf("%q: expected validation error, got %v %q", in, got.Status, got.Message)
		}
	}
}

func TestStatusString(t *testing.T) {
	testCases := map[Status]string{
		Idle:       "idle",
		Loading:    "loading",
		Success:    "success",
		Error:      "error",
		Status(42): "unknown",
	}
	for status, want := range testCases {
		if got := status.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", int(status), got, want)
		}
	}
}
