// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package submission

import (
	"time"

	"github.com/samber/mo"

	"github.com/danielhkuo/meikai-waitlist/models"
	"github.com/danielhkuo/meikai-waitlist/waitlist"
)

// Status is the form's position in Idle → Loading → {Success, Error}.
type Status int

const (
	Idle Status = iota
	Loading
	Success
	Error
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// State is everything the form shows. It is a value; transitions return a
// new one.
type State struct {
	Email   string
	Status  Status
	Message string
}

// Event is one input to Transition.
type Event interface {
	isEvent()
}

// EmailEdited carries the input field's new contents.
type EmailEdited struct {
	Value string
}

// SubmitRequested is a press of the submit control at At.
type SubmitRequested struct {
	At time.Time
}

// RelaySettled reports how the relay call ended. Err is nil when the call
// returned without an error.
type RelaySettled struct {
	Err error
}

func (EmailEdited) isEvent()     {}
func (SubmitRequested) isEvent() {}
func (RelaySettled) isEvent()    {}

// Transition applies ev to s. The option is present when the caller must
// send exactly that request to the relay.
func Transition(s State, ev Event) (State, mo.Option[models.SignupRequest]) {
	none := mo.None[models.SignupRequest]()

	switch ev := ev.(type) {
	case EmailEdited:
		// The field is disabled while loading.
		if s.Status == Loading {
			return s, none
		}
		s.Email = ev.Value
		return s, none

	case SubmitRequested:
		if !waitlist.ValidEmail(s.Email) {
			s.Status = Error
			s.Message = waitlist.MsgInvalidEmail
			return s, none
		}
		s.Status = Loading
		s.Message = ""
		return s, mo.Some(waitlist.NewSignup(s.Email, ev.At))

	case RelaySettled:
		if ev.Err != nil {
			s.Status = Error
			s.Message = waitlist.MsgTryAgain
			return s, none
		}
		s.Status = Success
		s.Message = waitlist.MsgJoined
		s.Email = ""
		return s, none
	}

	return s, none
}
