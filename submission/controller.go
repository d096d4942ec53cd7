// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package submission

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/samber/mo"

	"github.com/danielhkuo/meikai-waitlist/models"
	"github.com/danielhkuo/meikai-waitlist/opaque"
)

// Controller owns one form's State and runs the relay calls it asks for.
// It does not stop a second Submit while one is in flight.
type Controller struct {
	// notifyMu is held across a transition and its observer call, so the
	// observer sees states in the order they were applied.
	notifyMu sync.Mutex

	mu       sync.Mutex
	state    State
	sender   opaque.Sender
	endpoint string
	now      func() time.Time
	observer func(State)
}

type Option func(*Controller)

// WithClock replaces time.Now for signup timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithObserver is called with every new State, one call at a time and in
// the order the states were applied. The last state it sees is the one State
// returns. fn may call State but must not call SetEmail or Submit.
func WithObserver(fn func(State)) Option {
	return func(c *Controller) { c.observer = fn }
}

// NewController builds an Idle controller that posts to endpoint. An empty
// endpoint makes every valid submit fail without a network call.
func NewController(sender opaque.Sender, endpoint string, opts ...Option) *Controller {
	c := &Controller{
		sender:   sender,
		endpoint: endpoint,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetEmail updates the held address. Ignored while Loading.
func (c *Controller) SetEmail(value string) {
	c.apply(EmailEdited{Value: value})
}

// Submit validates and, if valid, starts one relay call. The Loading state
// is already visible when Submit returns. The returned Task is done
// immediately when validation fails.
func (c *Controller) Submit(ctx context.Context) *Task {
	req := c.apply(SubmitRequested{At: c.now()})
	if !req.IsPresent() {
		return settledTask(nil)
	}
	return c.start(ctx, req.MustGet())
}

func (c *Controller) start(ctx context.Context, req models.SignupRequest) *Task {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task{done: make(chan struct{}), cancel: cancel}

	go func() {
		defer close(t.done)
		defer cancel()

		res := c.sender.Post(ctx, c.endpoint, req)
		if res.IsError() {
			slog.Debug("waitlist relay call failed", "error", res.Error())
		}
		t.err = res.Error()
		c.apply(RelaySettled{Err: t.err})
	}()

	return t
}

func (c *Controller) apply(ev Event) mo.Option[models.SignupRequest] {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	next, req := Transition(c.state, ev)
	c.state = next
	c.mu.Unlock()

	if c.observer != nil {
		c.observer(next)
	}
	return req
}

// Task is one in-flight relay call. Normal flow never cancels it; Cancel
// exists for teardown.
type Task struct {
	done   chan struct{}
	cancel context.CancelFunc
	err    error
}

func settledTask(err error) *Task {
	t := &Task{done: make(chan struct{}), cancel: func() {}, err: err}
	close(t.done)
	return t
}

// Done is closed once the call has settled and the state has been updated.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Cancel aborts the call. The controller then settles in Error.
func (t *Task) Cancel() {
	t.cancel()
}

// Wait blocks until Done and returns the call's error.
func (t *Task) Wait() error {
	<-t.done
	return t.err
}

// Err is valid after Done is closed.
func (t *Task) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}
