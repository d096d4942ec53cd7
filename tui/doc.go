// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package tui is the terminal waitlist form.
//
// Model is a view over a submission.Controller. Typing calls SetEmail and
// enter calls Submit; the returned Task is awaited as a tea.Cmd. The input
// and the submit control are disabled while a call is in flight. Esc or
// ctrl+c quits, cancelling any call still running.
package tui
