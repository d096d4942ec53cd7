// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package waitlist

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/danielhkuo/meikai-waitlist/models"
)

var ErrInvalidEmail = errors.New("invalid email address")

// notEmailChar excludes @ and everything JavaScript's \s matches. Go's \s
// is ASCII only, so the Unicode spaces are listed.
const notEmailChar = `[^\s\v\x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}@]`

// EmailPattern is the shared syntactic check: non-whitespace local part,
// exactly one @, and a dot somewhere after the first domain character.
var EmailPattern = regexp.MustCompile(`^` + notEmailChar + `+@` + notEmailChar + `+\.` + notEmailChar + `+$`)

// TimestampLayout matches JavaScript's Date.toISOString.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Client messages
const (
	MsgInvalidEmail = "Please enter a valid email address"
	MsgJoined       = "You're on the waitlist! We'll be in touch soon."
	MsgTryAgain     = "Something went wrong. Please try again."
)

// Relay messages
const (
	MsgRelayJoined       = "Successfully joined the waitlist!"
	MsgRelayInvalidEmail = "Invalid email address"
	MsgRelayFailed       = "Failed to join waitlist. Please try again."
	MsgMethodNotAllowed  = "Method not allowed"
)

// ValidEmail reports whether s passes EmailPattern. Empty strings fail.
func ValidEmail(s string) bool {
	return EmailPattern.MatchString(s)
}

// CheckEmail is ValidEmail in error form.
func CheckEmail(s string) error {
	if !ValidEmail(s) {
		return ErrInvalidEmail
	}
	return nil
}

// NewSignup stamps email with now in UTC.
func NewSignup(email string, now time.Time) models.SignupRequest {
	return models.SignupRequest{
		Email:     email,
		Timestamp: now.UTC().Format(TimestampLayout),
	}
}

// HashEmail returns a hex SHA-256 of the trimmed, lower-cased address
func HashEmail(email string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(email))))
	return hex.EncodeToString(sum[:])
}
