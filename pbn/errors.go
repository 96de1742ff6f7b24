// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pbn

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMalformedDeal        = errors.New("malformed deal string")
	ErrInvalidDateFormat    = errors.New("invalid date format")
	ErrIncompleteTournament = errors.New("incomplete tournament")
	ErrUnrecognizedDealer   = errors.New("unrecognized dealer code")
	ErrUnwritableValue      = errors.New("tag value cannot be written")
)

// TagError reports a tournament tag value that Write refuses because
// Parse would not read it back.
type TagError struct {
	Tag    string
	Value  string
	Reason string
}

func (e *TagError) Error() string {
	return fmt.Sprintf("%s: %s %q: %s", ErrUnwritableValue, e.Tag, e.Value, e.Reason)
}

func (e *TagError) Unwrap() error { return ErrUnwritableValue }

// DealError reports a deal string that could not be split into four hands.
// Board is zero when the deal was decoded outside a file.
type DealError struct {
	Board  int
	Deal   string
	Reason string
}

func (e *DealError) Error() string {
	if e.Board > 0 {
		return fmt.Sprintf("board %d: %s %q: %s", e.Board, ErrMalformedDeal, e.Deal, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", ErrMalformedDeal, e.Deal, e.Reason)
}

func (e *DealError) Unwrap() error { return ErrMalformedDeal }

// DateError reports a Date tag that is not a valid calendar date.
type DateError struct {
	Value  string
	Reason string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrInvalidDateFormat, e.Value, e.Reason)
}

func (e *DateError) Unwrap() error { return ErrInvalidDateFormat }

// DealerError reports a Dealer tag that is missing or not N, E, S or W.
type DealerError struct {
	Board int
	Code  string
}

func (e *DealerError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("board %d: %s: missing Dealer tag", e.Board, ErrUnrecognizedDealer)
	}
	return fmt.Sprintf("board %d: %s %q", e.Board, ErrUnrecognizedDealer, e.Code)
}

func (e *DealerError) Unwrap() error { return ErrUnrecognizedDealer }

// IncompleteError lists every required tournament field that was absent.
type IncompleteError struct {
	Missing []string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%s: missing %s", ErrIncompleteTournament, strings.Join(e.Missing, ", "))
}

func (e *IncompleteError) Unwrap() error { return ErrIncompleteTournament }
