// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pbn

import (
	"strings"
	"time"
)

// Seat is a compass position at the table.
type Seat string

const (
	North Seat = "NORTH"
	East  Seat = "EAST"
	South Seat = "SOUTH"
	West  Seat = "WEST"
)

// Rotation is the clockwise seat order used for deals and bidding.
var Rotation = [4]Seat{North, East, South, West}

// Letter returns the one-letter PBN code for the seat.
func (s Seat) Letter() string {
	if s == "" {
		return ""
	}
	return string(s[0])
}

// index returns the seat's position in Rotation, or -1.
func (s Seat) index() int {
	for i, r := range Rotation {
		if r == s {
			return i
		}
	}
	return -1
}

// ParseSeat maps a PBN seat code (N, E, S, W or the full name, any case) to a Seat.
func ParseSeat(code string) (Seat, bool) {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "N", "NORTH":
		return North, true
	case "E", "EAST":
		return East, true
	case "S", "SOUTH":
		return South, true
	case "W", "WEST":
		return West, true
	}
	return "", false
}

// Vulnerability is the scoring state of a board.
// Tokens outside the four known values are carried through unchanged.
type Vulnerability string

const (
	VulNone Vulnerability = "None"
	VulNS   Vulnerability = "NS"
	VulEW   Vulnerability = "EW"
	VulBoth Vulnerability = "Both"
)

// ParseVulnerability maps a PBN Vulnerable token to a Vulnerability.
func ParseVulnerability(token string) Vulnerability {
	switch token {
	case "-":
		return VulNone
	case "NS":
		return VulNS
	case "EW":
		return VulEW
	case "All":
		return VulBoth
	}
	return Vulnerability(token)
}

// Token returns the PBN Vulnerable token for v.
func (v Vulnerability) Token() string {
	switch v {
	case VulNone:
		return "-"
	case VulBoth:
		return "All"
	}
	return string(v)
}

// Hands holds one hand string per seat, each in S.H.D.C form.
type Hands struct {
	North string `json:"north"`
	East  string `json:"east"`
	South string `json:"south"`
	West  string `json:"west"`
}

// Seat returns the hand held by s.
func (h Hands) Seat(s Seat) string {
	switch s {
	case North:
		return h.North
	case East:
		return h.East
	case South:
		return h.South
	case West:
		return h.West
	}
	return ""
}

func (h *Hands) set(s Seat, hand string) {
	switch s {
	case North:
		h.North = hand
	case East:
		h.East = hand
	case South:
		h.South = hand
	case West:
		h.West = hand
	}
}

// Board is one decoded deal with its dealer and vulnerability.
type Board struct {
	Number        int           `json:"board_number"`
	Dealer        Seat          `json:"dealer"`
	Vulnerability Vulnerability `json:"vulnerability"`
	Deal          string        `json:"deal"`
	Hands         Hands         `json:"hands"`
}

// Tournament is an event and its boards in source order.
type Tournament struct {
	Event  string    `json:"event"`
	Site   string    `json:"site"`
	Date   time.Time `json:"date"`
	Boards []Board   `json:"boards"`
}

// Document is the raw tag values collected by Scan.
type Document struct {
	Event  string
	Site   string
	Date   string
	Boards []RawBoard
}

// RawBoard is a board as it appeared in the file, before decoding.
type RawBoard struct {
	Number     int
	Dealer     string
	Vulnerable Vulnerability
	Deal       string
}

// Outcome is the result of decoding one board: either Board is set,
// or Err says why board Number was skipped.
type Outcome struct {
	Number int
	Board  *Board
	Err    error
}

// Skipped reports whether the board failed to decode.
func (o Outcome) Skipped() bool {
	return o.Err != nil
}

// Result is a parsed tournament plus the per-board outcomes.
// Tournament.Boards holds only the boards that decoded.
type Result struct {
	Tournament Tournament
	Outcomes   []Outcome
}

// Total is the number of boards found in the file.
func (r *Result) Total() int {
	return len(r.Outcomes)
}

// Created is the number of boards that decoded.
func (r *Result) Created() int {
	return len(r.Tournament.Boards)
}

// Skipped returns the outcomes of boards that failed to decode.
func (r *Result) Skipped() []Outcome {
	var skipped []Outcome
	for _, o := range r.Outcomes {
		if o.Skipped() {
			skipped = append(skipped, o)
		}
	}
	return skipped
}
