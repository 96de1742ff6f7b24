// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pbn

import (
	"fmt"
	"strings"
)

// DecodeDeal splits a PBN deal string into the four seat hands. The hands
// are listed clockwise from the seat before the colon.
func DecodeDeal(deal string) (Hands, error) {
	var hands Hands

	if strings.TrimSpace(deal) == "" {
		return hands, &DealError{Deal: deal, Reason: "missing Deal tag"}
	}

	first, rest, ok := strings.Cut(deal, ":")
	if !ok {
		return hands, &DealError{Deal: deal, Reason: "missing ':' after starting seat"}
	}

	first = strings.TrimSpace(first)
	if len(first) != 1 {
		return hands, &DealError{Deal: deal, Reason: fmt.Sprintf("starting seat %q is not a single letter", first)}
	}
	start, ok := ParseSeat(first)
	if !ok {
		return hands, &DealError{Deal: deal, Reason: fmt.Sprintf("unknown starting seat %q", first)}
	}

	listed := strings.Fields(rest)
	if len(listed) != 4 {
		return hands, &DealError{Deal: deal, Reason: fmt.Sprintf("expected 4 hands, got %d", len(listed))}
	}

	offset := start.index()
	for j, hand := range listed {
		if _, err := SplitHand(hand); err != nil {
			return Hands{}, &DealError{Deal: deal, Reason: err.Error()}
		}
		hands.set(Rotation[(offset+j)%4], hand)
	}

	return hands, nil
}

// SplitHand returns the spade, heart, diamond and club holdings of a hand.
// A void is an empty group.
func SplitHand(hand string) ([4]string, error) {
	var suits [4]string
	groups := strings.Split(hand, ".")
	if len(groups) != 4 {
		return suits, fmt.Errorf("hand %q has %d suit groups, want 4", hand, len(groups))
	}
	copy(suits[:], groups)
	return suits, nil
}

// EncodeDeal writes the hands as a deal string listed from first.
func (h Hands) EncodeDeal(first Seat) string {
	offset := first.index()
	if offset < 0 {
		offset = 0
		first = North
	}

	parts := make([]string, 4)
	for j := range parts {
		parts[j] = h.Seat(Rotation[(offset+j)%4])
	}
	return first.Letter() + ":" + strings.Join(parts, " ")
}
