// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pbn

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// DefaultSite is used when a file has no Site tag.
const DefaultSite = "Unknown Venue"

var tagPattern = regexp.MustCompile(`^\[(\w+)\s+"(.*)"\]$`)

// Scan collects the tag values of a PBN file. It never fails: lines that
// are not tags are skipped, and tags that appear before the first valid
// [Board] tag only count if they are tournament-level.
func Scan(text string) Document {
	var doc Document
	var cur *RawBoard

	flush := func() {
		if cur != nil {
			doc.Boards = append(doc.Boards, *cur)
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "]") {
			continue
		}
		m := tagPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		key, value := m[1], m[2]

		switch key {
		case "Event":
			setField(&doc.Event, value)
		case "Site":
			setField(&doc.Site, value)
		case "Date":
			setField(&doc.Date, value)
		case "Board":
			flush()
			cur = nil
			if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && n > 0 {
				cur = &RawBoard{Number: n}
			}
		case "Dealer":
			if cur != nil {
				cur.Dealer = value
			}
		case "Vulnerable":
			if cur != nil {
				cur.Vulnerable = ParseVulnerability(value)
			}
		case "Deal":
			if cur != nil {
				cur.Deal = value
			}
		}
	}
	flush()

	return doc
}

// setField stores a tournament-level value. Empty values and the PBN
// "unknown" (?) and "same as before" (#) markers keep what is already there.
func setField(dst *string, value string) {
	value = strings.TrimSpace(value)
	if value == "" || value == "#" || value == "?" {
		return
	}
	*dst = value
}

// Parse scans text, checks the tournament fields and decodes every board.
// Tournament-level problems return an error; board-level problems are
// reported in the Result's outcomes and the board is left out.
func Parse(text string) (*Result, error) {
	doc := Scan(text)

	var missing []string
	if doc.Event == "" {
		missing = append(missing, "Event")
	}
	if doc.Date == "" {
		missing = append(missing, "Date")
	}
	if len(doc.Boards) == 0 {
		missing = append(missing, "Board")
	}
	if len(missing) > 0 {
		return nil, &IncompleteError{Missing: missing}
	}

	date, err := ParseDate(doc.Date)
	if err != nil {
		return nil, err
	}

	site := doc.Site
	if site == "" {
		site = DefaultSite
	}

	res := &Result{
		Tournament: Tournament{
			Event:  doc.Event,
			Site:   site,
			Date:   date,
			Boards: make([]Board, 0, len(doc.Boards)),
		},
		Outcomes: make([]Outcome, 0, len(doc.Boards)),
	}

	for _, raw := range doc.Boards {
		b, err := DecodeBoard(raw)
		if err != nil {
			res.Outcomes = append(res.Outcomes, Outcome{Number: raw.Number, Err: err})
			continue
		}
		res.Tournament.Boards = append(res.Tournament.Boards, b)
		res.Outcomes = append(res.Outcomes, Outcome{Number: raw.Number, Board: &b})
	}

	return res, nil
}

// DecodeBoard resolves the dealer and splits the deal of a scanned board.
func DecodeBoard(raw RawBoard) (Board, error) {
	dealer, ok := ParseSeat(raw.Dealer)
	if !ok {
		return Board{}, &DealerError{Board: raw.Number, Code: raw.Dealer}
	}

	hands, err := DecodeDeal(raw.Deal)
	if err != nil {
		var de *DealError
		if errors.As(err, &de) {
			de.Board = raw.Number
		}
		return Board{}, err
	}

	return Board{
		Number:        raw.Number,
		Dealer:        dealer,
		Vulnerability: raw.Vulnerable,
		Deal:          raw.Deal,
		Hands:         hands,
	}, nil
}
