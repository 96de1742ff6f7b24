// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package pbn reads and writes the subset of Portable Bridge Notation used for
club tournament hand records.

# Parsing

Parse turns the full text of a .pbn file into a Result:

	res, err := pbn.Parse(text)
	if err != nil {
		// tournament-level failure: missing Event/Date, no boards, bad date
	}
	fmt.Println(res.Created(), "of", res.Total(), "boards decoded")

Parsing runs in two stages. Scan walks the lines and collects tag values into a
Document without ever failing: lines that are not [Key "Value"] tags are
ignored, and a board is committed when the next [Board] tag or the end of
input is reached. Parse then checks the tournament fields and decodes every
board on its own, so one bad Deal or Dealer tag only skips that board:

	for _, o := range res.Outcomes {
		if o.Skipped() {
			log.Printf("board %d skipped: %v", o.Number, o.Err)
		}
	}

# Deals

A deal string lists four hands starting from a named seat:

	N:KQ95.A743.A2.Q42 J74.J985.Q543.K7 A832.KQ2.K876.A3 T6.T6.JT9.JT9865

DecodeDeal attributes the hands clockwise (North, East, South, West) from the
starting seat, so "E:..." puts the first hand on East. Each hand must have four
dot-separated suit groups in spades, hearts, diamonds, clubs order. Cards are
not checked against a 52-card deck.

# Dates

ParseDate accepts YYYY.MM.DD or YYYY-MM-DD (single-digit month and day are
fine) and returns midnight UTC. FormatDate writes the dotted form.

# Writing

Serialize and Write produce PBN text that Parse reads back. Deals are always
written starting from North and dates always use dots. Tag values are written
unchanged, quotes included. An Event or Site that Scan would discard (empty,
"?", "#", padded with whitespace or spanning lines) is refused with a
*TagError before anything is written.

# Errors

All decode failures wrap one of ErrMalformedDeal, ErrInvalidDateFormat,
ErrIncompleteTournament or ErrUnrecognizedDealer, and write failures wrap
ErrUnwritableValue. Use errors.Is to classify and errors.As with *DealError,
*DateError, *DealerError, *IncompleteError or *TagError for the offending value.
*/
package pbn
