// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pbn

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Serialize returns t as PBN text. It fails like Write when a tag value
// would not read back.
func Serialize(t *Tournament) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, t); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write writes t as PBN text: the tournament header, then one block per
// board separated by blank lines. Deals always start from North.
//
// Tag values are written as is, quotes included. Event and Site must be
// values Scan keeps: not empty, not the "?" or "#" markers, no surrounding
// whitespace and no line breaks. Nothing is written when one is not.
func Write(w io.Writer, t *Tournament) error {
	for _, tag := range []struct{ key, value string }{
		{"Event", t.Event},
		{"Site", t.Site},
	} {
		if err := checkValue(tag.key, tag.value); err != nil {
			return err
		}
	}

	bw := bufio.NewWriter(w)

	writeTag(bw, "Event", t.Event)
	writeTag(bw, "Site", t.Site)
	writeTag(bw, "Date", FormatDate(t.Date))

	for _, b := range t.Boards {
		bw.WriteString("\n")
		writeTag(bw, "Board", fmt.Sprint(b.Number))
		writeTag(bw, "Dealer", b.Dealer.Letter())
		writeTag(bw, "Vulnerable", b.Vulnerability.Token())
		writeTag(bw, "Deal", b.Hands.EncodeDeal(North))
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write PBN: %w", err)
	}
	return nil
}

func checkValue(key, value string) error {
	var reason string
	switch {
	case strings.TrimSpace(value) == "":
		reason = "empty"
	case value == "?" || value == "#":
		reason = "reserved marker"
	case value != strings.TrimSpace(value):
		reason = "surrounding whitespace"
	case strings.ContainsAny(value, "\r\n"):
		reason = "line break"
	default:
		return nil
	}
	return &TagError{Tag: key, Value: value, Reason: reason}
}

func writeTag(w *bufio.Writer, key, value string) {
	fmt.Fprintf(w, "[%s \"%s\"]\n", key, value)
}
