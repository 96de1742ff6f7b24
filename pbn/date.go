// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pbn

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDate reads a YYYY.MM.DD or YYYY-MM-DD date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	parts := strings.Split(strings.ReplaceAll(strings.TrimSpace(s), ".", "-"), "-")
	if len(parts) != 3 {
		return time.Time{}, &DateError{Value: s, Reason: fmt.Sprintf("expected 3 parts, got %d", len(parts))}
	}

	var nums [3]int
	for i, p := range parts {
		if p == "" || strings.Trim(p, "0123456789") != "" {
			return time.Time{}, &DateError{Value: s, Reason: fmt.Sprintf("%q is not a number", p)}
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, &DateError{Value: s, Reason: err.Error()}
		}
		nums[i] = n
	}

	year, month, day := nums[0], nums[1], nums[2]
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	// time.Date normalizes overflow, so a changed component means it was out of range.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, &DateError{Value: s, Reason: "no such calendar date"}
	}

	return t, nil
}

// FormatDate writes t as YYYY.MM.DD.
func FormatDate(t time.Time) string {
	return t.UTC().Format("2006.01.02")
}
