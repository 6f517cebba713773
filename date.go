// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfinfo

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// dateAttempt tries to read a timestamp from a report value.
type dateAttempt func(value string) (time.Time, bool)

// dateAttempts run in order; the first success wins. pdfinfo prints dates
// differently across versions and locales.
var dateAttempts = []dateAttempt{
	parsePDFDate,
	parseClassicDate,
	parseGeneralDate,
	parseSlashDate,
}

// parseDate returns the timestamp in value, or false if no attempt accepts it.
func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, attempt := range dateAttempts {
		if t, ok := attempt(value); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// pdfDateLayouts is indexed by the number of leading digits.
var pdfDateLayouts = map[int]string{
	4:  "2006",
	6:  "200601",
	8:  "20060102",
	10: "2006010215",
	12: "200601021504",
	14: "20060102150405",
}

// parsePDFDate reads the raw PDF date form D:YYYYMMDDHHmmSSOHH'mm'.
func parsePDFDate(value string) (time.Time, bool) {
	rest, ok := strings.CutPrefix(value, "D:")
	if !ok {
		return time.Time{}, false
	}
	n := 0
	for n < len(rest) && rest[n] >= '0' && rest[n] <= '9' {
		n++
	}
	layout, ok := pdfDateLayouts[n]
	if !ok {
		return time.Time{}, false
	}
	loc, ok := pdfDateZone(rest[n:])
	if !ok {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(layout, rest[:n], loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// pdfDateZone reads the O HH'mm' suffix of a PDF date.
func pdfDateZone(s string) (*time.Location, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.UTC, true
	}
	sign := 1
	switch s[0] {
	case 'Z', 'z':
		return time.UTC, true
	case '+':
	case '-':
		sign = -1
	default:
		return nil, false
	}
	parts := strings.Split(strings.TrimSuffix(s[1:], "'"), "'")
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours > 23 {
		return nil, false
	}
	minutes := 0
	if len(parts) > 1 && parts[1] != "" {
		minutes, err = strconv.Atoi(parts[1])
		if err != nil || minutes > 59 {
			return nil, false
		}
	}
	offset := sign * (hours*3600 + minutes*60)
	if offset == 0 {
		return time.UTC, true
	}
	return time.FixedZone("", offset), true
}

var zonedDateLayouts = []string{
	"Mon Jan _2 15:04:05 2006 MST",
	"Mon Jan _2 15:04:05 2006",
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
}

// parseClassicDate reads the asctime-like form pdfinfo prints by default,
// e.g. "Mon Jan 16 10:00:00 2023 EST", and the RFC-822 family.
func parseClassicDate(value string) (time.Time, bool) {
	for _, layout := range zonedDateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return applyZoneAbbrev(t), true
		}
	}
	return time.Time{}, false
}

// parseGeneralDate accepts ISO-like and RFC-822-like text, with or without offset.
func parseGeneralDate(value string) (time.Time, bool) {
	t, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return applyZoneAbbrev(t), true
}

// zoneOffsets maps the zone names pdfinfo and RFC-822 dates carry to their
// offset east of UTC, in seconds.
var zoneOffsets = map[string]int{
	"UTC": 0, "UT": 0, "GMT": 0, "Z": 0,
	"EST": -5 * 3600, "EDT": -4 * 3600,
	"CST": -6 * 3600, "CDT": -5 * 3600,
	"MST": -7 * 3600, "MDT": -6 * 3600,
	"PST": -8 * 3600, "PDT": -7 * 3600,
	"AKST": -9 * 3600, "AKDT": -8 * 3600,
	"HST": -10 * 3600,
	"WET": 0, "WEST": 1 * 3600,
	"BST": 1 * 3600,
	"CET": 1 * 3600, "CEST": 2 * 3600,
	"MET": 1 * 3600, "MEST": 2 * 3600,
	"EET": 2 * 3600, "EEST": 3 * 3600,
	"MSK": 3 * 3600,
	"JST": 9 * 3600, "KST": 9 * 3600,
	"AWST": 8 * 3600,
	"ACST": 9*3600 + 1800, "ACDT": 10*3600 + 1800,
	"AEST": 10 * 3600, "AEDT": 11 * 3600,
	"NZST": 12 * 3600, "NZDT": 13 * 3600,
}

// applyZoneAbbrev fixes the offset of a time parsed against UTC. Go only
// knows the abbreviations of the location it parses in and gives every other
// name a zero offset, so the wall clock is re-anchored in the named zone.
func applyZoneAbbrev(t time.Time) time.Time {
	name, offset := t.Zone()
	if offset != 0 {
		return t
	}
	known, ok := zoneOffsets[strings.ToUpper(name)]
	if !ok || known == 0 {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		time.FixedZone(name, known))
}

// parseSlashDate reads month/day/year hour:minute:second on a 24-hour clock.
func parseSlashDate(value string) (time.Time, bool) {
	t, err := time.ParseInLocation("1/2/2006 15:04:05", value, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
