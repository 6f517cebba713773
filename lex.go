// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfinfo

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	intPattern     = regexp.MustCompile(`\d+`)
	decimalPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)
	parenPattern   = regexp.MustCompile(`\((.+)\)`)
	// a page-size value that ends in its format label, e.g. "595 x 842 pts (A4)"
	sizedFormatPattern = regexp.MustCompile(`\d.*\(.+\)$`)
)

// splitPair splits a report line at its first colon into a trimmed key and value.
func splitPair(line string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(line, ":")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), true
}

// firstInt returns the first run of decimal digits in s.
func firstInt(s string) (int, bool) {
	m := intPattern.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

// decimals returns every unsigned decimal number in s, in order.
func decimals(s string) []float64 {
	var out []float64
	for _, m := range decimalPattern.FindAllString(s, -1) {
		f, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		out = append(out, f)
	}
	return out
}

// firstParenGroup returns the text between the first "(" and the last ")".
func firstParenGroup(s string) (string, bool) {
	m := parenPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// normalizeKey lowercases a report label and replaces spaces with underscores.
func normalizeKey(key string) string {
	lower := cases.Lower(language.Und).String(strings.TrimSpace(key))
	return strings.ReplaceAll(lower, " ", "_")
}

// snakeCase turns a camelCase rights token name such as "addNotes" into "add_notes".
func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
