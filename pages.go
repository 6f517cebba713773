// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfinfo

import "regexp"

var (
	pageSizeKey = regexp.MustCompile(`(?i)^page\b.*\bsize$`)
	pageRotKey  = regexp.MustCompile(`(?i)^page\b.*\brot$`)
)

// pageSet accumulates page entries across size and rotation lines.
type pageSet struct {
	pages []Page
	index map[int]int // page number -> position in pages
}

func newPageSet() *pageSet {
	return &pageSet{index: make(map[int]int)}
}

// pageNumber reads the page number embedded in a size or rotation key.
// pdfinfo run without a page range prints "Page size:" for page 1.
func pageNumber(key string) int {
	if n, ok := firstInt(key); ok {
		return n
	}
	return 1
}

// addSize records a "Page N size: 595 x 842 pts (A4)" line and returns the
// entry it produced. A repeated size line for the same page replaces the
// geometry and keeps any rotation already seen.
func (s *pageSet) addSize(key, value string) Page {
	p := Page{Number: pageNumber(key)}
	nums := decimals(value)
	if len(nums) > 0 {
		p.Width = int(nums[0])
	}
	if len(nums) > 1 {
		p.Height = int(nums[1])
	}
	p.Format, _ = firstParenGroup(value)

	if i, ok := s.index[p.Number]; ok {
		p.Rotate = s.pages[i].Rotate
		s.pages[i] = p
		return p
	}
	s.index[p.Number] = len(s.pages)
	s.pages = append(s.pages, p)
	return p
}

// setRotation records a "Page N rot: 90" line. It reports false when no size
// line for that page has been seen.
func (s *pageSet) setRotation(key, value string) (int, bool) {
	number := pageNumber(key)
	i, ok := s.index[number]
	if !ok {
		return number, false
	}
	rot, _ := firstInt(value)
	s.pages[i].Rotate = rot
	return number, true
}

// documentFormat returns the size value as the document level format when
// it ends in a parenthesised format label.
func documentFormat(value string) (string, bool) {
	if !sizedFormatPattern.MatchString(value) {
		return "", false
	}
	return value, true
}
