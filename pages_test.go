// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageSet_AddSize(t *testing.T) {
	s := newPageSet()
	p := s.addSize("Page    3 size", "595.276 x 841.89 pts (A4)")
	assert.Equal(t, Page{Number: 3, Width: 595, Height: 841, Format: "A4"}, p)

	p = s.addSize("Page size", "612 x 792 pts")
	assert.Equal(t, Page{Number: 1, Width: 612, Height: 792}, p)

	assert.Len(t, s.pages, 2)
}

func TestPageSet_AddSizeMissingNumbers(t *testing.T) {
	s := newPageSet()
	p := s.addSize("Page 1 size", "unknown (custom)")
	assert.Equal(t, Page{Number: 1, Format: "custom"}, p)
}

func TestPageSet_RepeatedSizeKeepsRotation(t *testing.T) {
	s := newPageSet()
	s.addSize("Page 1 size", "595 x 842 pts (A4)")
	_, ok := s.setRotation("Page 1 rot", "180")
	assert.True(t, ok)

	s.addSize("Page 1 size", "612 x 792 pts (letter)")
	assert.Equal(t, []Page{{Number: 1, Width: 612, Height: 792, Format: "letter", Rotate: 180}}, s.pages)
}

func TestPageSet_SetRotationUnknownPage(t *testing.T) {
	s := newPageSet()
	s.addSize("Page 1 size", "595 x 842 pts (A4)")

	n, ok := s.setRotation("Page 4 rot", "90")
	assert.False(t, ok)
	assert.Equal(t, 4, n)
	assert.Equal(t, 0, s.pages[0].Rotate)
}

func TestPageKeys(t *testing.T) {
	for _, k := range []string{"Page    1 size", "page 12 SIZE", "Page size"} {
		assert.True(t, pageSizeKey.MatchString(k), k)
	}
	for _, k := range []string{"Page    1 rot", "Page rot"} {
		assert.True(t, pageRotKey.MatchString(k), k)
	}
	for _, k := range []string{"Pages", "File size", "Page    1 MediaBox"} {
		assert.False(t, pageSizeKey.MatchString(k), k)
		assert.False(t, pageRotKey.MatchString(k), k)
	}
}

func TestDocumentFormat(t *testing.T) {
	f, ok := documentFormat("595 x 842 pts (A4)")
	assert.True(t, ok)
	assert.Equal(t, "595 x 842 pts (A4)", f)

	_, ok = documentFormat("595 x 842 pts")
	assert.False(t, ok)
}
