// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfinfo

import (
	"encoding/json"
	"io"
	"time"
)

// Metadata is the structured form of one pdfinfo report.
// A nil field means the report did not carry it.
type Metadata struct {
	PageCount *int  `json:"page_count,omitempty"`
	Encrypted *bool `json:"encrypted,omitempty"`

	// Access permissions, granted unless the Encrypted line says otherwise.
	Print    *bool `json:"print,omitempty"`
	Copy     *bool `json:"copy,omitempty"`
	Change   *bool `json:"change,omitempty"`
	AddNotes *bool `json:"add_notes,omitempty"`

	Optimized        *bool      `json:"optimized,omitempty"`
	Tagged           *bool      `json:"tagged,omitempty"`
	Version          *float64   `json:"version,omitempty"`
	CreationDate     *time.Time `json:"creation_date,omitempty"`
	ModificationDate *time.Time `json:"modification_date,omitempty"`
	Format           *string    `json:"format,omitempty"`
	Pages            []Page     `json:"pages,omitempty"`

	// Rights holds rights tokens other than the four above, e.g. "algorithm".
	Rights map[string]bool `json:"rights,omitempty"`
	// Fields holds every other "Key: Value" line under its normalized key.
	Fields map[string]string `json:"fields,omitempty"`
}

// Page is the geometry of a single page.
type Page struct {
	Number int    `json:"number"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
	Rotate int    `json:"rotate"`
}

// Field returns a generic report field by its normalized key.
func (m *Metadata) Field(key string) (string, bool) {
	v, ok := m.Fields[key]
	return v, ok
}

// Map flattens the record into a plain mapping keyed by field name.
// Absent fields are left out; rights and generic fields sit at the top level.
func (m *Metadata) Map() map[string]any {
	out := make(map[string]any, len(m.Fields)+len(m.Rights)+16)
	for k, v := range m.Fields {
		out[k] = v
	}
	for k, v := range m.Rights {
		out[k] = v
	}
	setInt(out, "page_count", m.PageCount)
	setBool(out, "encrypted", m.Encrypted)
	setBool(out, "print", m.Print)
	setBool(out, "copy", m.Copy)
	setBool(out, "change", m.Change)
	setBool(out, "add_notes", m.AddNotes)
	setBool(out, "optimized", m.Optimized)
	setBool(out, "tagged", m.Tagged)
	if m.Version != nil {
		out["version"] = *m.Version
	}
	if m.CreationDate != nil {
		out["creation_date"] = *m.CreationDate
	}
	if m.ModificationDate != nil {
		out["modification_date"] = *m.ModificationDate
	}
	if m.Format != nil {
		out["format"] = *m.Format
	}
	if len(m.Pages) > 0 {
		pages := make([]map[string]any, len(m.Pages))
		for i, p := range m.Pages {
			pages[i] = map[string]any{
				"number": p.Number,
				"width":  p.Width,
				"height": p.Height,
				"format": p.Format,
				"rotate": p.Rotate,
			}
		}
		out["pages"] = pages
	}
	return out
}

func setInt(out map[string]any, key string, v *int) {
	if v != nil {
		out[key] = *v
	}
}

func setBool(out map[string]any, key string, v *bool) {
	if v != nil {
		out[key] = *v
	}
}

// WriteJSON writes the flattened metadata as pretty JSON to the provided writer.
func (m *Metadata) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m.Map())
}
