// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfinfo

import "strings"

// parseEncrypted handles the value of the Encrypted line. Either a bare
// "yes"/"no", or "yes (print:no copy:no change:no addNotes:no)".
func parseEncrypted(m *Metadata, value string) {
	if len(value) <= 3 {
		m.Encrypted = boolPtr(value == "yes")
		// no rights detail means nothing is restricted
		for _, p := range []**bool{&m.Print, &m.Copy, &m.Change, &m.AddNotes} {
			if *p == nil {
				*p = boolPtr(true)
			}
		}
		return
	}

	m.Encrypted = boolPtr(true)
	for _, token := range strings.Fields(rightsString(value)) {
		name, v, ok := strings.Cut(token, ":")
		if !ok || name == "" {
			continue
		}
		setRight(m, snakeCase(name), v == "yes")
	}
}

// rightsString strips the "yes (" ... ")" wrapper from an Encrypted value.
func rightsString(value string) string {
	if inner, ok := firstParenGroup(value); ok {
		return inner
	}
	rest := strings.TrimSpace(strings.TrimPrefix(value, "yes"))
	return strings.Trim(rest, "()")
}

func setRight(m *Metadata, name string, granted bool) {
	switch name {
	case "print":
		m.Print = boolPtr(granted)
	case "copy":
		m.Copy = boolPtr(granted)
	case "change":
		m.Change = boolPtr(granted)
	case "add_notes":
		m.AddNotes = boolPtr(granted)
	default:
		if m.Rights == nil {
			m.Rights = make(map[string]bool)
		}
		m.Rights[name] = granted
	}
}

func boolPtr(b bool) *bool { return &b }
