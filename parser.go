// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

// Package pdfinfo turns the textual report printed by poppler's pdfinfo
// into structured document metadata.
//
// A report is a sequence of "Label: value" lines:
//
//	Pages:          2
//	Encrypted:      yes (print:no copy:yes change:no addNotes:yes)
//	Page    1 size: 595 x 842 pts (A4)
//	Page    1 rot:  90
//
// Parse reads one report in a single pass. Lines it does not recognise are
// kept as plain strings under a normalized key; malformed values leave the
// field absent instead of failing the parse.
package pdfinfo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sassoftware/viya-pdfinfo/logger"
)

// Parser converts pdfinfo reports to Metadata. A Parser holds no state
// between calls and may be shared by goroutines.
type Parser struct {
	cfg *Config
}

// NewParser validates the config and creates a new Parser.
func NewParser(cfg *Config) *Parser {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	if cfg.Logger != nil {
		logger.SetLogger(cfg.Logger)
	}
	return &Parser{cfg: cfg}
}

var defaultParser = &Parser{cfg: NewDefaultConfig()}

// Parse parses report in BestEffort mode. It never fails.
func Parse(report string) *Metadata {
	m, _ := defaultParser.Parse(report)
	return m
}

// Parse classifies each line of report and assembles the metadata record.
// The only error is a *PageRefError, and only in Strict mode.
func (p *Parser) Parse(report string) (*Metadata, error) {
	m := &Metadata{}
	pages := newPageSet()

	for i, line := range strings.Split(report, "\n") {
		key, value, ok := splitPair(strings.TrimRight(line, "\r"))
		if !ok || key == "" {
			continue
		}
		if err := p.dispatch(m, pages, key, value, i+1); err != nil {
			return nil, err
		}
	}

	if len(pages.pages) > 0 {
		m.Pages = pages.pages
	}
	return m, nil
}

func (p *Parser) dispatch(m *Metadata, pages *pageSet, key, value string, lineNo int) error {
	switch key {
	case "Pages":
		if n, err := strconv.Atoi(value); err == nil {
			m.PageCount = &n
		} else {
			p.debug("ignoring unparseable page count", "value", value)
		}
	case "Encrypted":
		parseEncrypted(m, value)
	case "Optimized":
		m.Optimized = boolPtr(value == "yes")
	case "Tagged":
		m.Tagged = boolPtr(value == "yes")
	case "PDF version":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			m.Version = &v
		} else {
			p.debug("ignoring unparseable PDF version", "value", value)
		}
	case "CreationDate":
		if t, ok := parseDate(value); ok {
			m.CreationDate = &t
		} else {
			p.debug("ignoring unparseable creation date", "value", value)
		}
	case "ModDate":
		if t, ok := parseDate(value); ok {
			m.ModificationDate = &t
		} else {
			p.debug("ignoring unparseable modification date", "value", value)
		}
	default:
		switch {
		case pageSizeKey.MatchString(key):
			pages.addSize(key, value)
			if f, ok := documentFormat(value); ok {
				m.Format = &f
			}
		case pageRotKey.MatchString(key):
			number, ok := pages.setRotation(key, value)
			if ok {
				p.debug("page rotation set", "page", number, "line", lineNo)
				return nil
			}
			if p.cfg.ParsingMode == Strict {
				err := &PageRefError{Page: number, Line: lineNo}
				p.debug(fmt.Sprintf("Strict mode error, stopping parse: %v", err), true)
				return err
			}
			logger.Warn("dropping rotation for unknown page", "page", number, "line", lineNo)
		default:
			if m.Fields == nil {
				m.Fields = make(map[string]string)
			}
			m.Fields[normalizeKey(key)] = value
		}
	}
	return nil
}

// debug logs through the logger package when Config.DebugOn is set.
func (p *Parser) debug(msg string, keyvals ...interface{}) {
	if p.cfg.DebugOn {
		logger.Debug(msg, keyvals...)
	}
}
