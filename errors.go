// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfinfo

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrPageNotFound is returned in Strict mode when a rotation line names a
	// page that has no size line before it.
	ErrPageNotFound = errors.New("page not found")
	// ErrReportTooLarge is returned when a report exceeds Config.MaxReportBytes.
	ErrReportTooLarge = errors.New("report too large")
)

// Conditions reported by pdfinfo through its exit status.
var (
	ErrIncorrectPassword = errors.New("pdfinfo: incorrect password")
	ErrFile              = errors.New("pdfinfo: error opening PDF file")
	ErrOutput            = errors.New("pdfinfo: error opening output file")
	ErrBadPermissions    = errors.New("pdfinfo: error related to PDF permissions")
	ErrUnknown           = errors.New("pdfinfo: unknown error")
)

// PageRefError describes a rotation line without a matching page entry.
type PageRefError struct {
	Page int
	Line int
}

func (e *PageRefError) Error() string {
	return fmt.Sprintf("line %d: rotation for page %d before its size line", e.Line, e.Page)
}

func (e *PageRefError) Unwrap() error { return ErrPageNotFound }

// ExitError is a non-zero pdfinfo exit status mapped to one of the
// condition errors above.
type ExitError struct {
	Status int
	Stderr string
	err    error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%v (exit status %d)", e.err, e.Status)
}

func (e *ExitError) Unwrap() error { return e.err }

const incorrectPasswordMarker = "Incorrect password"

// ClassifyExit maps a pdfinfo exit status and its captured stderr to an
// error. Status 0 yields nil.
func ClassifyExit(status int, stderr string) error {
	var err error
	switch status {
	case 0:
		return nil
	case 1:
		if strings.Contains(stderr, incorrectPasswordMarker) {
			err = ErrIncorrectPassword
		} else {
			err = ErrFile
		}
	case 2:
		err = ErrOutput
	case 3:
		err = ErrBadPermissions
	default:
		err = ErrUnknown
	}
	return &ExitError{Status: status, Stderr: strings.TrimSpace(stderr), err: err}
}
