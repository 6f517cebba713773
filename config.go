// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfinfo

import (
	"github.com/go-playground/validator/v10"
	"github.com/sassoftware/viya-pdfinfo/logger"
)

// ParsingMode decides what happens to report lines that break the
// page-geometry ordering (a rotation line for a page with no size line).
type ParsingMode string

const (
	// Strict stops parsing and returns a *PageRefError.
	Strict ParsingMode = "strict"
	// BestEffort drops the offending line and keeps going.
	BestEffort ParsingMode = "best-effort"
)

type Config struct {
	ParsingMode          ParsingMode `validate:"oneof=strict best-effort"`
	MaxConcurrentReports int         `validate:"min=1,max=64"`
	MaxReportBytes       int64       `validate:"min=0"`

	// DebugOn enables debug and trace output. Warnings and errors are
	// always passed to Logger.
	DebugOn bool

	// Logger is installed process-wide; the last Parser or Processor built
	// with a non-nil Logger wins.
	Logger logger.LogFunc
}

func NewDefaultConfig() *Config {
	return &Config{
		ParsingMode:          BestEffort,
		MaxConcurrentReports: 4,
		MaxReportBytes:       0,
		DebugOn:              false,
	}
}

func (cfg *Config) Validate() error {
	if cfg.DebugOn {
		logger.Debug("Validating Config Object")
	}
	validate := validator.New()
	return validate.Struct(cfg)
}
