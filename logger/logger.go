// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

// Package logger routes the library's log output to a caller supplied function.
package logger

import (
	"sync/atomic"

	"github.com/sassoftware/viya-pdfinfo/tracer"
)

// LogLevel represents log severity
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

// LogFunc is a single logger function that handles all levels
type LogFunc func(level LogLevel, msg string, keyvals ...interface{})

var logFunc atomic.Value

func init() {
	logFunc.Store(LogFunc(func(level LogLevel, msg string, keyvals ...interface{}) {}))
}

// SetLogger sets the global logger function. A nil f is ignored.
func SetLogger(f LogFunc) {
	if f != nil {
		logFunc.Store(f)
	}
}

func emit(level LogLevel, msg string, keyvals []interface{}) {
	trace := false
	if len(keyvals) > 0 {
		if b, ok := keyvals[len(keyvals)-1].(bool); ok {
			trace = b
			keyvals = keyvals[:len(keyvals)-1]
		}
	}
	logFunc.Load().(LogFunc)(level, msg, keyvals...)

	if trace {
		tracer.Log(msg)
	}
}

// Debug logs a message at debug level
// If the last keyvals element is a bool and true, it is treated as trace flag
func Debug(msg string, keyvals ...interface{}) {
	emit(DebugLevel, msg, keyvals)
}

// Warn logs a message at warn level. The trailing trace flag works as in Debug.
func Warn(msg string, keyvals ...interface{}) {
	emit(WarnLevel, msg, keyvals)
}

// Error logs a message at error level
func Error(msg string, keyvals ...interface{}) {
	logFunc.Load().(LogFunc)(ErrorLevel, msg, keyvals...)
}
