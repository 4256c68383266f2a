// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-pubkey.
//
// go-pubkey is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

// Package logging provides the structured diagnostic loggers used across the
// key engine. Loggers are zerolog instances; callers inject them into key
// handles so every engine event can be captured, redirected, or silenced.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// New creates a logger writing structured JSON events to w. When debug is
// true the logger emits debug-level events, otherwise info and above.
func New(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info for
// unrecognized names.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	default:
		return zerolog.InfoLevel
	}
}

var (
	defaultOnce   sync.Once
	defaultLogger zerolog.Logger
)

// Default returns the shared stderr logger at info level.
func Default() zerolog.Logger {
	defaultOnce.Do(func() {
		defaultLogger = New(os.Stderr, false)
	})
	return defaultLogger
}

// Nop returns a logger that discards every event.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
