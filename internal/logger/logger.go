// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the airline-guard server and its admin
// client.
//
// Request-scoped loggers travel in the context (see FromContext and
// FromRequest); everything else receives a *Logger at construction.
package logger

import (
	"context"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so Debug, Info, Warn, Err and friends are
// called on it directly.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns the JSON server logger writing to stdout. Every event
// carries role, a timestamp and the calling function under "func".
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{
		zerolog.New(os.Stdout).With().
			Str("role", role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// NewClientLogger returns a console logger for the admin command line
// client. Only warnings and errors are printed, to stderr.
func NewClientLogger(role string) *Logger {
	return &Logger{
		zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.WarnLevel).
			With().
			Str("role", role).
			Timestamp().
			Logger(),
	}
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy whose context can be extended without
// touching the receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithHook returns a child logger that also feeds every event to h.
func (l *Logger) WithHook(h zerolog.Hook) *Logger {
	return &Logger{l.Hook(h)}
}

func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored with zerolog's WithContext. A context
// without one yields a disabled logger, never nil, so callers outside a
// request or worker must attach a logger to their context first.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
