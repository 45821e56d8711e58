// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// go-calculator application.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/MKhiriev/go-calculator/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// ErrorLogFile receives entries of level error and above.
	ErrorLogFile = "error.log"
	// CombinedLogFile receives every entry that passes the configured level.
	CombinedLogFile = "combined.log"

	labelFieldName = "label"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label
// (e.g. "server", "client") that writes JSON to os.Stdout.
//
// The logger is configured with:
//   - global log level set to Debug (all levels are emitted);
//   - a "role" field set to role;
//   - a "time" timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name.
func NewLogger(role string) *Logger {
	setupCaller()

	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewServiceLogger builds the server logger described by cfg. Every entry
// carries the service label, a timestamp, the level and the message, and is
// written to:
//   - os.Stdout;
//   - <cfg.Dir>/combined.log;
//   - <cfg.Dir>/error.log, for error level and above only.
//
// File output is skipped when cfg.Dir is empty. The returned io.Closer closes
// the opened log files and must be called on shutdown.
func NewServiceLogger(cfg config.Log) (*Logger, io.Closer, error) {
	return newServiceLogger(cfg, os.Stdout)
}

func newServiceLogger(cfg config.Log, console io.Writer) (*Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("error parsing log level: %w", err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	setupCaller()

	writers := []io.Writer{console}
	var files fileClosers

	if cfg.Dir != "" {
		if err = os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("error creating log directory: %w", err)
		}

		combined, err := openLogFile(filepath.Join(cfg.Dir, CombinedLogFile))
		if err != nil {
			return nil, nil, err
		}
		files = append(files, combined)

		errorsOnly, err := openLogFile(filepath.Join(cfg.Dir, ErrorLogFile))
		if err != nil {
			_ = files.Close()
			return nil, nil, err
		}
		files = append(files, errorsOnly)

		writers = append(writers, combined, &levelFilterWriter{w: errorsOnly, min: zerolog.ErrorLevel})
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Str(labelFieldName, cfg.Label).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}, files, nil
}

// NewClientLogger constructs a human-readable *Logger for command line tools.
// Output goes to os.Stderr so it never mixes with results printed to stdout.
func NewClientLogger(role string, cfg config.Log) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
//
// This is typically used in HTTP middleware that has previously attached a
// request-scoped logger to the context via zerolog's WithContext.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its global logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

func setupCaller() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

func openLogFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("error opening log file %s: %w", path, err)
	}

	return f, nil
}

// levelFilterWriter drops entries below min.
type levelFilterWriter struct {
	w   io.Writer
	min zerolog.Level
}

func (lw *levelFilterWriter) Write(p []byte) (int, error) {
	return lw.w.Write(p)
}

func (lw *levelFilterWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < lw.min {
		return len(p), nil
	}

	return lw.w.Write(p)
}

type fileClosers []*os.File

func (fc fileClosers) Close() error {
	var errs []error
	for _, f := range fc {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
