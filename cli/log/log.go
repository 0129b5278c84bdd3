// Package log holds the process-wide logger. The name avoids clashing with a
// package-global 'log' variable that confuses gopls in package main.
package log

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileSuffix is appended to the workflow name to form the debug log file.
const FileSuffix = "_script.output"

// Base is a bare logger without attributes
var Base *slog.Logger

// logger is the cli logger with default attributes
var logger *slog.Logger

var initialized atomic.Bool

// Init sets up process-wide logging: errors go to the console, the full
// debug stream goes to '<name>_script.output' in the working directory.
// Init must be called exactly once, before building any workflow
// configuration; further calls return an error.
func Init(name string) error {
	if !initialized.CompareAndSwap(false, true) {
		return errors.New("logging is already initialized")
	}

	console := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})
	file := slog.NewTextHandler(&lumberjack.Logger{
		Filename:   name + FileSuffix,
		MaxSize:    100, // megabytes
		MaxBackups: 3,
	}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	Base = slog.New(tee{console, file})
	logger = Base.With("component", "cli")
	logger.Debug("Logging initialized", "name", name)
	return nil
}

// tee fans a record out to every handler that accepts its level.
type tee []slog.Handler

func (t tee) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (t tee) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, h := range t {
		if h.Enabled(ctx, record.Level) {
			if err := h.Handle(ctx, record.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (t tee) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make(tee, len(t))
	for i, h := range t {
		handlers[i] = h.WithAttrs(attrs)
	}
	return handlers
}

func (t tee) WithGroup(name string) slog.Handler {
	handlers := make(tee, len(t))
	for i, h := range t {
		handlers[i] = h.WithGroup(name)
	}
	return handlers
}

// Proxies for slog.Logger methods

func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	logger.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	logger.Error(msg, args...)
}

func With(args ...any) *slog.Logger {
	return logger.With(args...)
}
