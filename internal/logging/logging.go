// SPDX-License-Identifier: MIT

// Package logging builds the structured logger used by the campusnav binary.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrUnknownLevel is returned by ParseLevel for names other than
// debug, info, warn and error.
var ErrUnknownLevel = errors.New("logging: unknown level")

// ErrUnknownFormat is returned by ParseFormat for names other than text and json.
var ErrUnknownFormat = errors.New("logging: unknown format")

// Format names.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ParseLevel converts a case-insensitive level name into a slog.Level.
// An empty name means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// ParseFormat normalises a format name. An empty name means text.
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// New creates a *slog.Logger writing to w in the given format at the given level.
// If w is nil, os.Stderr is used.
func New(format, level string, w io.Writer) (*slog.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	if f == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler), nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
