// Copyright (c) 2025 Craftlink
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides the CLI's structured logger and helpers for keeping
// credentials out of log output and user-facing error text.
package logging

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	Level(zerolog.WarnLevel).
	With().Timestamp().Logger()

// Setup configures the global log level. Unknown levels fall back to info.
// The ADMINCTL_VERBOSE environment variable forces debug regardless of config.
func Setup(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if os.Getenv("ADMINCTL_VERBOSE") == "1" {
		lvl = zerolog.DebugLevel
	}
	logger = logger.Level(lvl)
}

// L returns the CLI logger.
func L() *zerolog.Logger {
	return &logger
}

// PresentError formats an error for user display with masking.
func PresentError(context string, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", context, Mask(err.Error()))
}
