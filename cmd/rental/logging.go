package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var logLevel = new(slog.LevelVar)

// configureLogging installs a text logger on w as the default. The
// RENTAL_LOG_LEVEL environment variable wins over the configured level.
func configureLogging(w io.Writer, level string) *slog.Logger {
	if env := os.Getenv("RENTAL_LOG_LEVEL"); env != "" {
		level = env
	}

	switch strings.ToUpper(level) {
	case "DEBUG":
		logLevel.Set(slog.LevelDebug)
	case "WARN":
		logLevel.Set(slog.LevelWarn)
	case "ERROR":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)
	return logger
}
