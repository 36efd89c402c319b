package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/jwebster45206/string-extractor/internal/config"
)

// Setup configures the global slog logger based on environment.
// Logs go to stderr so they never mix with extracted output.
func Setup(cfg *config.Config) *slog.Logger {
	return New(cfg, os.Stderr)
}

// New builds a logger writing to w and sets it as the default
func New(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if cfg.Environment == "production" {
		// JSON format for production
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// WithFile adds the input file to logger context
func WithFile(logger *slog.Logger, path string) *slog.Logger {
	return logger.With("file", path)
}
