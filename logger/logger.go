package logger

import (
	"io"
	"log/slog"
	"os"
)

// New builds a JSON logger at info level for production and a text logger at
// debug level for every other environment.
func New(env string, w io.Writer) *slog.Logger {
	if env == "production" || env == "prod" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Setup installs the logger for env as the slog default.
func Setup(env string) {
	slog.SetDefault(New(env, os.Stdout))
}
