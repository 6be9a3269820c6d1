package logger

import (
	"io"
	"log/slog"
	"os"

	"polyline-td/internal/config"
)

// Init настраивает slog по умолчанию. Если w равен nil, пишет в stdout.
// Терминальный фронтенд передаёт сюда файл, чтобы лог не портил экран.
func Init(settings *config.Settings, w io.Writer) {
	if settings == nil {
		panic("settings must be loaded before logger")
	}
	if w == nil {
		w = os.Stdout
	}

	var handler slog.Handler
	level := parseLogLevel(settings.LogLevel)

	if settings.LogJSON {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
		})
	} else {
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: level,
		})
	}

	slog.SetDefault(slog.New(handler))

	logger := slog.With("component", "logger")
	logger.Debug("Logger initialized",
		"level", settings.LogLevel,
		"json_format", settings.LogJSON,
	)
}

func parseLogLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
