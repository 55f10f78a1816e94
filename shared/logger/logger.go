package logger

import (
	"io"
	"log/slog"
	"os"
)

var Log *slog.Logger

func init() {
	// Safe defaults for tests and tools; main calls Initialize with config values.
	Initialize(Options{Level: "info"})
}

type Options struct {
	Level  string
	JSON   bool
	Output io.Writer // stdout when nil
}

// Initialize replaces the global logger and makes it the slog default.
func Initialize(opts Options) {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     parseLevel(opts.Level),
		AddSource: true,
	}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(out, handlerOpts)
	} else {
		handler = slog.NewTextHandler(out, handlerOpts)
	}

	Log = slog.New(handler)
	slog.SetDefault(Log)
}

// parseLevel accepts slog level names ("debug", "WARN", "error+2"); "warning"
// is kept as an alias. Anything else means info.
func parseLevel(level string) slog.Level {
	if level == "warning" {
		return slog.LevelWarn
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
