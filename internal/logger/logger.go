package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Service  string
	Level    string
	Format   string
	Output   string
	FilePath string
}

// New builds the process logger and installs it as the slog default.
// Output "file" rotates through lumberjack, "both" also writes to stdout.
func New(opts Options) *slog.Logger {
	logger := slog.New(newHandler(writer(opts), opts)).With(
		slog.String("service", opts.Service),
	)

	slog.SetDefault(logger)
	return logger
}

func newHandler(w io.Writer, opts Options) slog.Handler {
	handlerOpts := &slog.HandlerOptions{
		Level: parseLevel(opts.Level),
	}

	if strings.EqualFold(opts.Format, "text") {
		return slog.NewTextHandler(w, handlerOpts)
	}

	return slog.NewJSONHandler(w, handlerOpts)
}

func writer(opts Options) io.Writer {
	rotating := func() io.Writer {
		return &lumberjack.Logger{
			Filename:   opts.FilePath,
			MaxSize:    100,
			MaxBackups: 10,
			MaxAge:     30,
			Compress:   true,
		}
	}

	switch opts.Output {
	case "file":
		return rotating()
	case "both":
		return io.MultiWriter(os.Stdout, rotating())
	default:
		return os.Stdout
	}
}

func parseLevel(lvl string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
