package main

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// newLogger returns a logger that writes to stderr and, if jsonPath
// is not empty, also to a JSON log file at that path. The returned
// function closes the log file.
func newLogger(stderr io.Writer, verbose bool, jsonPath string) (*slog.Logger, func() error, error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handlers := []slog.Handler{
		slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: dropTime,
		}),
	}
	closeLog := func() error { return nil }
	if jsonPath != "" {
		f, err := os.Create(jsonPath)
		if err != nil {
			return nil, nil, err
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		closeLog = f.Close
	}
	return slog.New(slogmulti.Fanout(handlers...)), closeLog, nil
}

// dropTime removes the time from terminal log lines.
func dropTime(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && len(groups) == 0 {
		return slog.Attr{}
	}
	return a
}
