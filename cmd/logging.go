package cmd

import (
	"fmt"
	"io"
	"log/slog"
)

// setupLogger configures the default slog logger to write to w.
//
// level is one of debug, info, warn or error. format is text or json.
func setupLogger(w io.Writer, level, format string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text", "":
		handler = slog.NewTextHandler(w, opts)
	default:
		return fmt.Errorf("invalid log format %q, want text or json", format)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}
