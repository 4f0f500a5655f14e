// Package logger configures the process-wide structured logger.
package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Setup installs the default slog logger at the named level. A terminal
// stderr gets colorized output; a redirected one gets plain text so log
// capture stays grep-friendly.
func Setup(level string) error {
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}

	var handler slog.Handler

	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      lvl,
			TimeFormat: time.Kitchen,
		})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	}

	slog.SetDefault(slog.New(handler))

	return nil
}

func parseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "err", "error":
		return slog.LevelError, nil
	}

	return 0, fmt.Errorf("unknown log level %q", name)
}
