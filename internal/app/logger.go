package app

import (
	"io"
	"log/slog"

	"github.com/vk/chainctl/internal/netconfig"
)

// newLogger creates and configures a new slog.Logger instance from the
// loaded logging settings. It does not touch the global logger, allowing
// for isolated logger instances.
func newLogger(logCfg netconfig.LogSettings, debug bool, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch logCfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	if debug {
		level = slog.LevelDebug
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if !logCfg.Timestamp {
		handlerOpts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		}
	}

	var handler slog.Handler
	if logCfg.Stringify {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}
