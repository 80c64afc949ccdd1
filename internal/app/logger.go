package app

import (
	"io"
	"log/slog"
	"strings"

	"github.com/liammahoney/site-api/internal/config"
)

// redactedKeys name attributes that may carry OAuth material. Their values
// never reach the log output, whichever layer logs them.
var redactedKeys = map[string]bool{
	"token":         true,
	"access_token":  true,
	"code":          true,
	"client_secret": true,
	"authorization": true,
}

// NewLogger builds the process logger, writing JSON or text to w, and makes
// it the slog default. Text output carries source locations for local runs.
func NewLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	asJSON := strings.EqualFold(cfg.Format, "json")

	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   !asJSON,
		ReplaceAttr: redact,
	}

	var h slog.Handler = slog.NewTextHandler(w, opts)
	if asJSON {
		h = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(h).With("app", "site-api")
	slog.SetDefault(logger)
	return logger
}

func redact(_ []string, a slog.Attr) slog.Attr {
	switch {
	case a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime:
		return slog.Time(a.Key, a.Value.Time().UTC())
	case redactedKeys[strings.ToLower(a.Key)] && a.Value.Kind() != slog.KindGroup:
		return slog.String(a.Key, "[redacted]")
	}
	return a
}

func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
