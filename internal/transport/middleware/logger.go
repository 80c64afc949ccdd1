package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/liammahoney/site-api/pkg/ctxutil"
)

// probePaths are polled by the orchestrator; successful hits log at debug.
var probePaths = map[string]bool{"/live": true, "/ready": true, "/metrics": true}

// Logger writes one "http.request" line per request. Only the path is
// logged, never the query, since /authenticated and /admin carry the OAuth
// code and token there.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			ctx := r.Context()
			logger.LogAttrs(ctx, requestLevel(r.URL.Path, sw.status), "http.request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int64("bytes", sw.bytes),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
				slog.String("ip", ctxutil.ClientIPFromCtx(ctx)),
				slog.String("user_agent", r.UserAgent()))
		})
	}
}

func requestLevel(path string, status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status == http.StatusUnauthorized, status == http.StatusTooManyRequests:
		return slog.LevelWarn
	case probePaths[path]:
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// statusWriter records the status and body size a handler produced.
type statusWriter struct {
	http.ResponseWriter
	status      int
	bytes       int64
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	n, err := w.ResponseWriter.Write(b)
	w.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
