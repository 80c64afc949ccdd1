package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/liammahoney/site-api/pkg/ctxutil"
)

const panicBody = `{"error":"internal server error"}`

// Recovery turns a handler panic into a logged 500 with the API's JSON error
// body. If the handler already started its response, the status is left
// alone. http.ErrAbortHandler keeps propagating.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				ctx := r.Context()
				logger.ErrorContext(ctx, "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
					slog.String("ip", ctxutil.ClientIPFromCtx(ctx)),
					slog.Bool("response_started", sw.wroteHeader),
					slog.String("stack", string(debug.Stack())))

				if sw.wroteHeader {
					return
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(panicBody))
			}()

			next.ServeHTTP(sw, r)
		})
	}
}
