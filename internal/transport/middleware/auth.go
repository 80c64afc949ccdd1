package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/liammahoney/site-api/pkg/ctxutil"
)

type tokenChecker interface {
	AuthCheck(ctx context.Context, token string) error
}

// RequireAdmin rejects requests whose Authorization token does not belong to
// the permitted account with 401 "unauthorized request". Accepted requests
// carry the admin flag in their context.
func RequireAdmin(checker tokenChecker, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r.Header.Get("Authorization"))
			if token == "" {
				reject(w, r, logger, "missing token")
				return
			}
			if err := checker.AuthCheck(r.Context(), token); err != nil {
				reject(w, r, logger, err.Error())
				return
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithAdmin(r.Context())))
		})
	}
}

func reject(w http.ResponseWriter, r *http.Request, logger *slog.Logger, reason string) {
	logger.WarnContext(r.Context(), "unauthorized request",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("ip", ctxutil.ClientIPFromCtx(r.Context())),
		slog.String("reason", reason))
	http.Error(w, "unauthorized request", http.StatusUnauthorized)
}

// ExtractToken accepts "Bearer <t>", "token <t>" or a bare token value.
func ExtractToken(header string) string {
	header = strings.TrimSpace(header)
	if scheme, rest, ok := strings.Cut(header, " "); ok {
		if strings.EqualFold(scheme, "bearer") || strings.EqualFold(scheme, "token") {
			return strings.TrimSpace(rest)
		}
		return ""
	}
	return header
}
