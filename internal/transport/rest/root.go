package rest

import (
	"log/slog"
	"net/http"

	"github.com/liammahoney/site-api/pkg/ctxutil"
)

// Fallback answers the API root and every request no other route matched.
type Fallback struct {
	log *slog.Logger
}

// NewFallback creates a Fallback handler.
func NewFallback(logger *slog.Logger) *Fallback {
	return &Fallback{log: logger.With("handler", "fallback")}
}

// ServeHTTP greets GET / and rejects everything else with 404.
func (h *Fallback) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/" && (r.Method == http.MethodGet || r.Method == http.MethodHead) {
		writeText(w, http.StatusOK, "welcome to my api")
		return
	}

	h.log.WarnContext(r.Context(), "no route",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("ip", ctxutil.ClientIPFromCtx(r.Context())))
	writeText(w, http.StatusNotFound, notFoundText)
}
