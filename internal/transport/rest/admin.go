package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/liammahoney/site-api/internal/config"
	"github.com/liammahoney/site-api/pkg/ctxutil"
)

const (
	adminScriptPath = "/admin/admin.js"
	adminPagePath   = "/admin/admin.html"
)

type tokenChecker interface {
	AuthCheck(ctx context.Context, token string) error
}

// AdminHandler serves the admin page, gated by a ?token= query parameter.
type AdminHandler struct {
	checker tokenChecker
	admin   pageDir
	static  pageDir
	log     *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(checker tokenChecker, site config.SiteConfig, logger *slog.Logger) *AdminHandler {
	log := logger.With("handler", "admin")
	return &AdminHandler{
		checker: checker,
		admin:   pageDir{dir: site.AdminDir, log: log},
		static:  pageDir{dir: site.StaticDir, log: log},
		log:     log,
	}
}

// Serve handles GET /admin and everything below it.
//
// The admin script is public so the page can load it without a token.
// Any other path without a token starts the login flow.
func (h *AdminHandler) Serve(w http.ResponseWriter, r *http.Request) {
	ip := slog.String("ip", ctxutil.ClientIPFromCtx(r.Context()))

	token := r.URL.Query().Get("token")
	if token == "" {
		if r.URL.Path == adminScriptPath {
			h.admin.serve(w, r, http.StatusOK, "admin.js", "")
			return
		}
		h.log.WarnContext(r.Context(), "admin request without token", slog.String("path", r.URL.Path), ip)
		http.Redirect(w, r, "/authentication", http.StatusFound)
		return
	}

	if err := h.checker.AuthCheck(r.Context(), token); err != nil {
		http.Redirect(w, r, "/unauthorized", http.StatusFound)
		return
	}

	if r.URL.Path == adminPagePath {
		h.log.InfoContext(r.Context(), "admin page served", ip)
		h.admin.serve(w, r, http.StatusOK, "admin.html", "admin")
		return
	}

	h.log.WarnContext(r.Context(), "unknown admin path", slog.String("path", r.URL.Path), ip)
	h.static.serve(w, r, http.StatusNotFound, "404.html", notFoundText)
}
