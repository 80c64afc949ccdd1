package rest

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/liammahoney/site-api/internal/config"
	"github.com/liammahoney/site-api/pkg/ctxutil"
)

type authService interface {
	InitialAuth(ctx context.Context, code string) (string, error)
	AuthCheck(ctx context.Context, token string) error
	AuthorizeURL(state string) string
}

// AuthHandler serves the GitHub login flow.
type AuthHandler struct {
	svc      authService
	adminURL string
	static   pageDir
	log      *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, site config.SiteConfig, logger *slog.Logger) *AuthHandler {
	log := logger.With("handler", "auth")
	return &AuthHandler{
		svc:      svc,
		adminURL: site.AdminURL,
		static:   pageDir{dir: site.StaticDir, log: log},
		log:      log,
	}
}

// Authentication handles GET /authentication by sending the browser to GitHub.
func (h *AuthHandler) Authentication(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.svc.AuthorizeURL(""), http.StatusFound)
}

// Authenticated handles the GitHub callback GET /authenticated?code=.
// The permitted account lands on the admin site with its token; anyone
// else lands on /unauthorized.
func (h *AuthHandler) Authenticated(w http.ResponseWriter, r *http.Request) {
	token, err := h.svc.InitialAuth(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		http.Redirect(w, r, "/unauthorized", http.StatusFound)
		return
	}
	http.Redirect(w, r, h.adminRedirect(token), http.StatusFound)
}

func (h *AuthHandler) adminRedirect(token string) string {
	u, err := url.Parse(h.adminURL)
	if err != nil {
		return h.adminURL + "?" + url.Values{"token": {token}}.Encode()
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String()
}

// Unauthorized handles GET /unauthorized.
func (h *AuthHandler) Unauthorized(w http.ResponseWriter, r *http.Request) {
	h.log.InfoContext(r.Context(), "unauthorized page served",
		slog.String("ip", ctxutil.ClientIPFromCtx(r.Context())))
	h.static.serve(w, r, http.StatusUnauthorized, "401.html", "unauthorized")
}

// AuthCheck handles GET /authCheck?token=.
func (h *AuthHandler) AuthCheck(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		h.log.WarnContext(r.Context(), "auth check without token",
			slog.String("ip", ctxutil.ClientIPFromCtx(r.Context())))
		writeText(w, http.StatusUnauthorized, "auth failed")
		return
	}
	if err := h.svc.AuthCheck(r.Context(), token); err != nil {
		writeText(w, http.StatusUnauthorized, "auth failed")
		return
	}
	writeText(w, http.StatusOK, "OK")
}
