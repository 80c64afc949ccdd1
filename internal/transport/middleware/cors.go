package middleware

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/liammahoney/site-api/internal/config"
)

// CORS returns middleware that handles Cross-Origin Resource Sharing.
// An origin is allowed when its host equals one of the configured suffixes
// or is a subdomain of one. Preflight OPTIONS requests are answered here.
func CORS(cfg config.CORSConfig) Middleware {
	suffixes := config.ParseList(cfg.AllowedOriginSuffixes)
	methods := cfg.AllowedMethods
	headers := cfg.AllowedHeaders

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" {
				w.Header().Add("Vary", "Origin")
				if isAllowedOrigin(origin, suffixes) {
					w.Header().Set("Access-Control-Allow-Origin", origin)
				}
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", methods)
				w.Header().Set("Access-Control-Allow-Headers", headers)
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isAllowedOrigin(origin string, suffixes []string) bool {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, s := range suffixes {
		s = strings.ToLower(strings.TrimPrefix(s, "."))
		if s == "*" || host == s || strings.HasSuffix(host, "."+s) {
			return true
		}
	}
	return false
}
