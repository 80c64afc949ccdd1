package app

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/liammahoney/site-api/internal/config"
	"github.com/liammahoney/site-api/internal/metrics"
	authsvc "github.com/liammahoney/site-api/internal/service/auth"
	contactsvc "github.com/liammahoney/site-api/internal/service/contact"
	projectsvc "github.com/liammahoney/site-api/internal/service/project"
	"github.com/liammahoney/site-api/internal/transport/middleware"
	"github.com/liammahoney/site-api/internal/transport/rest"
)

// RouterDeps is everything the HTTP surface is built from.
type RouterDeps struct {
	Config   *config.Config
	Logger   *slog.Logger
	Auth     *authsvc.Service
	Projects *projectsvc.Service
	Contact  *contactsvc.Service
	Health   map[string]rest.Pinger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Limiter  *middleware.RateLimiter
}

// NewRouter wires every route and the global middleware chain.
func NewRouter(d RouterDeps) http.Handler {
	cfg := d.Config
	maxBody := cfg.Server.MaxBodyBytes

	fallback := rest.NewFallback(d.Logger)
	healthH := rest.NewHealthHandler(BuildVersion(), d.Health)
	projectH := rest.NewProjectHandler(d.Projects, d.Logger, maxBody)
	authH := rest.NewAuthHandler(d.Auth, cfg.Site, d.Logger)
	adminH := rest.NewAdminHandler(d.Auth, cfg.Site, d.Logger)
	contactH := rest.NewContactHandler(d.Contact, d.Logger, maxBody)

	admin := middleware.Chain{middleware.RequireAdmin(d.Auth, d.Logger.With("middleware", "admin"))}
	authLimited := middleware.Chain{d.Limiter.Limit("auth", cfg.RateLimit.AuthPerMinute)}
	contactLimited := middleware.Chain{d.Limiter.Limit("contact", cfg.RateLimit.ContactPerMinute)}

	r := &router{mux: http.NewServeMux(), fallback: fallback, metrics: d.Metrics}

	r.get("/live", http.HandlerFunc(healthH.Live))
	r.get("/ready", http.HandlerFunc(healthH.Ready))
	r.get("/health", http.HandlerFunc(healthH.Health))
	r.get("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))

	r.get("/projects", http.HandlerFunc(projectH.List))
	r.handle("/project", map[string]http.Handler{
		http.MethodPost:   admin.ThenFunc(projectH.Create),
		http.MethodPut:    admin.ThenFunc(projectH.Update),
		http.MethodDelete: admin.ThenFunc(projectH.Delete),
	})

	r.get("/authentication", http.HandlerFunc(authH.Authentication))
	r.get("/authenticated", authLimited.ThenFunc(authH.Authenticated))
	r.get("/unauthorized", http.HandlerFunc(authH.Unauthorized))
	r.get("/authCheck", authLimited.ThenFunc(authH.AuthCheck))

	r.get("/admin", authLimited.ThenFunc(adminH.Serve))
	r.get("/admin/", authLimited.ThenFunc(adminH.Serve))

	r.handle("/contact", map[string]http.Handler{
		http.MethodPost: contactLimited.ThenFunc(contactH.Send),
	})

	r.mux.Handle("/", fallback)

	return middleware.Chain{
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.ClientIP(cfg.Server.TrustProxy),
		middleware.Logger(d.Logger),
		middleware.CORS(cfg.CORS),
	}.Then(r.mux)
}

// router registers each path once and dispatches on method itself, so a
// known path with an unsupported method falls through to the 404 text
// instead of the mux's 405.
type router struct {
	mux      *http.ServeMux
	fallback http.Handler
	metrics  *metrics.Metrics
}

func (r *router) get(path string, h http.Handler) {
	r.handle(path, map[string]http.Handler{http.MethodGet: h})
}

func (r *router) handle(path string, byMethod map[string]http.Handler) {
	if get, ok := byMethod[http.MethodGet]; ok {
		if _, ok := byMethod[http.MethodHead]; !ok {
			byMethod[http.MethodHead] = get
		}
	}
	for method, h := range byMethod {
		byMethod[method] = middleware.Instrument(method+" "+path, r.metrics)(h)
	}

	r.mux.Handle(path, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		h, ok := byMethod[req.Method]
		if !ok {
			r.fallback.ServeHTTP(w, req)
			return
		}
		h.ServeHTTP(w, req)
	}))
}
