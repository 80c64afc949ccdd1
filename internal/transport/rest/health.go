package rest

import (
	"context"
	"net/http"
	"sort"
	"time"
)

const probeTimeout = 3 * time.Second

// Pinger is a dependency that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	version string
	started time.Time
	checks  map[string]Pinger
}

// NewHealthHandler creates a HealthHandler probing every named dependency.
func NewHealthHandler(version string, checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{version: version, started: time.Now(), checks: checks}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Uptime     string                `json:"uptime,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 when every dependency answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, ok := h.probe(r.Context())
	if !ok {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health reports every dependency with its latency, plus version and uptime.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.probe(r.Context())

	resp := HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Uptime:     time.Since(h.started).Truncate(time.Second).String(),
		Components: components,
		Timestamp:  time.Now(),
	}
	status := http.StatusOK
	if !ok {
		resp.Status = "down"
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

func (h *HealthHandler) probe(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	components := make(map[string]CompStatus, len(names))
	ok := true
	for _, name := range names {
		start := time.Now()
		if err := h.checks[name].Ping(ctx); err != nil {
			components[name] = CompStatus{Status: "down"}
			ok = false
			continue
		}
		components[name] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}
	return components, ok
}
