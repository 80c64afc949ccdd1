package middleware

import (
	"net/http"
	"strconv"
	"time"
)

type requestObserver interface {
	ObserveHTTPRequest(route, method, status string, d time.Duration)
}

// Instrument records count and latency of requests to one route.
// route should be the registered pattern so label cardinality stays bounded.
func Instrument(route string, obs requestObserver) Middleware {
	return func(next http.Handler) http.Handler {
		if obs == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			obs.ObserveHTTPRequest(route, r.Method, strconv.Itoa(sw.status), time.Since(start))
		})
	}
}
