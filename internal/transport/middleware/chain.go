package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain is an ordered middleware stack; the first entry is outermost.
// Nil entries are skipped so optional layers can be listed inline.
type Chain []Middleware

// Then wraps h with every middleware in c.
func (c Chain) Then(h http.Handler) http.Handler {
	for i := len(c) - 1; i >= 0; i-- {
		if c[i] != nil {
			h = c[i](h)
		}
	}
	return h
}

// ThenFunc is Then for a plain handler function.
func (c Chain) ThenFunc(fn http.HandlerFunc) http.Handler {
	return c.Then(fn)
}

