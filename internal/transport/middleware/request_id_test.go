package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/liammahoney/site-api/pkg/ctxutil"
)

func TestRequestID_ReuseIncoming(t *testing.T) {
	incomingID := uuid.New().String()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotID := ctxutil.RequestIDFromCtx(r.Context()); gotID != incomingID {
			t.Errorf("expected requestID %s, got %s", incomingID, gotID)
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incomingID)
	rec := httptest.NewRecorder()

	RequestID()(handler).ServeHTTP(rec, req)

	if gotHeader := rec.Header().Get(RequestIDHeader); gotHeader != incomingID {
		t.Errorf("expected response header %s, got %s", incomingID, gotHeader)
	}
}

func TestRequestID_GenerateNew(t *testing.T) {
	var gotID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = ctxutil.RequestIDFromCtx(r.Context())
	})

	rec := httptest.NewRecorder()
	RequestID()(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if _, err := uuid.Parse(gotID); err != nil {
		t.Fatalf("expected generated UUID, got %q", gotID)
	}
	if rec.Header().Get(RequestIDHeader) != gotID {
		t.Errorf("response header should echo the generated id")
	}
}

func TestRequestID_OversizedIncomingReplaced(t *testing.T) {
	var gotID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = ctxutil.RequestIDFromCtx(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("a", maxRequestIDLen+1))

	RequestID()(handler).ServeHTTP(httptest.NewRecorder(), req)

	if _, err := uuid.Parse(gotID); err != nil {
		t.Fatalf("expected oversized id to be replaced by a UUID, got %q", gotID)
	}
}

func TestClientIP_RemoteAddr(t *testing.T) {
	var got string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = ctxutil.ClientIPFromCtx(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.7:52311"
	req.Header.Set("X-Forwarded-For", "198.51.100.1")

	ClientIP(false)(handler).ServeHTTP(httptest.NewRecorder(), req)

	if got != "203.0.113.7" {
		t.Errorf("expected 203.0.113.7, got %q", got)
	}
}

func TestClientIP_TrustProxy(t *testing.T) {
	var got string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = ctxutil.ClientIPFromCtx(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:4000"
	req.Header.Set("X-Forwarded-For", " 198.51.100.1 , 10.0.0.1")

	ClientIP(true)(handler).ServeHTTP(httptest.NewRecorder(), req)

	if got != "198.51.100.1" {
		t.Errorf("expected 198.51.100.1, got %q", got)
	}
}

func TestClientIP_TrustProxyWithoutHeader(t *testing.T) {
	var got string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = ctxutil.ClientIPFromCtx(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:4000"

	ClientIP(true)(handler).ServeHTTP(httptest.NewRecorder(), req)

	if got != "10.0.0.2" {
		t.Errorf("expected 10.0.0.2, got %q", got)
	}
}
