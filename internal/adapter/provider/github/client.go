// Package github talks to the GitHub OAuth and REST endpoints used for
// admin login: code-for-token exchange and authenticated profile lookup.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/liammahoney/site-api/internal/config"
	"github.com/liammahoney/site-api/internal/domain"
)

const (
	tokenPath = "/login/oauth/access_token"
	userPath  = "/user"

	opTokenExchange = "token exchange"
	opProfileLookup = "profile lookup"

	// maxResponseBytes caps how much of a provider response is buffered.
	maxResponseBytes = 1 << 20
)

// HTTPDoer is the subset of *http.Client used by Client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// callObserver receives the duration and outcome of each provider call.
type callObserver interface {
	ObserveProviderCall(operation, outcome string, d time.Duration)
}

// Client exchanges GitHub OAuth codes and looks up the authenticated user.
// It performs exactly one request per call and never retries.
type Client struct {
	clientID     string
	clientSecret string
	oauthBaseURL string
	apiBaseURL   string
	userAgent    string
	http         HTTPDoer
	observer     callObserver
	log          *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default *http.Client.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) { c.http = doer }
}

// WithObserver reports call durations to o.
func WithObserver(o callObserver) Option {
	return func(c *Client) { c.observer = o }
}

// NewClient creates a GitHub client from config.AuthConfig.
// Without WithHTTPClient it uses an *http.Client bounded by cfg.HTTPTimeout.
func NewClient(cfg config.AuthConfig, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		clientID:     cfg.GitHubClientID,
		clientSecret: cfg.GitHubClientSecret,
		oauthBaseURL: strings.TrimRight(cfg.OAuthBaseURL, "/"),
		apiBaseURL:   strings.TrimRight(cfg.APIBaseURL, "/"),
		userAgent:    cfg.UserAgent,
		http:         &http.Client{Timeout: cfg.HTTPTimeout},
		log:          logger.With("adapter", "github_oauth"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Profile is the part of the GitHub user profile the service relies on.
// ID is kept as json.Number so both numeric and numeric-string ids decode.
type Profile struct {
	ID    json.Number `json:"id"`
	Login string      `json:"login"`
}

type tokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Code         string `json:"code"`
}

// tokenResponse represents the response from GitHub's token endpoint.
// GitHub reports a rejected code with status 200 and the error fields set.
type tokenResponse struct {
	AccessToken      string `json:"access_token"`
	TokenType        string `json:"token_type"`
	Scope            string `json:"scope"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ExchangeCode trades a one-time OAuth code for an access token.
func (c *Client) ExchangeCode(ctx context.Context, code string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", domain.NewValidationError("code", "required")
	}

	payload, err := json.Marshal(tokenRequest{
		ClientID:     c.clientID,
		ClientSecret: c.clientSecret,
		Code:         code,
	})
	if err != nil {
		return "", fmt.Errorf("encode token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.oauthBaseURL+tokenPath, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	status, body, err := c.do(req, opTokenExchange)
	if err != nil {
		return "", err
	}

	var resp tokenResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &domain.ExternalServiceError{
			Op: opTokenExchange, Status: status, Body: string(body),
			Err: fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err),
		}
	}

	if resp.Error != "" {
		return "", &domain.ExternalServiceError{
			Op: opTokenExchange, Status: status, Body: string(body),
			Err: fmt.Errorf("%s: %s", resp.Error, resp.ErrorDescription),
		}
	}

	if resp.AccessToken == "" {
		return "", &domain.ExternalServiceError{
			Op: opTokenExchange, Status: status, Body: string(body),
			Err: fmt.Errorf("%w: missing access_token", domain.ErrMalformedResponse),
		}
	}

	return resp.AccessToken, nil
}

// FetchProfile returns the profile of the user the token belongs to.
func (c *Client) FetchProfile(ctx context.Context, token string) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+userPath, nil)
	if err != nil {
		return nil, fmt.Errorf("create profile request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "token "+token)
	req.Header.Set("User-Agent", c.userAgent)

	status, body, err := c.do(req, opProfileLookup)
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, &domain.ExternalServiceError{
			Op: opProfileLookup, Status: status, Body: string(body),
			Err: fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err),
		}
	}

	return &profile, nil
}

// do executes req once and returns the status and body of a 200 response.
// Transport failures and non-200 statuses become *domain.ExternalServiceError.
func (c *Client) do(req *http.Request, op string) (int, []byte, error) {
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(op, "transport_error", start)
		c.log.DebugContext(req.Context(), "github request failed",
			slog.String("op", op), slog.String("error", err.Error()))
		return 0, nil, &domain.ExternalServiceError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.observe(op, "transport_error", start)
		return resp.StatusCode, nil, &domain.ExternalServiceError{
			Op: op, Status: resp.StatusCode, Err: fmt.Errorf("read response: %w", err),
		}
	}

	if resp.StatusCode != http.StatusOK {
		c.observe(op, "bad_status", start)
		c.log.DebugContext(req.Context(), "github request rejected",
			slog.String("op", op), slog.Int("status", resp.StatusCode))
		return resp.StatusCode, body, &domain.ExternalServiceError{
			Op: op, Status: resp.StatusCode, Body: string(body),
		}
	}

	c.observe(op, "ok", start)
	return resp.StatusCode, body, nil
}

func (c *Client) observe(op, outcome string, start time.Time) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveProviderCall(strings.ReplaceAll(op, " ", "_"), outcome, time.Since(start))
}

// IsTransportError reports whether err is a provider failure that never
// produced an HTTP response.
func IsTransportError(err error) bool {
	var ext *domain.ExternalServiceError
	return errors.As(err, &ext) && ext.Status == 0
}
