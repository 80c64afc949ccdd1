// Package auth implements GitHub login restricted to a single permitted account.
package auth

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/oauth2"
	ghendpoint "golang.org/x/oauth2/github"

	"github.com/liammahoney/site-api/internal/adapter/provider/github"
	"github.com/liammahoney/site-api/internal/config"
)

const defaultOAuthBaseURL = "https://github.com"

// githubClient defines the provider calls needed by the auth service.
type githubClient interface {
	ExchangeCode(ctx context.Context, code string) (string, error)
	FetchProfile(ctx context.Context, token string) (*github.Profile, error)
}

// outcomeRecorder counts authentication results.
type outcomeRecorder interface {
	IncrementAuthOutcome(operation, outcome string)
}

// Service composes token exchange, profile lookup and the allowlist check.
// It holds no per-user state; every call is independent.
type Service struct {
	log         *slog.Logger
	github      githubClient
	permittedID int64
	oauth       *oauth2.Config
	metrics     outcomeRecorder
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, gh githubClient, cfg config.AuthConfig, metrics outcomeRecorder) *Service {
	return &Service{
		log:         logger.With("service", "auth"),
		github:      gh,
		permittedID: cfg.PermittedID,
		oauth: &oauth2.Config{
			ClientID:     cfg.GitHubClientID,
			ClientSecret: cfg.GitHubClientSecret,
			Endpoint:     endpointFor(cfg.OAuthBaseURL),
		},
		metrics: metrics,
	}
}

func endpointFor(baseURL string) oauth2.Endpoint {
	base := strings.TrimRight(baseURL, "/")
	if base == "" || base == defaultOAuthBaseURL {
		return ghendpoint.Endpoint
	}
	return oauth2.Endpoint{
		AuthURL:  base + "/login/oauth/authorize",
		TokenURL: base + "/login/oauth/access_token",
	}
}

// AuthorizeURL returns the provider page the browser is sent to for login.
// Sign-up is disabled on that page. An empty state is omitted.
func (s *Service) AuthorizeURL(state string) string {
	return s.oauth.AuthCodeURL(state, oauth2.SetAuthURLParam("allow_signup", "false"))
}

func (s *Service) record(operation, outcome string) {
	if s.metrics != nil {
		s.metrics.IncrementAuthOutcome(operation, outcome)
	}
}
