package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return errors.New("database.dsn is required")
	}

	if err := c.Auth.validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	if _, err := url.ParseRequestURI(c.Site.AdminURL); err != nil {
		return fmt.Errorf("site.admin_url: %w", err)
	}

	if strings.TrimSpace(c.Mail.Command) == "" {
		return errors.New("mail.command must not be empty")
	}
	if strings.TrimSpace(c.Mail.Recipient) == "" {
		return errors.New("mail.recipient must not be empty")
	}

	if c.RateLimit.ContactPerMinute <= 0 {
		return fmt.Errorf("ratelimit.contact_per_minute must be > 0 (got %d)", c.RateLimit.ContactPerMinute)
	}
	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("ratelimit.auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute)
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("ratelimit.cleanup_interval must be > 0 (got %v)", c.RateLimit.CleanupInterval)
	}

	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be > 0 (got %v)", c.Server.ShutdownTimeout)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes)
	}

	if len(ParseList(c.CORS.AllowedOriginSuffixes)) == 0 {
		return errors.New("cors.allowed_origin_suffixes must list at least one suffix")
	}

	return nil
}

func (a *AuthConfig) validate() error {
	if a.GitHubClientID == "" || a.GitHubClientSecret == "" {
		return errors.New("github_client_id and github_client_secret are required")
	}
	if a.PermittedID <= 0 {
		return fmt.Errorf("github_permitted_id must be > 0 (got %d)", a.PermittedID)
	}
	for name, raw := range map[string]string{"github_oauth_url": a.OAuthBaseURL, "github_api_url": a.APIBaseURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL (got %q)", name, raw)
		}
	}
	if a.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout must be > 0 (got %v)", a.HTTPTimeout)
	}
	return nil
}

// ParseList splits a comma-separated string into trimmed, non-empty items.
// An empty string returns a nil slice.
func ParseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		items = append(items, p)
	}
	return items
}
