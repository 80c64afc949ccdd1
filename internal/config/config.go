package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Site      SiteConfig      `yaml:"site"`
	Mail      MailConfig      `yaml:"mail"`
	CORS      CORSConfig      `yaml:"cors"`
	Log       LogConfig       `yaml:"log"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"1048576"`
	// TrustProxy takes the client address from X-Forwarded-For when set.
	TrustProxy bool `yaml:"trust_proxy" env:"SERVER_TRUST_PROXY" env-default:"false"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// DatabaseConfig holds PostgreSQL connection settings. SkipMigrate leaves
// migrations to cmd/migrate instead of applying them at api startup.
type DatabaseConfig struct {
	DSN              string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns         int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns         int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime  time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime  time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	StatementTimeout time.Duration `yaml:"statement_timeout"  env:"DATABASE_STATEMENT_TIMEOUT"  env-default:"5s"`
	SkipMigrate      bool          `yaml:"skip_migrate"       env:"DATABASE_SKIP_MIGRATE"`
}

// AuthConfig holds the GitHub OAuth settings and the single permitted principal.
type AuthConfig struct {
	GitHubClientID     string        `yaml:"github_client_id"     env:"AUTH_GITHUB_CLIENT_ID"`
	GitHubClientSecret string        `yaml:"github_client_secret" env:"AUTH_GITHUB_CLIENT_SECRET"`
	PermittedID        int64         `yaml:"github_permitted_id"  env:"AUTH_GITHUB_PERMITTED_ID"`
	OAuthBaseURL       string        `yaml:"github_oauth_url"     env:"AUTH_GITHUB_OAUTH_URL"     env-default:"https://github.com"`
	APIBaseURL         string        `yaml:"github_api_url"       env:"AUTH_GITHUB_API_URL"       env-default:"https://api.github.com"`
	UserAgent          string        `yaml:"github_user_agent"    env:"AUTH_GITHUB_USER_AGENT"    env-default:"personal-site-auth"`
	HTTPTimeout        time.Duration `yaml:"http_timeout"         env:"AUTH_HTTP_TIMEOUT"         env-default:"10s"`
}

// SiteConfig holds locations of the admin frontend and static pages.
type SiteConfig struct {
	AdminURL  string `yaml:"admin_url"  env:"SITE_ADMIN_URL"  env-default:"https://admin.liammahoney.dev"`
	StaticDir string `yaml:"static_dir" env:"SITE_STATIC_DIR" env-default:"./public"`
	AdminDir  string `yaml:"admin_dir"  env:"SITE_ADMIN_DIR"  env-default:"./admin"`
}

// MailConfig holds the contact-form relay settings.
type MailConfig struct {
	Command   string        `yaml:"command"   env:"MAIL_COMMAND"   env-default:"mail"`
	Recipient string        `yaml:"recipient" env:"MAIL_RECIPIENT" env-default:"root"`
	Timeout   time.Duration `yaml:"timeout"   env:"MAIL_TIMEOUT"   env-default:"10s"`
}

// CORSConfig holds CORS settings. Origins are matched by host suffix.
type CORSConfig struct {
	AllowedOriginSuffixes string `yaml:"allowed_origin_suffixes" env:"CORS_ALLOWED_ORIGIN_SUFFIXES" env-default:"liammahoney.dev"`
	AllowedMethods        string `yaml:"allowed_methods"         env:"CORS_ALLOWED_METHODS"         env-default:"PUT,POST,GET,PATCH,DELETE"`
	AllowedHeaders        string `yaml:"allowed_headers"         env:"CORS_ALLOWED_HEADERS"         env-default:"Origin,X-Requested-With,Content-Type,Accept,Authorization"`
	MaxAge                int    `yaml:"max_age"                 env:"CORS_MAX_AGE"                 env-default:"86400"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	ContactPerMinute int           `yaml:"contact_per_minute" env:"RATELIMIT_CONTACT_PER_MINUTE" env-default:"5"`
	AuthPerMinute    int           `yaml:"auth_per_minute"    env:"RATELIMIT_AUTH_PER_MINUTE"    env-default:"30"`
	CleanupInterval  time.Duration `yaml:"cleanup_interval"   env:"RATELIMIT_CLEANUP_INTERVAL"   env-default:"5m"`
}
