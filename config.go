package sitecms

import (
	"database/sql"
	"time"

	"github.com/goliatone/go-sitecms/content"
	"github.com/goliatone/go-sitecms/internal/ratelimit"
	"github.com/goliatone/go-sitecms/pkg/interfaces"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/mattn/go-sqlite3"
)

// Config assembles one sitecms module. The zero value wires in-memory
// repositories, a no-op logger, and the default markdown pipeline, which is
// enough for tests and prototypes.
type Config struct {
	// DB selects the persistent backend. Nil means in-memory repositories.
	DB *bun.DB

	// Logging provides the logger; nil stays no-op.
	Logging interfaces.LoggerProvider

	// Locales are provisioned on Seed. The first entry flagged default wins.
	Locales []content.SeedLocale

	// Markdown sets the default parse options for article rendering.
	Markdown interfaces.ParseOptions

	// CacheTTL bounds cached entries in the built-in tag cache. Zero means
	// no expiry.
	CacheTTL time.Duration

	// LoginRateLimit bounds login attempts per key. Zero fields use the
	// limiter defaults.
	LoginRateLimit ratelimit.Config

	// Auth is the host's session service. The module never inspects
	// credentials; admin surfaces ask it for a privileged session.
	Auth interfaces.AuthService

	// Uploads is the host's file storage. Image fields in admin sections
	// carry URLs produced by it.
	Uploads interfaces.Uploader
}

// Option mutates the configuration before the module is built.
type Option func(*Config)

// WithDB wires a bun database; without it the module runs on memory
// repositories.
func WithDB(db *bun.DB) Option {
	return func(c *Config) {
		c.DB = db
	}
}

// WithLogging wires a logger provider.
func WithLogging(provider interfaces.LoggerProvider) Option {
	return func(c *Config) {
		c.Logging = provider
	}
}

// WithLocales sets the locales Seed provisions.
func WithLocales(locales ...content.SeedLocale) Option {
	return func(c *Config) {
		c.Locales = locales
	}
}

// WithMarkdownOptions overrides the markdown parse defaults.
func WithMarkdownOptions(opts interfaces.ParseOptions) Option {
	return func(c *Config) {
		c.Markdown = opts
	}
}

// WithCacheTTL bounds entries in the built-in tag cache.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Config) {
		c.CacheTTL = ttl
	}
}

// WithLoginRateLimit configures the login attempt limiter.
func WithLoginRateLimit(cfg ratelimit.Config) Option {
	return func(c *Config) {
		c.LoginRateLimit = cfg
	}
}

// WithAuth wires the host's authentication service.
func WithAuth(auth interfaces.AuthService) Option {
	return func(c *Config) {
		c.Auth = auth
	}
}

// WithUploader wires the host's upload service.
func WithUploader(uploads interfaces.Uploader) Option {
	return func(c *Config) {
		c.Uploads = uploads
	}
}

// DefaultConfig returns the memory-backed configuration with sanitized
// markdown rendering and the default seed locale set.
func DefaultConfig() Config {
	return Config{
		Markdown: interfaces.ParseOptions{Sanitize: true},
		Locales: []content.SeedLocale{
			{Code: "en", Display: "English", IsDefault: true},
		},
	}
}

// OpenSQLite opens a SQLite-backed bun database, suitable for single-host
// deployments and local development.
func OpenSQLite(dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// NewPostgresDB wraps an existing PostgreSQL connection pool.
func NewPostgresDB(sqldb *sql.DB) *bun.DB {
	return bun.NewDB(sqldb, pgdialect.New())
}
