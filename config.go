package pubadmin

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds all settings for a pubadmin console.
type Config struct {
	SiteName string `env:"SITE_NAME"` // Sidebar header (default "Admin Panel")
	SiteURL  string `env:"SITE_URL"`  // Canonical URL (default "http://localhost:3000")

	Addr         string `env:"ADDR"`          // Listen address (default ":3000")
	DatabasePath string `env:"DATABASE_PATH"` // SQLite path (default "data/console.db")

	// UploadEndpoint is the external multipart upload endpoint assets are
	// forwarded to. The endpoint owns file storage; the console only keeps
	// the metadata it returns.
	UploadEndpoint string `env:"UPLOAD_ENDPOINT"`

	AdminPassword string `env:"ADMIN_PASSWORD"`       // Required: admin login password
	SessionSecret string `env:"ADMIN_SESSION_SECRET"` // Required: session encryption secret
	CookieSecure  bool   `env:"COOKIE_SECURE"`        // Set true for HTTPS
}

// ParseEnv loads a Config from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.SiteName == "" {
		c.SiteName = "Admin Panel"
	}
	if c.SiteURL == "" {
		c.SiteURL = "http://localhost:3000"
	}
	c.SiteURL = strings.TrimSuffix(c.SiteURL, "/")
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/console.db"
	}
	if c.UploadEndpoint == "" {
		c.UploadEndpoint = "http://localhost:4000/api/assets-upload/upload"
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}
