package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/vistaarbengaluru/vistaar/internal/content"
	"github.com/vistaarbengaluru/vistaar/internal/relay"
)

// Config is read from the environment at startup. The relay credentials stay
// on the server; the page never sees them.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`

	// AdminPassword seeds the inbox login when no password is stored yet.
	AdminPassword string `env:"ADMIN_PASSWORD"`

	RelayEndpoint   string `env:"EMAILJS_ENDPOINT"`
	RelayServiceID  string `env:"EMAILJS_SERVICE_ID,required,notEmpty"`
	RelayTemplateID string `env:"EMAILJS_TEMPLATE_ID,required,notEmpty"`
	RelayPublicKey  string `env:"EMAILJS_PUBLIC_KEY,required,notEmpty"`
	// RelayPrivateKey is the EmailJS access token. Server-side calls need
	// non-browser API access enabled on the account, and the key as well when
	// the account runs in strict mode.
	RelayPrivateKey string        `env:"EMAILJS_PRIVATE_KEY"`
	RelayTimeout    time.Duration `env:"RELAY_TIMEOUT" envDefault:"15s"`

	Recipient        string `env:"CONTACT_RECIPIENT"`
	ContactRateLimit int    `env:"CONTACT_RATE_LIMIT" envDefault:"5"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.RelayEndpoint == "" {
		cfg.RelayEndpoint = relay.DefaultEndpoint
	}
	if cfg.Recipient == "" {
		cfg.Recipient = content.Recipient
	}
	if cfg.RelayPrivateKey == "" {
		slog.Warn("EMAILJS_PRIVATE_KEY not set, relay calls fail if the account requires an access token")
	}
	if cfg.ContactRateLimit <= 0 {
		return cfg, fmt.Errorf("CONTACT_RATE_LIMIT must be positive, got %d", cfg.ContactRateLimit)
	}
	return cfg, nil
}

func (c Config) Relay() relay.Config {
	return relay.Config{
		Endpoint:   c.RelayEndpoint,
		ServiceID:  c.RelayServiceID,
		TemplateID: c.RelayTemplateID,
		PublicKey:  c.RelayPublicKey,
		PrivateKey: c.RelayPrivateKey,
		Timeout:    c.RelayTimeout,
	}
}
