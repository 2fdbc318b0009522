package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all website configuration
type Config struct {
	// Server settings
	Address     string `env:"WEBSITE_ADDRESS" envDefault:"0.0.0.0"`
	Port        int    `env:"WEBSITE_PORT" envDefault:"4002"`
	Environment string `env:"ENVIRONMENT" envDefault:"local"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Canonical URL used in meta tags
	SiteURL string `env:"SITE_URL" envDefault:"http://localhost:4002"`

	// Live demo stream settings
	Demo DemoConfig

	// Origins allowed to call the stream and health endpoints
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"` // the demo stream clears its own deadline
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// DemoConfig controls the scripted chat stream
type DemoConfig struct {
	// Multiplier applied to script delays; 2 plays twice as fast
	Speed float64 `env:"DEMO_SPEED" envDefault:"1.0"`

	// Stream admissions per second and burst size
	StreamRate  float64 `env:"DEMO_STREAM_RATE" envDefault:"5"`
	StreamBurst int     `env:"DEMO_STREAM_BURST" envDefault:"10"`
}

// ListenAddr returns the host:port the HTTP server binds to
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Address, c.Port)
}

// IsProduction reports whether the site runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LoadDotEnv loads .env files if present (for local development).
// Order matters: .env.local overrides .env.
// Note: Load() won't overwrite existing vars, Overload() will
func LoadDotEnv(dir string) {
	_ = godotenv.Load(filepath.Join(dir, ".env"))
	_ = godotenv.Overload(filepath.Join(dir, ".env.local"))
}

// Parse reads the configuration from the environment
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Demo.Speed <= 0 {
		return nil, fmt.Errorf("parse config: DEMO_SPEED must be positive, got %v", cfg.Demo.Speed)
	}
	if cfg.Demo.StreamBurst < 1 {
		cfg.Demo.StreamBurst = 1
	}
	return cfg, nil
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.Port),
		slog.String("site_url", cfg.SiteURL),
		slog.Float64("demo_speed", cfg.Demo.Speed),
	)

	return cfg, nil
}
