package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	SourcePostgres = "postgres"
	SourceBackend  = "backend"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	PostgresDSN       string        `env:"POSTGRES_DSN"`
	DBMaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"20"`
	DBMaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	DBConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
	RunMigrations     bool          `env:"RUN_MIGRATIONS" envDefault:"true"`

	// DashboardSource selects where dashboard events are read from.
	DashboardSource string        `env:"DASHBOARD_SOURCE" envDefault:"postgres"`
	BackendAPIURL   string        `env:"BACKEND_API_URL"`
	BackendTimeout  time.Duration `env:"BACKEND_TIMEOUT" envDefault:"5s"`
	Timezone        string        `env:"DASHBOARD_TIMEZONE" envDefault:"Local"`

	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	CORSOrigins          []string      `env:"CORS_ORIGINS" envSeparator:","`
	MetricsScrapeTimeout time.Duration `env:"METRICS_SCRAPE_TIMEOUT" envDefault:"3s"`

	location *time.Location
}

// Load reads an optional .env file, then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("config: .env not loaded: %v", err)
	}
	return FromEnv()
}

// FromEnv parses and validates the process environment.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.DashboardSource = strings.ToLower(strings.TrimSpace(c.DashboardSource))
	switch c.DashboardSource {
	case SourcePostgres:
		if c.PostgresDSN == "" {
			return errors.New("config: POSTGRES_DSN is not set")
		}
	case SourceBackend:
		if c.BackendAPIURL == "" {
			return errors.New("config: BACKEND_API_URL is required when DASHBOARD_SOURCE=backend")
		}
	default:
		return fmt.Errorf("config: unknown DASHBOARD_SOURCE %q", c.DashboardSource)
	}

	if c.BackendTimeout <= 0 {
		return errors.New("config: BACKEND_TIMEOUT must be positive")
	}
	if c.MetricsScrapeTimeout <= 0 {
		return errors.New("config: METRICS_SCRAPE_TIMEOUT must be positive")
	}
	if c.DBMaxOpenConns < 0 || c.DBMaxIdleConns < 0 {
		return errors.New("config: DB pool sizes cannot be negative")
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("config: DASHBOARD_TIMEZONE: %w", err)
	}
	c.location = loc

	return nil
}

// Location is the zone calendar days are counted in.
func (c Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

func (c Config) HasDatabase() bool {
	return c.PostgresDSN != ""
}
