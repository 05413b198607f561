package config

import (
	"strings"
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost/eventra")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected :8080, got %q", cfg.HTTPAddr)
	}
	if cfg.DashboardSource != SourcePostgres {
		t.Fatalf("expected postgres source, got %q", cfg.DashboardSource)
	}
	if cfg.DBMaxOpenConns != 20 || cfg.DBMaxIdleConns != 10 {
		t.Fatalf("unexpected pool sizes: %d/%d", cfg.DBMaxOpenConns, cfg.DBMaxIdleConns)
	}
	if cfg.DBConnMaxLifetime != 30*time.Minute {
		t.Fatalf("unexpected conn lifetime: %v", cfg.DBConnMaxLifetime)
	}
	if !cfg.RunMigrations {
		t.Fatalf("expected migrations enabled by default")
	}
	if cfg.BackendTimeout != 5*time.Second || cfg.ShutdownTimeout != 5*time.Second {
		t.Fatalf("unexpected timeouts: %v %v", cfg.BackendTimeout, cfg.ShutdownTimeout)
	}
	if cfg.MetricsScrapeTimeout != 3*time.Second {
		t.Fatalf("unexpected scrape timeout: %v", cfg.MetricsScrapeTimeout)
	}
	if cfg.Location() != time.Local {
		t.Fatalf("expected Local location, got %v", cfg.Location())
	}
	if !cfg.HasDatabase() {
		t.Fatalf("expected database configured")
	}
}

func TestFromEnv_BackendSource(t *testing.T) {
	t.Setenv("DASHBOARD_SOURCE", "Backend")
	t.Setenv("BACKEND_API_URL", "http://backend:8000/api/events/")
	t.Setenv("DASHBOARD_TIMEZONE", "Asia/Kolkata")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000,https://admin.example.com")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DashboardSource != SourceBackend {
		t.Fatalf("expected backend source, got %q", cfg.DashboardSource)
	}
	if cfg.HasDatabase() {
		t.Fatalf("expected no database")
	}
	if cfg.Location().String() != "Asia/Kolkata" {
		t.Fatalf("unexpected location: %v", cfg.Location())
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://admin.example.com" {
		t.Fatalf("unexpected origins: %v", cfg.CORSOrigins)
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{"missing dsn", map[string]string{}},
		{"backend without url", map[string]string{"DASHBOARD_SOURCE": "backend"}},
		{"unknown source", map[string]string{"DASHBOARD_SOURCE": "kafka", "POSTGRES_DSN": "x"}},
		{"bad timezone", map[string]string{"POSTGRES_DSN": "x", "DASHBOARD_TIMEZONE": "Mars/Olympus"}},
		{"bad duration", map[string]string{"POSTGRES_DSN": "x", "BACKEND_TIMEOUT": "soon"}},
		{"zero timeout", map[string]string{"POSTGRES_DSN": "x", "BACKEND_TIMEOUT": "0s"}},
		{"negative pool", map[string]string{"POSTGRES_DSN": "x", "DB_MAX_OPEN_CONNS": "-1"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("POSTGRES_DSN", "")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := FromEnv()
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.HasPrefix(err.Error(), "config:") {
				t.Fatalf("expected config: prefix, got %v", err)
			}
		})
	}
}
