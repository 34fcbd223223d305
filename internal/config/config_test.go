package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("PORT", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("CACHE_MAX_ENTRIES", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 3001 {
		t.Errorf("Server.Port = %d, want 3001", cfg.Server.Port)
	}
	if cfg.Storage.Driver != "memory" {
		t.Errorf("Storage.Driver = %q, want memory", cfg.Storage.Driver)
	}
	if cfg.Deal.UpsellThreshold != 5000 || cfg.Deal.DownsellThreshold != 3000 {
		t.Errorf("unexpected deal thresholds: %+v", cfg.Deal)
	}
	if cfg.Deal.ReferenceTermMonths != 60 {
		t.Errorf("Deal.ReferenceTermMonths = %d, want 60", cfg.Deal.ReferenceTermMonths)
	}
	if cfg.Gemini.Enabled {
		t.Error("Gemini should be disabled without an API key")
	}
	if cfg.Cache.MaxEntries != 1000 {
		t.Errorf("Cache.MaxEntries = %d, want 1000", cfg.Cache.MaxEntries)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("DEAL_UPSELL_CAP", "12000")
	t.Setenv("CACHE_TTL_SECONDS", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Storage.Driver != "sqlite" {
		t.Errorf("Storage.Driver = %q, want sqlite", cfg.Storage.Driver)
	}
	if cfg.Deal.UpsellCap != 12000 {
		t.Errorf("Deal.UpsellCap = %v, want 12000", cfg.Deal.UpsellCap)
	}
	if cfg.Cache.TTLSeconds != 600 {
		t.Errorf("invalid integer should fall back to default, got %d", cfg.Cache.TTLSeconds)
	}
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mongo")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unsupported storage driver")
	}
}

func TestGetPostgreSQLDSN(t *testing.T) {
	cfg := &Config{Storage: StorageConfig{
		Host: "db", Port: 5433, User: "u", Password: "p", Database: "d", SSLMode: "disable",
	}}

	dsn := cfg.GetPostgreSQLDSN()
	for _, part := range []string{"host=db", "port=5433", "dbname=d"} {
		if !strings.Contains(dsn, part) {
			t.Errorf("DSN %q missing %q", dsn, part)
		}
	}

	cfg.Storage.DSN = "postgres://x"
	if got := cfg.GetPostgreSQLDSN(); got != "postgres://x" {
		t.Errorf("explicit DSN should win, got %q", got)
	}
}

func TestLoad_GeminiSwitch(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		enabled string
		want    bool
	}{
		{"key only", "k", "", true},
		{"switched off", "k", "false", false},
		{"malformed switch keeps default", "k", "maybe", true},
		{"switch without key", "", "true", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("STORAGE_DRIVER", "")
			t.Setenv("GEMINI_API_KEY", tt.key)
			t.Setenv("GEMINI_ENABLED", tt.enabled)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.Gemini.Enabled != tt.want {
				t.Errorf("Gemini.Enabled = %v, want %v", cfg.Gemini.Enabled, tt.want)
			}
		})
	}
}
