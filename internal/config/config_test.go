package config

import (
	"strings"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 8080 || cfg.DBDriver != DriverSQLite || cfg.DBPath != "./data/ekub.db" {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %s, want 24h", cfg.TokenTTL)
	}
	if cfg.SchedulerInterval != 0 || cfg.Currency != "ETB" {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Addr = %s", cfg.Addr())
	}
}

func TestLoadMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected error without JWT_SECRET")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Errorf("Expected parse env prefix, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		Port:      8080,
		DBDriver:  DriverSQLite,
		DBPath:    "./data/ekub.db",
		JWTSecret: testSecret,
		TokenTTL:  time.Hour,
		LogFormat: "text",
		Currency:  "ETB",
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"postgres without url", func(c *Config) { c.DBDriver = DriverPostgres }, "DATABASE_URL"},
		{"postgres with url", func(c *Config) {
			c.DBDriver = DriverPostgres
			c.DatabaseURL = "postgres://localhost/ekub"
		}, ""},
		{"unknown driver", func(c *Config) { c.DBDriver = "mysql" }, "DB_DRIVER"},
		{"short secret", func(c *Config) { c.JWTSecret = "short" }, "JWT_SECRET"},
		{"bad port", func(c *Config) { c.Port = 0 }, "PORT"},
		{"negative interval", func(c *Config) { c.SchedulerInterval = -time.Second }, "SCHEDULER_INTERVAL"},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, "LOG_FORMAT"},
		{"bad currency", func(c *Config) { c.Currency = "BIRR" }, "CURRENCY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error mentioning %s, got %v", tt.wantErr, err)
			}
		})
	}
}
