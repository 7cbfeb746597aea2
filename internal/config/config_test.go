package config

import (
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Database.DBName != "courseboard" {
		t.Errorf("Database.DBName = %q", cfg.Database.DBName)
	}
	if cfg.JWT.TokenExpiration != "24h" {
		t.Errorf("JWT.TokenExpiration = %q, want 24h", cfg.JWT.TokenExpiration)
	}
	if cfg.JWT.Issuer != "courseboard.app" {
		t.Errorf("JWT.Issuer = %q", cfg.JWT.Issuer)
	}
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("LoadConfig should fail without a JWT secret")
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_TOKEN_EXPIRATION", "1h")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("Database.Host = %q", cfg.Database.Host)
	}
	if cfg.JWT.TokenExpiration != "1h" {
		t.Errorf("JWT.TokenExpiration = %q, want 1h", cfg.JWT.TokenExpiration)
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	cfg.Database.User = "u"
	cfg.Database.Password = "p"
	cfg.Database.Host = "h"
	cfg.Database.Port = "5432"
	cfg.Database.DBName = "d"

	want := "postgres://u:p@h:5432/d?sslmode=disable"
	if got := cfg.GetPostgresConnectionString(); got != want {
		t.Errorf("connection string = %q, want %q", got, want)
	}
}

func TestLoadConfigInvalidExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_TOKEN_EXPIRATION", "soon")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("LoadConfig should reject an unparseable token expiration")
	}
}
