package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points CONFIG_FILE at a fresh temp dir and clears every variable
// Load reads, so host settings cannot leak into a test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, key := range []string{
		"PORT", "LOG_MODE", "DB_DRIVER", "DB_URL", "JWT_SECRET_KEY", "JWT_ISSUER",
		"JWT_AUDIENCE", "CORS_ALLOWED_ORIGINS", "BCRYPT_COST",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("RAILWAY_ENVIRONMENT_NAME", "test")
	t.Setenv("CONFIG_FILE", filepath.Join(dir, "config.yaml"))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("DB_URL", "postgres://localhost/revision")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("expected postgres driver, got %q", cfg.Database.Driver)
	}
	if cfg.JWT.Issuer != "revision-api" || cfg.JWT.Audience != "revision-clients" {
		t.Errorf("unexpected jwt defaults: %+v", cfg.JWT)
	}
	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("unexpected addr %q", cfg.Addr())
	}
}

func TestLoadYAMLWithEnvOverride(t *testing.T) {
	dir := isolate(t)
	yamlConfig := `
port: 9000
database:
  driver: sqlite
  url: file.db
jwt:
  secret: from-file
  issuer: file-issuer
cors:
  allowed_origins:
    - https://revision.example
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yamlConfig), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PORT", "9100")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 9100 {
		t.Errorf("env PORT should win, got %d", cfg.Port)
	}
	if cfg.Database.Driver != "sqlite" || cfg.Database.URL != "file.db" {
		t.Errorf("unexpected database config: %+v", cfg.Database)
	}
	if cfg.JWT.Secret != "from-file" || cfg.JWT.Issuer != "file-issuer" {
		t.Errorf("unexpected jwt config: %+v", cfg.JWT)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("unexpected origins: %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{"DB_URL": "postgres://x"}},
		{"missing postgres url", map[string]string{"JWT_SECRET_KEY": "s"}},
		{"bad driver", map[string]string{"JWT_SECRET_KEY": "s", "DB_DRIVER": "mysql"}},
		{"bad port", map[string]string{"JWT_SECRET_KEY": "s", "DB_DRIVER": "sqlite", "PORT": "eighty"}},
		{"bad cost", map[string]string{"JWT_SECRET_KEY": "s", "DB_DRIVER": "sqlite", "BCRYPT_COST": "high"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadSqliteDefaultsURL(t *testing.T) {
	isolate(t)
	t.Setenv("JWT_SECRET_KEY", "s")
	t.Setenv("DB_DRIVER", "sqlite")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.URL != "revision.db" {
		t.Errorf("expected default sqlite file, got %q", cfg.Database.URL)
	}
}
