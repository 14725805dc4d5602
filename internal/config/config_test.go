package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TURSO_DATABASE_URL", "TURSO_AUTH_TOKEN", "DEV_MODE", "REGIMEN_ADDR"} {
		t.Setenv(k, "")
	}
	t.Setenv("HOME", t.TempDir())
	// godotenv reads .env from the working directory.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestLoadConfigDefaultsWhenFileMissing(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadConfigFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !strings.HasPrefix(cfg.DB.ConnectionString, "file:") || !strings.HasSuffix(cfg.DB.ConnectionString, "regimen.db") {
		t.Fatalf("unexpected default connection string %q", cfg.DB.ConnectionString)
	}
	if cfg.Server.Addr != ":8080" || cfg.App.Timezone != "Local" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadConfigFromFileAndEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[database]
connection_string = "file:/tmp/custom.db"

[server]
addr = ":9090"

[app]
timezone = "America/Sao_Paulo"
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DB.ConnectionString != "file:/tmp/custom.db" || cfg.Server.Addr != ":9090" || cfg.App.Timezone != "America/Sao_Paulo" {
		t.Fatalf("config file values not applied: %+v", cfg)
	}

	t.Setenv("TURSO_DATABASE_URL", "libsql://regimen.turso.io")
	t.Setenv("TURSO_AUTH_TOKEN", "secret")
	cfg, err = LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if got := cfg.DB.DSN(); got != "libsql://regimen.turso.io?authToken=secret" {
		t.Fatalf("unexpected remote DSN %q", got)
	}

	t.Setenv("DEV_MODE", "true")
	cfg, err = LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !strings.HasPrefix(cfg.DB.ConnectionString, "file:./local.db") {
		t.Fatalf("DEV_MODE should force the local database, got %q", cfg.DB.ConnectionString)
	}
	if cfg.DB.DSN() != cfg.DB.ConnectionString {
		t.Fatalf("local DSN should not carry the auth token")
	}
}

func TestLoadConfigRejectsBadTOML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[database\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfigFrom(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
