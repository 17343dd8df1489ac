package config

import (
	"os"
	"path/filepath"
	"testing"
)

var keys = []string{
	"ADDR", "TLS_CERT", "TLS_KEY", "DATABASE_URL", "TOKEN_KEY",
	"ADMIN_LOGIN", "ADMIN_PASSWORD_HASH", "RATE_LIMIT", "RATE_BURST",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":8080" || cfg.AdminLogin != "admin" || cfg.RateLimit != 5 || cfg.RateBurst != 10 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.TLS() {
		t.Fatal("TLS enabled without certificates")
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	data := "ADDR=:9000\nTOKEN_KEY=abc\nRATE_LIMIT=2.5\nRATE_BURST=4\nDATABASE_URL=postgres://x@localhost/ccs\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":9000" || cfg.TokenKey != "abc" || cfg.RateLimit != 2.5 || cfg.RateBurst != 4 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.DatabaseURL != "postgres://x@localhost/ccs" {
		t.Fatalf("DatabaseURL = %q", cfg.DatabaseURL)
	}
}

func TestLoadEnvWins(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("ADDR=:9000\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ADDR", ":7000")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":7000" {
		t.Fatalf("Addr = %q, want :7000", cfg.Addr)
	}
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]string{
		"RATE_LIMIT": "fast",
		"RATE_BURST": "-1",
		"TLS_CERT":   "server.crt",
	}
	for k, v := range cases {
		clearEnv(t)
		t.Setenv(k, v)
		if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
			t.Errorf("%s=%s: expected error", k, v)
		}
	}
}
