package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.AdmissionLimit != 60 || cfg.AdmissionWindowSeconds != 60 {
		t.Errorf("admission defaults = %d/%ds, want 60/60s",
			cfg.AdmissionLimit, cfg.AdmissionWindowSeconds)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mocklet.yaml")
	data := []byte(`
addr: ":9090"
signingKey: test-key
admissionLimit: 10
logging:
  level: debug
  format: json
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":9090" || cfg.SigningKey != "test-key" || cfg.AdmissionLimit != 10 {
		t.Errorf("loaded config = %+v", cfg)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging config = %+v", cfg.Logging)
	}
	// Unset fields keep defaults.
	if cfg.AdmissionWindowSeconds != 60 {
		t.Errorf("AdmissionWindowSeconds = %d, want default 60", cfg.AdmissionWindowSeconds)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("error = %v, want ErrFileNotFound", err)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrEmptyFile) {
		t.Fatalf("error = %v, want ErrEmptyFile", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("addr: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrInvalidYAML) {
		t.Fatalf("error = %v, want ErrInvalidYAML", err)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("MOCKLET_ADDR", ":7070")
	t.Setenv("MOCKLET_SIGNING_KEY", "env-key")
	t.Setenv("MOCKLET_ADMISSION_LIMIT", "5")
	t.Setenv("MOCKLET_LOG_LEVEL", "warn")

	cfg := Default()
	cfg.ApplyEnv()

	if cfg.Addr != ":7070" || cfg.SigningKey != "env-key" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
	if cfg.AdmissionLimit != 5 {
		t.Errorf("AdmissionLimit = %d, want 5", cfg.AdmissionLimit)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
}

func TestApplyEnvIgnoresBadNumbers(t *testing.T) {
	t.Setenv("MOCKLET_ADMISSION_LIMIT", "not-a-number")
	cfg := Default()
	cfg.ApplyEnv()
	if cfg.AdmissionLimit != 60 {
		t.Errorf("AdmissionLimit = %d, want default 60", cfg.AdmissionLimit)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty addr", func(c *Config) { c.Addr = "" }},
		{"empty signing key", func(c *Config) { c.SigningKey = "" }},
		{"zero limit", func(c *Config) { c.AdmissionLimit = 0 }},
		{"zero window", func(c *Config) { c.AdmissionWindowSeconds = 0 }},
		{"zero queue", func(c *Config) { c.LogQueueSize = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}
