package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() err = %v, want nil", err)
	}

	def := New()
	if cfg.HTTPAddr != def.HTTPAddr || cfg.ShutdownTimeout != def.ShutdownTimeout || cfg.SessionTTL != def.SessionTTL {
		t.Fatalf("Load() = %+v, want defaults %+v", cfg, def)
	}
	if len(cfg.DeadlineLayouts) != len(def.DeadlineLayouts) {
		t.Fatalf("DeadlineLayouts = %v, want %v", cfg.DeadlineLayouts, def.DeadlineLayouts)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasklist.yaml")
	body := "http_addr: \":9090\"\nsession_ttl: 5m\nlog_format: json\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() err = %v, want nil", err)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Fatalf("HTTPAddr = %q, want :9090", cfg.HTTPAddr)
	}
	if cfg.SessionTTL != 5*time.Minute {
		t.Fatalf("SessionTTL = %v, want 5m", cfg.SessionTTL)
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("LogFormat = %q, want json", cfg.LogFormat)
	}
	// untouched keys keep defaults
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("ShutdownTimeout = %v, want 10s", cfg.ShutdownTimeout)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasklist.toml")
	if err := os.WriteFile(path, []byte("http_addr = \":9090\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TASKLIST_HTTP_ADDR", ":7070")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() err = %v, want nil", err)
	}
	if cfg.HTTPAddr != ":7070" {
		t.Fatalf("HTTPAddr = %q, want :7070", cfg.HTTPAddr)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load() err = nil, want error")
	}
}

func TestValidate(t *testing.T) {
	cfg := New()
	cfg.LogFormat = "xml"
	if err := cfg.Validate(); !errors.Is(err, ErrBadLogFormat) {
		t.Fatalf("Validate() err = %v, want %v", err, ErrBadLogFormat)
	}

	cfg = New()
	cfg.HTTPAddr = " "
	if err := cfg.Validate(); !errors.Is(err, ErrNoAddr) {
		t.Fatalf("Validate() err = %v, want %v", err, ErrNoAddr)
	}
}
