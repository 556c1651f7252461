package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), false)
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if cfg.Storage.Path != DefaultStorePath {
			t.Errorf("expected default store path %q, got %q", DefaultStorePath, cfg.Storage.Path)
		}
		if cfg.Log.Level != "info" || cfg.Log.Format != "console" {
			t.Errorf("expected info/console log defaults, got %s/%s", cfg.Log.Level, cfg.Log.Format)
		}
	})

	t.Run("yaml values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		yaml := "storage:\n  path: /tmp/records.json\nlog:\n  level: debug\n  format: json\n"
		if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}

		cfg, err := LoadConfig(path, true)
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if cfg.Storage.Path != "/tmp/records.json" {
			t.Errorf("expected overridden store path, got %q", cfg.Storage.Path)
		}
		if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
			t.Errorf("expected debug/json, got %s/%s", cfg.Log.Level, cfg.Log.Format)
		}
		if !cfg.Runtime.Dev {
			t.Error("expected dev mode carried into runtime config")
		}
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("storage: ["), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if _, err := LoadConfig(path, false); err == nil {
			t.Fatal("expected parse error")
		}
	})
}
