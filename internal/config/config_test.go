package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	// Create temp directory for test config
	tempDir := t.TempDir()

	// Override config path for testing
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	t.Run("LoadNonexistent", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		// Zero values mean built-in defaults apply
		if cfg.NginxPath != "" || cfg.OutputFile != "" || cfg.SkipReload {
			t.Errorf("expected empty config, got %+v", cfg)
		}
	})

	t.Run("SaveAndLoad", func(t *testing.T) {
		cfg := New()
		cfg.NginxPath = "/opt/nginx"
		cfg.OutputFile = "app.conf"
		cfg.SkipReload = true

		if err := cfg.Save(); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		// Verify file exists
		loadedPath := filepath.Join(tempDir, ".config", "proxysite", "config.yaml")
		if _, err := os.Stat(loadedPath); os.IsNotExist(err) {
			t.Error("config file was not created")
		}

		loaded, err := Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if loaded.NginxPath != "/opt/nginx" {
			t.Errorf("NginxPath = %s, want /opt/nginx", loaded.NginxPath)
		}
		if loaded.OutputFile != "app.conf" {
			t.Errorf("OutputFile = %s, want app.conf", loaded.OutputFile)
		}
		if !loaded.SkipReload {
			t.Error("SkipReload = false, want true")
		}
	})

	t.Run("LoadInvalidYAML", func(t *testing.T) {
		dir := filepath.Join(tempDir, ".config", "proxysite")
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create config dir: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("nginx_path: [broken"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if _, err := Load(); err == nil {
			t.Error("expected parse error for invalid YAML")
		}
	})
}
