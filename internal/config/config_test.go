package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	cfg := &Config{
		DefaultSession: "work",
		Timezone:       "Africa/Lagos",
		Store:          Store{Name: "Quicksell", Phone: "+2348000000000"},
		Generator:      Generator{Model: "test-model"},
	}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.DefaultSession != "work" {
		t.Errorf("DefaultSession = %q, want %q", loaded.DefaultSession, "work")
	}
	if loaded.Store.Name != "Quicksell" {
		t.Errorf("Store.Name = %q, want Quicksell", loaded.Store.Name)
	}
	if loaded.Generator.Model != "test-model" {
		t.Errorf("Generator.Model = %q, want test-model", loaded.Generator.Model)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("/nonexistent/config.toml")
	if err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoadAppliesGeneratorDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")
	if err := Save(path, &Config{DefaultSession: "main"}); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Generator.BaseURL != DefaultGeneratorBaseURL {
		t.Errorf("BaseURL = %q, want default", loaded.Generator.BaseURL)
	}
	if loaded.Generator.Timeout() != time.Duration(DefaultTimeoutSeconds)*time.Second {
		t.Errorf("Timeout = %v, want %ds", loaded.Generator.Timeout(), DefaultTimeoutSeconds)
	}
}

func TestLocation(t *testing.T) {
	cfg := &Config{Timezone: "UTC"}
	if got := cfg.Location(); got != time.UTC {
		t.Errorf("Location() = %v, want UTC", got)
	}

	cfg = &Config{Timezone: "not-a-zone"}
	if got := cfg.Location(); got != time.Local {
		t.Errorf("Location() = %v, want local fallback", got)
	}

	var nilCfg *Config
	if got := nilCfg.Location(); got != time.Local {
		t.Errorf("nil Location() = %v, want local", got)
	}
}

func TestLoadEnv(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ".env")
	if err := os.WriteFile(path, []byte("MARTBOT_TEST_KEY=abc123\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MARTBOT_TEST_KEY", "")
	_ = os.Unsetenv("MARTBOT_TEST_KEY")

	if err := LoadEnv(path); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if got := os.Getenv("MARTBOT_TEST_KEY"); got != "abc123" {
		t.Errorf("MARTBOT_TEST_KEY = %q, want abc123", got)
	}
}

func TestLoadEnvMissingIsNoop(t *testing.T) {
	if err := LoadEnv("/nonexistent/.env"); err != nil {
		t.Errorf("LoadEnv() on missing file error = %v", err)
	}
}

func TestSavePermissions(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	if err := Save(path, &Config{DefaultSession: "main"}); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	perm := info.Mode().Perm()
	if perm != 0600 {
		t.Errorf("file permission = %o, want 0600", perm)
	}
}
