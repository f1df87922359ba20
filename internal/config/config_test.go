package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"proctools/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if resolved != path {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if !cfg.Depot.Recursive || !cfg.Depot.RejectDuplicates {
		t.Fatalf("unexpected depot defaults: %+v", cfg.Depot)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if !cfg.Manifest.CacheEnabled {
		t.Fatal("expected manifest cache enabled by default")
	}
	if !filepath.IsAbs(cfg.Paths.LogDir) {
		t.Fatalf("expected expanded log dir, got %q", cfg.Paths.LogDir)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
product_dirs = ["` + dir + `/products", ""]
log_dir = "` + dir + `/logs"

[depot]
recursive = false
reject_duplicates = false

[manifest]
cache_enabled = false

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if len(cfg.Paths.ProductDirs) != 1 || cfg.Paths.ProductDirs[0] != filepath.Join(dir, "products") {
		t.Fatalf("unexpected product dirs: %v", cfg.Paths.ProductDirs)
	}
	if cfg.Depot.Recursive || cfg.Depot.RejectDuplicates {
		t.Fatalf("unexpected depot settings: %+v", cfg.Depot)
	}
	if cfg.Manifest.CacheEnabled {
		t.Fatal("expected cache disabled")
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected lowercased logging values, got %+v", cfg.Logging)
	}
}

func TestLoadRejectsInvalidLogging(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad format", "[logging]\nformat = \"yaml\"\n"},
		{"bad level", "[logging]\nlevel = \"verbose\"\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, _, _, err := config.Load(path); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[paths\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestProductDirEnvFallback(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PROCTOOLS_PRODUCT_DIR", dir)

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Paths.ProductDirs) != 1 || cfg.Paths.ProductDirs[0] != dir {
		t.Fatalf("expected env product dir, got %v", cfg.Paths.ProductDirs)
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Manifest.CachePath = filepath.Join(base, "cache", "manifest.db")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.LogDir, filepath.Dir(cfg.Manifest.CachePath)} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s: %v", dir, err)
		}
	}
}

func TestCreateSampleLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[paths]") {
		t.Fatal("sample config missing paths section")
	}
	if _, _, exists, err := config.Load(path); err != nil || !exists {
		t.Fatalf("sample config should load cleanly: exists=%v err=%v", exists, err)
	}
}

func TestExpandPathHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	expanded, err := config.ExpandPath("~/depot/products")
	if err != nil {
		t.Fatalf("ExpandPath failed: %v", err)
	}
	if expanded != filepath.Join(home, "depot", "products") {
		t.Fatalf("unexpected expansion %q", expanded)
	}
}
