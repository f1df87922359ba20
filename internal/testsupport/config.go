package testsupport

import (
	"path/filepath"
	"testing"

	"proctools/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per
// test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.ProductDirs = []string{filepath.Join(base, "products")}
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Manifest.CachePath = filepath.Join(base, "manifest.db")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}
