package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeManifest(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if len(c.Paths.ProductDirs) == 0 {
		if value, ok := os.LookupEnv("PROCTOOLS_PRODUCT_DIR"); ok && strings.TrimSpace(value) != "" {
			c.Paths.ProductDirs = []string{value}
		}
	}
	expanded := make([]string, 0, len(c.Paths.ProductDirs))
	for _, dir := range c.Paths.ProductDirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		resolved, err := expandPath(dir)
		if err != nil {
			return fmt.Errorf("paths.product_dirs: %w", err)
		}
		expanded = append(expanded, resolved)
	}
	c.Paths.ProductDirs = expanded

	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeManifest() error {
	if strings.TrimSpace(c.Manifest.CachePath) == "" {
		c.Manifest.CachePath = defaultManifestCachePath
	}
	resolved, err := expandPath(c.Manifest.CachePath)
	if err != nil {
		return fmt.Errorf("manifest.cache_path: %w", err)
	}
	c.Manifest.CachePath = resolved
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
