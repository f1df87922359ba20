package config

const (
	defaultLogDir            = "~/.local/share/proctools/logs"
	defaultManifestCachePath = "~/.cache/proctools/manifest.db"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns the repository default configuration. Paths are in their
// unexpanded form; Load normalizes them.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Depot: Depot{
			Recursive:        true,
			RejectDuplicates: true,
		},
		Manifest: Manifest{
			CacheEnabled: true,
			CachePath:    defaultManifestCachePath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
