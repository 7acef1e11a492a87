package app

import "errors"

// Defaults and environment variable names for one render run.
const (
	// DefaultOutputPath is where the rendered map lands, relative to the
	// working directory.
	DefaultOutputPath = "map_detailed.png"
	// DefaultCacheDir holds downloaded API responses; it is emptied after
	// each run unless EnvKeepCache is set.
	DefaultCacheDir = "cache"

	// EnvBackground overrides the background color with a hex string.
	EnvBackground = "PYMAP_BG"
	// EnvKeepCache skips cache cleanup when set to the literal "1".
	EnvKeepCache = "PYMAP_KEEP_CACHE"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Place      string
	OutputPath string
	CacheDir   string
	StylePath  string

	LogFormat string
	LogLevel  string

	// Service endpoint overrides, mainly for tests.
	NominatimURL string
	OverpassURL  string
}

// NewConfig validates the config and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Place == "" {
		return nil, errors.New("Place is a required configuration field and cannot be empty")
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutputPath
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = DefaultCacheDir
	}
	return &cfg, nil
}
