// Package config loads node configuration: a YAML file parsed with
// gosdk/conflux, defaulted so that a missing file at the conventional
// location is not fatal; an explicitly given path must load. The
// CLI-supplied host, port, and bootstrap address always take precedence
// over whatever a config file sets for them.
package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/anthanhphan/gosdk/conflux"
	"github.com/anthanhphan/gosdk/logger"
)

// Config holds node configuration: routing/membership parameters, the
// optional bootstrap directory, the debug surface, and logging.
type Config struct {
	Overlay   OverlayConfig   `json:"overlay" yaml:"overlay"`
	Directory DirectoryConfig `json:"directory" yaml:"directory"`
	Debug     DebugConfig     `json:"debug" yaml:"debug"`
	Logger    logger.Config   `json:"logger" yaml:"logger"`
}

// OverlayConfig carries the overlay's routing and membership parameters.
type OverlayConfig struct {
	B                uint          `json:"b" yaml:"b"`
	LeafSetHalfSize  int           `json:"leaf_set_half_size" yaml:"leaf_set_half_size"`
	RequestTimeout   time.Duration `json:"request_timeout" yaml:"request_timeout"`
	BootstrapAddress string        `json:"bootstrap_address" yaml:"bootstrap_address"`
}

// DirectoryConfig configures the optional Redis-backed bootstrap
// directory used when no bootstrap address is given on the CLI or in
// OverlayConfig.
type DirectoryConfig struct {
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// DebugConfig configures the read-only HTTP informational surface.
type DebugConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Port    int  `json:"port" yaml:"port"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() *Config {
	return &Config{
		Overlay: OverlayConfig{
			B:               3,
			LeafSetHalfSize: 8,
			RequestTimeout:  5 * time.Second,
		},
		Directory: DirectoryConfig{
			Addr: "127.0.0.1:6379",
		},
		Debug: DebugConfig{
			Port: 9000,
		},
		Logger: logger.Config{
			LogLevel:    logger.LevelInfo,
			LogEncoding: logger.EncodingJSON,
		},
	}
}

// Load loads configuration from path, or from a conventional
// environment-derived location if path is empty. When path is empty, a
// missing or unparsable file is not an error: Load falls back to
// defaults. When path is given, a file that fails to load is an error.
func Load(path string) (*Config, error) {
	configPath := path
	if configPath == "" {
		env := os.Getenv("ENV")
		if env == "" {
			env = "local"
		}
		configPath = filepath.Join("internal", "node", "config", env+".yaml")
	}

	cfg := DefaultConfig()

	parsedCfg, err := conflux.ParseConfig(configPath, cfg)
	if err != nil {
		log.Printf("Config file not found or failed to parse, using defaults if file not specified. Path: %s, Error: %v", configPath, err)
		if path != "" {
			return nil, err
		}
		return cfg, nil
	}

	return parsedCfg, nil
}
