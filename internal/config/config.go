package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Load reads configuration from standard locations with environment
// overrides. Search order: ~/.airwaverc, $XDG_CONFIG_HOME/airwave/config.toml,
// ~/.config/airwave/config.toml
func Load() (*Config, error) {
	cfg := &Config{}

	// Try loading from file
	path := findConfigFile()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	// Apply defaults, then environment variable overrides
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFrom reads configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// Save writes the configuration to the given path, creating parent
// directories as needed. An empty path selects the default location.
func (c *Config) Save(path string) error {
	if path == "" {
		path = DefaultPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	encoder := toml.NewEncoder(f)
	encoder.Indent = "  "
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// DefaultPath returns the preferred config file location: an existing
// file if one is found, otherwise ~/.config/airwave/config.toml.
func DefaultPath() string {
	if path := findConfigFile(); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	return filepath.Join(xdgConfig, "airwave", "config.toml")
}

// findConfigFile returns the first existing config file path.
func findConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	paths := []string{
		filepath.Join(home, ".airwaverc"),
	}

	// XDG_CONFIG_HOME or default
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	paths = append(paths, filepath.Join(xdgConfig, "airwave", "config.toml"))

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	// Scan
	if v := os.Getenv("AIRWAVE_SCAN_PORT"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Scan.Port = i
		}
	}
	if v := os.Getenv("AIRWAVE_SCAN_PROBE_TIMEOUT"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Scan.ProbeTimeoutMS = i
		}
	}
	if v := os.Getenv("AIRWAVE_SCAN_CONCURRENCY"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Scan.Concurrency = i
		}
	}

	// Resolver
	if v := os.Getenv("AIRWAVE_PROVIDER_URL"); v != "" {
		cfg.Resolver.ProviderURL = v
	}
	if v := os.Getenv("AIRWAVE_PROVIDER_SERVICE"); v != "" {
		cfg.Resolver.Service = v
	}

	// TUI
	if v := os.Getenv("AIRWAVE_TUI_REFRESH_INTERVAL"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.TUI.RefreshInterval = i
		}
	}

	// Log
	if v := os.Getenv("AIRWAVE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("AIRWAVE_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}
