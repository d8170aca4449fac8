package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	for i, r := range c.Receivers {
		if r.Host == "" {
			errs = append(errs, fmt.Errorf("receivers[%d]: host is required", i))
		}
		if r.Port < 0 || r.Port > 65535 {
			errs = append(errs, fmt.Errorf("receivers[%d]: invalid port %d", i, r.Port))
		}
	}

	if err := c.Scan.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("scan: %w", err))
	}
	if err := c.Protocol.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("protocol: %w", err))
	}
	if err := c.Resolver.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("resolver: %w", err))
	}
	if err := c.TUI.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("tui: %w", err))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}

	return errors.Join(errs...)
}

// Validate checks ScanConfig for errors.
func (c *ScanConfig) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.ProbeTimeoutMS < 0 {
		return errors.New("probe_timeout_ms must be non-negative")
	}
	if c.Concurrency < 0 {
		return errors.New("concurrency must be non-negative")
	}
	if c.MaxHosts < 0 {
		return errors.New("max_hosts must be non-negative")
	}
	return nil
}

// Validate checks ProtocolConfig for errors.
func (c *ProtocolConfig) Validate() error {
	if c.ConnectTimeoutMS < 0 {
		return errors.New("connect_timeout_ms must be non-negative")
	}
	if c.ReadTimeoutMS < 0 {
		return errors.New("read_timeout_ms must be non-negative")
	}
	return nil
}

// Validate checks ResolverConfig for errors.
func (c *ResolverConfig) Validate() error {
	if c.ProviderURL != "" {
		if _, err := url.Parse(c.ProviderURL); err != nil {
			return fmt.Errorf("invalid provider_url: %w", err)
		}
	}
	return nil
}

// Validate checks TUIConfig for errors.
func (c *TUIConfig) Validate() error {
	if c.RefreshInterval < 0 {
		return errors.New("refresh_interval must be non-negative")
	}
	return nil
}

// Validate checks LogConfig for errors.
func (c *LogConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("invalid level %q", c.Level)
	}
}
