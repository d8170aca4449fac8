package config

import "github.com/airwave-cli/airwave/internal/core"

// Config is the root configuration structure. The receiver list is owned
// here - the protocol core only produces and consumes Receiver values.
type Config struct {
	Receivers []core.Receiver `toml:"receivers"`
	Scan      ScanConfig      `toml:"scan"`
	Protocol  ProtocolConfig  `toml:"protocol"`
	Resolver  ResolverConfig  `toml:"resolver"`
	TUI       TUIConfig       `toml:"tui"`
	Log       LogConfig       `toml:"log"`
}

// ScanConfig holds subnet discovery settings.
type ScanConfig struct {
	Port           int `toml:"port"`
	ProbeTimeoutMS int `toml:"probe_timeout_ms"`
	Concurrency    int `toml:"concurrency"`
	MaxHosts       int `toml:"max_hosts"`
	BudgetSeconds  int `toml:"budget_seconds"`
}

// ProtocolConfig holds control protocol transport settings.
type ProtocolConfig struct {
	ConnectTimeoutMS int `toml:"connect_timeout_ms"`
	ReadTimeoutMS    int `toml:"read_timeout_ms"`
}

// ResolverConfig holds stream resolution settings.
type ResolverConfig struct {
	ProviderURL string `toml:"provider_url"`
	Service     string `toml:"service"`
	Formats     string `toml:"formats"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	RefreshInterval int `toml:"refresh_interval"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// FindReceiver looks up a configured receiver by label, host, or
// host:port.
func (c *Config) FindReceiver(identifier string) (core.Receiver, bool) {
	for _, r := range c.Receivers {
		if r.Matches(identifier) {
			return r, true
		}
	}
	return core.Receiver{}, false
}

// AddReceiver registers a receiver, replacing any existing entry with the
// same address.
func (c *Config) AddReceiver(r core.Receiver) {
	for i, existing := range c.Receivers {
		if existing.Address() == r.Address() {
			c.Receivers[i] = r
			return
		}
	}
	c.Receivers = append(c.Receivers, r)
}

// RemoveReceiver drops the receiver matching the identifier. It returns
// false if nothing matched.
func (c *Config) RemoveReceiver(identifier string) bool {
	for i, r := range c.Receivers {
		if r.Matches(identifier) {
			c.Receivers = append(c.Receivers[:i], c.Receivers[i+1:]...)
			return true
		}
	}
	return false
}
