package config

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Scan: ScanConfig{
			Port:           8080,
			ProbeTimeoutMS: 1500,
			Concurrency:    32,
			MaxHosts:       254,
			BudgetSeconds:  30,
		},
		Protocol: ProtocolConfig{
			ConnectTimeoutMS: 2000,
			ReadTimeoutMS:    5000,
		},
		Resolver: ResolverConfig{
			ProviderURL: "http://radio.vtuner.com/dynamOD.asp",
			Service:     "vTuner",
			Formats:     "mp3,wma,aac",
		},
		TUI: TUIConfig{
			RefreshInterval: 1000,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ApplyDefaults fills in zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	d := Default()

	// Scan
	if c.Scan.Port == 0 {
		c.Scan.Port = d.Scan.Port
	}
	if c.Scan.ProbeTimeoutMS == 0 {
		c.Scan.ProbeTimeoutMS = d.Scan.ProbeTimeoutMS
	}
	if c.Scan.Concurrency == 0 {
		c.Scan.Concurrency = d.Scan.Concurrency
	}
	if c.Scan.MaxHosts == 0 {
		c.Scan.MaxHosts = d.Scan.MaxHosts
	}
	if c.Scan.BudgetSeconds == 0 {
		c.Scan.BudgetSeconds = d.Scan.BudgetSeconds
	}

	// Protocol
	if c.Protocol.ConnectTimeoutMS == 0 {
		c.Protocol.ConnectTimeoutMS = d.Protocol.ConnectTimeoutMS
	}
	if c.Protocol.ReadTimeoutMS == 0 {
		c.Protocol.ReadTimeoutMS = d.Protocol.ReadTimeoutMS
	}

	// Resolver
	if c.Resolver.ProviderURL == "" {
		c.Resolver.ProviderURL = d.Resolver.ProviderURL
	}
	if c.Resolver.Service == "" {
		c.Resolver.Service = d.Resolver.Service
	}
	if c.Resolver.Formats == "" {
		c.Resolver.Formats = d.Resolver.Formats
	}

	// TUI
	if c.TUI.RefreshInterval == 0 {
		c.TUI.RefreshInterval = d.TUI.RefreshInterval
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}
