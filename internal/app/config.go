package app

import "fmt"

// Config holds everything the CLI decided the run should do.
type Config struct {
	ConfigPath string
	Operation  string
	Parameters []string
	AsFunction bool
	Bound      string
	LogFormat  string
	LogLevel   string
}

// NewConfig validates the raw values and fills defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Operation == "" {
		return nil, fmt.Errorf("an operation name is required")
	}
	if cfg.ConfigPath == "" {
		cfg.ConfigPath = "client.hcl"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return &cfg, nil
}
