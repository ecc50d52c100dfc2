package config

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/formbridge/internal/ctxlog"
	"github.com/vk/formbridge/internal/offline"
	"github.com/vk/formbridge/internal/wiretype"
)

// Config is the validated client configuration.
type Config struct {
	EndpointURL     string
	Namespace       string
	Mode            offline.Mode
	OfflineEntities []string
}

// fileSchema mirrors the HCL layout of a client configuration file.
type fileSchema struct {
	Mode     string         `hcl:"mode,optional"`
	Endpoint *endpointBlock `hcl:"endpoint,block"`
	Offline  *offlineBlock  `hcl:"offline,block"`
}

type endpointBlock struct {
	URL       string `hcl:"url"`
	Namespace string `hcl:"namespace,optional"`
}

type offlineBlock struct {
	Entities []string `hcl:"entities,optional"`
}

// Load parses and validates the client configuration file at path.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding client configuration file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %s", path, diags.Error())
	}

	var raw fileSchema
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %s", path, diags.Error())
	}

	cfg, err := fromSchema(&raw)
	if err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	logger.Debug("Client configuration loaded.", "endpoint", cfg.EndpointURL, "mode", string(cfg.Mode), "offline_entities", len(cfg.OfflineEntities))
	return cfg, nil
}

func fromSchema(raw *fileSchema) (*Config, error) {
	if raw.Endpoint == nil || raw.Endpoint.URL == "" {
		return nil, fmt.Errorf("an endpoint block with a url is required")
	}

	cfg := &Config{
		EndpointURL: raw.Endpoint.URL,
		Namespace:   raw.Endpoint.Namespace,
		Mode:        offline.ModeConnected,
	}
	if cfg.Namespace == "" {
		cfg.Namespace = wiretype.DefaultNamespace
	}

	switch raw.Mode {
	case "", string(offline.ModeConnected):
		// connected is the default
	case string(offline.ModeDisconnected):
		cfg.Mode = offline.ModeDisconnected
	default:
		return nil, fmt.Errorf("invalid mode %q: must be %q or %q", raw.Mode, offline.ModeConnected, offline.ModeDisconnected)
	}

	if raw.Offline != nil {
		cfg.OfflineEntities = raw.Offline.Entities
	}
	return cfg, nil
}

// Checker builds the offline availability check backed by the configured
// entity list.
func (c *Config) Checker() offline.Checker {
	return offline.NewStaticChecker(c.OfflineEntities)
}
