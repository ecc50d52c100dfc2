package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/formbridge/internal/offline"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "client.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
endpoint {
  url       = "https://org.example.com"
  namespace = "acme"
}

mode = "disconnected"

offline {
  entities = ["account", "contact"]
}
`)

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "https://org.example.com", cfg.EndpointURL)
	assert.Equal(t, "acme", cfg.Namespace)
	assert.Equal(t, offline.ModeDisconnected, cfg.Mode)
	assert.Equal(t, []string{"account", "contact"}, cfg.OfflineEntities)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
endpoint {
  url = "https://org.example.com"
}
`)

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "mscrm", cfg.Namespace)
	assert.Equal(t, offline.ModeConnected, cfg.Mode)
	assert.Empty(t, cfg.OfflineEntities)
}

func TestLoadRejectsMissingEndpoint(t *testing.T) {
	path := writeConfig(t, `mode = "connected"`)
	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoint")
}

func TestLoadRejectsInvalidMode(t *testing.T) {
	path := writeConfig(t, `
endpoint {
  url = "https://org.example.com"
}

mode = "airplane"
`)
	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "airplane")
}

func TestLoadRejectsInvalidHCL(t *testing.T) {
	path := writeConfig(t, `endpoint {`)
	_, err := Load(context.Background(), path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.hcl"))
	require.Error(t, err)
}

func TestCheckerUsesConfiguredEntities(t *testing.T) {
	cfg := &Config{OfflineEntities: []string{"account"}}
	checker := cfg.Checker()

	enabled, err := checker.OfflineEnabled(context.Background(), "account")
	require.NoError(t, err)
	assert.True(t, enabled)

	enabled, err = checker.OfflineEnabled(context.Background(), "invoice")
	require.NoError(t, err)
	assert.False(t, enabled)
}
