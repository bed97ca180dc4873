package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(flag.NewFlagSet("server", flag.ContinueOnError), nil)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Address)
	assert.Equal(t, 300*time.Second, cfg.StoreInterval)
	assert.True(t, cfg.Restore)
	assert.Empty(t, cfg.DBConnectionString)
	assert.Equal(t, "configs/metrics.yaml", cfg.CatalogPath)
	assert.Zero(t, cfg.RateLimit)
}

func TestParseFlags(t *testing.T) {
	args := []string{"-a", ":9090", "-i", "0", "-r=false", "-k", "secret", "-l", "2.5"}

	cfg, err := Parse(flag.NewFlagSet("server", flag.ContinueOnError), args)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Address)
	assert.Zero(t, cfg.StoreInterval)
	assert.False(t, cfg.Restore)
	assert.Equal(t, "secret", cfg.Key)
	assert.Equal(t, 2.5, cfg.RateLimit)
}

func TestParseEnvOverridesFlags(t *testing.T) {
	t.Setenv("ADDRESS", "0.0.0.0:8181")
	t.Setenv("STORE_INTERVAL", "15")
	t.Setenv("DATABASE_DSN", "postgres://localhost/measures")
	t.Setenv("RESTORE", "false")
	t.Setenv("METRICS_CATALOG", "/etc/catalog.yaml")
	t.Setenv("RATE_LIMIT", "10")

	cfg, err := Parse(flag.NewFlagSet("server", flag.ContinueOnError), []string{"-a", ":9090"})
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8181", cfg.Address)
	assert.Equal(t, 15*time.Second, cfg.StoreInterval)
	assert.Equal(t, "postgres://localhost/measures", cfg.DBConnectionString)
	assert.False(t, cfg.Restore)
	assert.Equal(t, "/etc/catalog.yaml", cfg.CatalogPath)
	assert.Equal(t, 10.0, cfg.RateLimit)
}

func TestParseInvalidFlag(t *testing.T) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	_, err := Parse(fs, []string{"-i", "soon"})
	assert.Error(t, err)
}
