package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("agent", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(newFlagSet(), nil)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Address)
	assert.Equal(t, 10*time.Second, cfg.ReportInterval)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
	assert.Empty(t, cfg.Key)
	assert.NotEmpty(t, cfg.Component)
}

func TestParseFlags(t *testing.T) {
	cfg, err := Parse(newFlagSet(), []string{"-a", "https://dash:9443", "-r", "30", "-p", "5", "-k", "secret", "-c", "build-01"})
	require.NoError(t, err)

	assert.Equal(t, "https://dash:9443", cfg.Address)
	assert.Equal(t, 30*time.Second, cfg.ReportInterval)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)
	assert.Equal(t, "secret", cfg.Key)
	assert.Equal(t, "build-01", cfg.Component)
}

func TestParseEnvOverridesFlags(t *testing.T) {
	t.Setenv("ADDRESS", "collector:8080")
	t.Setenv("REPORT_INTERVAL", "7")
	t.Setenv("POLL_INTERVAL", "1")
	t.Setenv("KEY", "env-key")
	t.Setenv("COMPONENT", "ci-runner")

	cfg, err := Parse(newFlagSet(), []string{"-a", "ignored:1", "-c", "ignored"})
	require.NoError(t, err)

	assert.Equal(t, "http://collector:8080", cfg.Address)
	assert.Equal(t, 7*time.Second, cfg.ReportInterval)
	assert.Equal(t, time.Second, cfg.PollInterval)
	assert.Equal(t, "env-key", cfg.Key)
	assert.Equal(t, "ci-runner", cfg.Component)
}

func TestParseInvalidFlag(t *testing.T) {
	_, err := Parse(newFlagSet(), []string{"-r", "soon"})
	assert.Error(t, err)
}
