package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/GarikMirzoyan/measurecolor/internal/constants"
	"github.com/GarikMirzoyan/measurecolor/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data := []byte(`
metrics:
  - key: coverage
    name: Coverage
    value_type: percent
    best_value: 100
    worst_value: 0
  - key: alert_status
    value_type: LEVEL
`)

	metrics, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, metrics, 2)

	assert.Equal(t, "coverage", metrics[0].Key)
	assert.Equal(t, constants.ValueTypePercent, metrics[0].ValueType)
	assert.Equal(t, 100.0, *metrics[0].BestValue)
	assert.Equal(t, 0.0, *metrics[0].WorstValue)

	assert.Equal(t, models.Metric{Key: "alert_status", Name: "alert_status", ValueType: constants.ValueTypeLevel}, metrics[1])
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{
			name:    "empty key",
			data:    "metrics:\n  - value_type: INT\n",
			wantErr: ErrEmptyKey,
		},
		{
			name:    "duplicate key",
			data:    "metrics:\n  - key: ncloc\n    value_type: INT\n  - key: ncloc\n    value_type: INT\n",
			wantErr: ErrDuplicateKey,
		},
		{
			name:    "unknown value type",
			data:    "metrics:\n  - key: ncloc\n    value_type: DISTRIB\n",
			wantErr: constants.ErrUnknownValueType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := Parse([]byte("metrics: [:"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.yaml")
	require.NoError(t, os.WriteFile(path, []byte("metrics:\n  - key: ncloc\n    value_type: INT\n"), 0o644))

	metrics, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, metrics, 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadDefaultCatalog(t *testing.T) {
	metrics, err := Load(filepath.Join("..", "..", "configs", "metrics.yaml"))
	require.NoError(t, err)

	keys := make(map[string]models.Metric, len(metrics))
	for _, m := range metrics {
		keys[m.Key] = m
	}
	for _, key := range []string{"coverage", "alert_status", "cpu_usage", "memory_usage", "disk_usage"} {
		assert.Contains(t, keys, key)
	}
	assert.True(t, keys["alert_status"].ValueType.IsQualitative())
}
