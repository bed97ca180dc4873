// Package catalog loads metric definitions from a YAML file.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/GarikMirzoyan/measurecolor/internal/constants"
	"github.com/GarikMirzoyan/measurecolor/internal/models"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyKey     = errors.New("metric key is empty")
	ErrDuplicateKey = errors.New("duplicate metric key")
)

type metricEntry struct {
	Key        string   `yaml:"key"`
	Name       string   `yaml:"name"`
	ValueType  string   `yaml:"value_type"`
	BestValue  *float64 `yaml:"best_value"`
	WorstValue *float64 `yaml:"worst_value"`
}

type file struct {
	Metrics []metricEntry `yaml:"metrics"`
}

func Load(path string) ([]models.Metric, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать каталог метрик: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) ([]models.Metric, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("ошибка разбора каталога метрик: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Metrics))
	metrics := make([]models.Metric, 0, len(f.Metrics))
	for i, entry := range f.Metrics {
		key := strings.TrimSpace(entry.Key)
		if key == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyKey)
		}
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("%s: %w", key, ErrDuplicateKey)
		}
		seen[key] = struct{}{}

		vt, err := constants.ParseValueType(entry.ValueType)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}

		name := entry.Name
		if name == "" {
			name = key
		}

		metrics = append(metrics, models.Metric{
			Key:        key,
			Name:       name,
			ValueType:  vt,
			BestValue:  entry.BestValue,
			WorstValue: entry.WorstValue,
		})
	}
	return metrics, nil
}
