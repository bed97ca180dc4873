package measures

import (
	"context"
	"errors"
	"strings"

	"github.com/GarikMirzoyan/measurecolor/internal/constants"
	"github.com/GarikMirzoyan/measurecolor/internal/models"
)

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks github.com/GarikMirzoyan/measurecolor/internal/measures MeasureStorage

type MeasureStorage interface {
	UpsertMetric(ctx context.Context, metric models.Metric) error
	GetMetric(ctx context.Context, key string) (models.Metric, error)
	GetMetrics(ctx context.Context) ([]models.Metric, error)

	Update(ctx context.Context, measure models.Measure) error
	UpdateBatch(ctx context.Context, measures []models.Measure) error
	Get(ctx context.Context, metricKey, component string) (models.Measure, error)
	GetAll(ctx context.Context) ([]models.Measure, error)
}

var (
	ErrMetricNotFound   = errors.New("metric not found")
	ErrMeasureNotFound  = errors.New("measure not found")
	ErrInvalidMetricKey = errors.New("metric key is required")
	ErrInvalidComponent = errors.New("component is required")
	ErrInvalidValueType = errors.New("invalid metric value type")
	ErrInvalidJSON      = errors.New("invalid JSON")
)

func validateMetric(metric models.Metric) error {
	if strings.TrimSpace(metric.Key) == "" {
		return ErrInvalidMetricKey
	}
	if _, err := constants.ParseValueType(string(metric.ValueType)); err != nil {
		return ErrInvalidValueType
	}
	return nil
}

func validateMeasure(measure models.Measure) error {
	if strings.TrimSpace(measure.Metric.Key) == "" {
		return ErrInvalidMetricKey
	}
	if strings.TrimSpace(measure.Component) == "" {
		return ErrInvalidComponent
	}
	return nil
}
