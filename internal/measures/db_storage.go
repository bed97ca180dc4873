package measures

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/GarikMirzoyan/measurecolor/internal/models"
	"github.com/GarikMirzoyan/measurecolor/internal/repositories"
	"github.com/GarikMirzoyan/measurecolor/internal/retry"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBStorage struct {
	measureRepository *repositories.MeasureRepository
}

func NewDBStorage(measureRepository *repositories.MeasureRepository) *DBStorage {
	return &DBStorage{
		measureRepository: measureRepository,
	}
}

func (ds *DBStorage) UpsertMetric(ctx context.Context, metric models.Metric) error {
	if err := validateMetric(metric); err != nil {
		return err
	}
	return retry.WithBackoff(ctx, func() error {
		return ds.measureRepository.UpsertMetric(ctx, metric)
	})
}

func (ds *DBStorage) GetMetric(ctx context.Context, key string) (models.Metric, error) {
	var metric models.Metric
	err := retry.WithBackoff(ctx, func() error {
		var err error
		metric, err = ds.measureRepository.GetMetric(ctx, key)
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Metric{}, ErrMetricNotFound
	}
	return metric, err
}

func (ds *DBStorage) GetMetrics(ctx context.Context) ([]models.Metric, error) {
	var metrics []models.Metric
	err := retry.WithBackoff(ctx, func() error {
		var err error
		metrics, err = ds.measureRepository.GetMetrics(ctx)
		return err
	})
	return metrics, err
}

func (ds *DBStorage) Update(ctx context.Context, measure models.Measure) error {
	if err := validateMeasure(measure); err != nil {
		return err
	}
	err := retry.WithBackoff(ctx, func() error {
		return ds.measureRepository.UpsertMeasure(ctx, measure)
	})
	return translateWriteError(err)
}

func (ds *DBStorage) UpdateBatch(ctx context.Context, measures []models.Measure) error {
	if len(measures) == 0 {
		return nil
	}
	for _, m := range measures {
		if err := validateMeasure(m); err != nil {
			return err
		}
	}
	err := retry.WithBackoff(ctx, func() error {
		return ds.measureRepository.BatchUpsertMeasures(ctx, measures)
	})
	return translateWriteError(err)
}

func (ds *DBStorage) Get(ctx context.Context, metricKey, component string) (models.Measure, error) {
	var measure models.Measure
	err := retry.WithBackoff(ctx, func() error {
		var err error
		measure, err = ds.measureRepository.GetMeasure(ctx, metricKey, component)
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Measure{}, ErrMeasureNotFound
	}
	return measure, err
}

func (ds *DBStorage) GetAll(ctx context.Context) ([]models.Measure, error) {
	var measures []models.Measure
	err := retry.WithBackoff(ctx, func() error {
		var err error
		measures, err = ds.measureRepository.GetAllMeasures(ctx)
		return err
	})
	return measures, err
}

// Нарушение внешнего ключа означает неизвестную метрику
func translateWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return fmt.Errorf("%s: %w", pgErr.Detail, ErrMetricNotFound)
	}
	return err
}
