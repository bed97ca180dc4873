package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/GarikMirzoyan/measurecolor/internal/constants"
	"github.com/GarikMirzoyan/measurecolor/internal/database"
	"github.com/GarikMirzoyan/measurecolor/internal/models"
	"github.com/google/uuid"
)

type MeasureRepository struct {
	DBConn database.DBConn
}

func NewMeasureRepository(DBConn database.DBConn) *MeasureRepository {
	return &MeasureRepository{DBConn: DBConn}
}

// scanner - общий интерфейс для *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func (mr *MeasureRepository) UpsertMetric(ctx context.Context, metric models.Metric) error {
	_, err := mr.DBConn.Exec(ctx, queryUpsertMetric,
		metric.Key, metric.Name, string(metric.ValueType),
		nullableFloat(metric.BestValue), nullableFloat(metric.WorstValue))
	return err
}

// GetMetric returns sql.ErrNoRows when the metric is unknown.
func (mr *MeasureRepository) GetMetric(ctx context.Context, key string) (models.Metric, error) {
	return scanMetric(mr.DBConn.QueryRow(ctx, querySelectMetric, key))
}

func (mr *MeasureRepository) GetMetrics(ctx context.Context) ([]models.Metric, error) {
	rows, err := mr.DBConn.Query(ctx, querySelectMetrics)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var metrics []models.Metric
	for rows.Next() {
		metric, err := scanMetric(rows)
		if err != nil {
			return nil, err
		}
		metrics = append(metrics, metric)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return metrics, nil
}

func (mr *MeasureRepository) UpsertMeasure(ctx context.Context, measure models.Measure) error {
	_, err := mr.DBConn.Exec(ctx, queryUpsertMeasure, measureArgs(measure)...)
	return err
}

func (mr *MeasureRepository) BatchUpsertMeasures(ctx context.Context, measures []models.Measure) error {
	tx, err := mr.DBConn.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, m := range measures {
		if _, err := tx.ExecContext(ctx, queryUpsertMeasure, measureArgs(m)...); err != nil {
			return fmt.Errorf("upsert measure %s: %w", m.Key(), err)
		}
	}

	return tx.Commit()
}

// GetMeasure returns sql.ErrNoRows when the measure is unknown.
func (mr *MeasureRepository) GetMeasure(ctx context.Context, metricKey, component string) (models.Measure, error) {
	return scanMeasure(mr.DBConn.QueryRow(ctx, querySelectMeasure, metricKey, component))
}

func (mr *MeasureRepository) GetAllMeasures(ctx context.Context) ([]models.Measure, error) {
	rows, err := mr.DBConn.Query(ctx, querySelectAllMeasures)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var measures []models.Measure
	for rows.Next() {
		measure, err := scanMeasure(rows)
		if err != nil {
			return nil, err
		}
		measures = append(measures, measure)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return measures, nil
}

func measureArgs(m models.Measure) []any {
	updatedAt := m.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	args := []any{uuid.New(), m.Metric.Key, m.Component, nullableFloat(m.Value), m.TextValue, m.AlertStatus}
	for _, v := range m.Variations {
		args = append(args, nullableFloat(v))
	}
	return append(args, updatedAt)
}

func scanMetric(row scanner) (models.Metric, error) {
	var (
		metric      models.Metric
		valueType   string
		best, worst sql.NullFloat64
	)

	if err := row.Scan(&metric.Key, &metric.Name, &valueType, &best, &worst); err != nil {
		return models.Metric{}, err
	}

	metric.ValueType = constants.ValueType(valueType)
	metric.BestValue = floatPtr(best)
	metric.WorstValue = floatPtr(worst)
	return metric, nil
}

func scanMeasure(row scanner) (models.Measure, error) {
	var (
		m           models.Measure
		valueType   string
		best, worst sql.NullFloat64
		value       sql.NullFloat64
		variations  [models.PeriodCount]sql.NullFloat64
	)

	dest := []any{
		&m.Metric.Key, &m.Metric.Name, &valueType, &best, &worst,
		&m.Component, &value, &m.TextValue, &m.AlertStatus,
	}
	for i := range variations {
		dest = append(dest, &variations[i])
	}
	dest = append(dest, &m.UpdatedAt)

	if err := row.Scan(dest...); err != nil {
		return models.Measure{}, err
	}

	m.Metric.ValueType = constants.ValueType(valueType)
	m.Metric.BestValue = floatPtr(best)
	m.Metric.WorstValue = floatPtr(worst)
	m.Value = floatPtr(value)
	for i, v := range variations {
		m.Variations[i] = floatPtr(v)
	}
	return m, nil
}

func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}
