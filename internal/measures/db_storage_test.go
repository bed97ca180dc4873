package measures

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/GarikMirzoyan/measurecolor/internal/database"
	"github.com/GarikMirzoyan/measurecolor/internal/models"
	"github.com/GarikMirzoyan/measurecolor/internal/repositories"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDBStorage(t *testing.T) (*DBStorage, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := repositories.NewMeasureRepository(&database.DB{Conn: db})
	return NewDBStorage(repo), mock
}

func TestDBStorageGetMetricNotFound(t *testing.T) {
	ds, mock := newDBStorage(t)

	mock.ExpectQuery("FROM metrics WHERE key").
		WithArgs("unknown").
		WillReturnRows(sqlmock.NewRows([]string{"key", "name", "value_type", "best_value", "worst_value"}))

	_, err := ds.GetMetric(context.Background(), "unknown")
	assert.ErrorIs(t, err, ErrMetricNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBStorageGetMeasureNotFound(t *testing.T) {
	ds, mock := newDBStorage(t)

	mock.ExpectQuery("WHERE ms.metric_key").
		WithArgs("coverage", "api").
		WillReturnRows(sqlmock.NewRows([]string{"key"}))

	_, err := ds.Get(context.Background(), "coverage", "api")
	assert.ErrorIs(t, err, ErrMeasureNotFound)
}

func TestDBStorageUpdateUnknownMetric(t *testing.T) {
	ds, mock := newDBStorage(t)

	mock.ExpectExec("INSERT INTO measures").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, Detail: "metric_key=(ncloc)"})

	err := ds.Update(context.Background(), models.Measure{Metric: models.Metric{Key: "ncloc"}, Component: "api"})
	assert.ErrorIs(t, err, ErrMetricNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBStorageUpdateValidation(t *testing.T) {
	ds, mock := newDBStorage(t)

	err := ds.UpdateBatch(context.Background(), []models.Measure{{Metric: models.Metric{Key: "coverage"}}})
	assert.ErrorIs(t, err, ErrInvalidComponent)
	// В базу ничего не отправлено
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.NoError(t, ds.UpdateBatch(context.Background(), nil))
}

func TestDBStorageUpsertMetric(t *testing.T) {
	ds, mock := newDBStorage(t)

	mock.ExpectExec("INSERT INTO metrics").
		WithArgs("coverage", "Coverage", "PERCENT", 100.0, 0.0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, ds.UpsertMetric(context.Background(), coverageMetric()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
