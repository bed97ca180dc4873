package retry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func withDelays(t *testing.T, d ...time.Duration) {
	t.Helper()
	prev := delays
	delays = d
	t.Cleanup(func() { delays = prev })
}

func TestIsRetriableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"eof", fmt.Errorf("read: %w", io.EOF), true},
		{"connection reset", errors.New("read tcp: connection reset by peer"), true},
		{"pg connection failure", &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, true},
		{"pg unique violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, false},
		{"no rows", sql.ErrNoRows, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetriableError(tt.err))
		})
	}
}

func TestWithBackoffSucceedsAfterRetry(t *testing.T) {
	withDelays(t, time.Millisecond, time.Millisecond)

	calls := 0
	err := WithBackoff(context.Background(), func() error {
		calls++
		if calls < 2 {
			return io.EOF
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestWithBackoffStopsOnPermanentError(t *testing.T) {
	withDelays(t, time.Millisecond)

	calls := 0
	err := WithBackoff(context.Background(), func() error {
		calls++
		return sql.ErrNoRows
	})

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Equal(t, 1, calls)
}

func TestWithBackoffGivesUp(t *testing.T) {
	withDelays(t, time.Millisecond, time.Millisecond)

	calls := 0
	err := WithBackoff(context.Background(), func() error {
		calls++
		return io.EOF
	})

	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 3, calls)
}

func TestWithBackoffHonoursContext(t *testing.T) {
	withDelays(t, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithBackoff(ctx, func() error { return io.EOF })
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, io.EOF)
}
