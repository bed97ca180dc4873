package retry

import (
	"context"
	"errors"
	"io"
	"net"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// Паузы между попытками
var delays = []time.Duration{1 * time.Second, 3 * time.Second, 5 * time.Second}

// WithBackoff runs action once plus one retry per delay while the error stays retriable.
func WithBackoff(ctx context.Context, action func() error) error {
	err := action()
	for i, delay := range delays {
		if err == nil || !IsRetriableError(err) {
			return err
		}

		zap.L().Warn("retrying after error",
			zap.Int("attempt", i+1),
			zap.Duration("delay", delay),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(delay):
		}

		err = action()
	}
	return err
}

func IsRetriableError(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "connection reset") {
		return true
	}
	return IsRetriablePostgresError(err)
}

func IsRetriablePostgresError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ConnectionException,
			pgerrcode.ConnectionDoesNotExist,
			pgerrcode.ConnectionFailure,
			pgerrcode.SQLClientUnableToEstablishSQLConnection,
			pgerrcode.SQLServerRejectedEstablishmentOfSQLConnection,
			pgerrcode.TransactionResolutionUnknown:
			return true
		}
	}
	return false
}
