package database

import (
	"context"
	"database/sql"
)

//go:generate mockgen -destination=mocks/mock_dbconn.go -package=mocks github.com/GarikMirzoyan/measurecolor/internal/database DBConn

type DBConn interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRow(ctx context.Context, query string, args ...any) *sql.Row
	Query(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	Begin(ctx context.Context) (*sql.Tx, error)

	Close()
}
