package booking

import (
	"context"
	"database/sql"
)

// DBExecutor is the database surface the repository needs; satisfied by
// *sql.DB and *dbmetrics.DB.
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}
