// Package postgres contiene los adaptadores de persistencia sobre PostgreSQL
// (pgx v5). Los repositorios aceptan un Querier, por lo que funcionan igual
// sobre el pool o sobre una transacción.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier es la superficie mínima de pgx que usan los repositorios. La
// satisfacen *pgxpool.Pool y pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
