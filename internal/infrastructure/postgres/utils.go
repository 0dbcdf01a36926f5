package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgCode(err) == "23505"
}

// isForeignKeyViolation verifica una violación de clave foránea (23503),
// usada para detectar borrados físicos sobre filas referenciadas.
func isForeignKeyViolation(err error) bool {
	return pgCode(err) == "23503"
}

// isLockTimeout verifica si expiró lock_timeout esperando un FOR UPDATE (55P03).
func isLockTimeout(err error) bool {
	return pgCode(err) == "55P03"
}
