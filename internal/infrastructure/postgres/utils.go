package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation detecta una violación de constraint único (SQLSTATE 23505) y
// devuelve el nombre del constraint violado. En este esquema solo users
// declara UNIQUE (username y email); el repositorio usa el nombre para decidir
// cuál de los dos chocó.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName, true
	}
	return "", false
}
