package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/patoshub/directorio-api/internal/domain"
)

func TestUniqueViolation(t *testing.T) {
	constraint, ok := uniqueViolation(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
	assert.True(t, ok)
	assert.Equal(t, "users_email_key", constraint)

	// Envuelto sigue detectándose.
	wrapped := fmt.Errorf("insert user: %w", &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})
	constraint, ok = uniqueViolation(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "users_username_key", constraint)

	// Otros SQLSTATE y errores ajenos a Postgres no son violación de único.
	_, ok = uniqueViolation(&pgconn.PgError{Code: "23503"})
	assert.False(t, ok)
	_, ok = uniqueViolation(errors.New("conexión cerrada"))
	assert.False(t, ok)
}

func TestUniqueUserErr(t *testing.T) {
	assert.ErrorIs(t, uniqueUserErr("users_email_key"), domain.ErrEmailExiste)
	assert.ErrorIs(t, uniqueUserErr("users_username_key"), domain.ErrUsuarioExiste)
	// Constraint desconocido cae al error de usuario, el conflicto más común.
	assert.ErrorIs(t, uniqueUserErr(""), domain.ErrUsuarioExiste)
}
