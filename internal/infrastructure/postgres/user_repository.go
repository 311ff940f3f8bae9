package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/patoshub/directorio-api/internal/domain"
	"github.com/patoshub/directorio-api/internal/domain/entity"
	"github.com/patoshub/directorio-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// Lista explícita de columnas: nombre externo camelCase <-> columna snake_case
// se resuelve aquí y en los tags JSON de los DTOs, nunca por reflexión.
const userColumns = `id, username, email, password, nombre, apellido, telefono, role, tenant_id, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.Password, &u.Nombre, &u.Apellido,
		&u.Telefono, &u.Role, &u.TenantID, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste un nuevo usuario. username y email tienen constraint UNIQUE.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, password, nombre, apellido, telefono, role, tenant_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Username, user.Email, user.Password,
		user.Nombre, user.Apellido, user.Telefono, user.Role, user.TenantID,
	)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			return uniqueUserErr(constraint)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// uniqueUserErr traduce el constraint único violado (users_username_key o
// users_email_key) a su error de dominio.
func uniqueUserErr(constraint string) error {
	if strings.Contains(constraint, "email") {
		return domain.ErrEmailExiste
	}
	return domain.ErrUsuarioExiste
}

// List devuelve todos los usuarios.
func (r *UserRepo) List() ([]*entity.User, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+userColumns+` FROM users`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// GetByID obtiene un usuario por ID. Devuelve nil, nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	u, err := scanUser(r.pool.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// GetByUsername obtiene un usuario por username. Devuelve nil, nil si no existe.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	u, err := scanUser(r.pool.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return u, nil
}

// GetByUsernameOrEmail devuelve la primera cuenta que choque con cualquiera de
// los dos campos; el caso de uso de registro decide cuál fue el conflicto.
func (r *UserRepo) GetByUsernameOrEmail(username, email string) (*entity.User, error) {
	u, err := scanUser(r.pool.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE username = $1 OR email = $2 LIMIT 1`,
		username, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username or email: %w", err)
	}
	return u, nil
}

// Update aplica el patch sobre la fila y devuelve la representación resultante.
func (r *UserRepo) Update(id string, p entity.UserPatch) (*entity.User, error) {
	b := &updateBuilder{}
	setField(b, "username", p.Username)
	setField(b, "email", p.Email)
	setField(b, "nombre", p.Nombre)
	setField(b, "apellido", p.Apellido)
	setField(b, "telefono", p.Telefono)
	setField(b, "role", p.Role)
	setField(b, "tenant_id", p.TenantID)
	if b.empty() {
		return nil, domain.ErrSinCampos
	}
	query, args := b.sql("users", id, userColumns)
	u, err := scanUser(r.pool.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if constraint, ok := uniqueViolation(err); ok {
			return nil, uniqueUserErr(constraint)
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

// Delete elimina un usuario por ID. Devuelve false si no existía.
func (r *UserRepo) Delete(id string) (bool, error) {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
