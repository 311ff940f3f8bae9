package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/patoshub/directorio-api/internal/domain/entity"
	"github.com/patoshub/directorio-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// Sentencias DDL de las cinco tablas. Sin foreign keys: la integridad
// referencial entre recursos es responsabilidad de la aplicación y borrar un
// padre no cascada.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(255) PRIMARY KEY,
		username VARCHAR(255) UNIQUE NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		nombre VARCHAR(255),
		apellido VARCHAR(255),
		telefono VARCHAR(255),
		role VARCHAR(50) NOT NULL,
		tenant_id VARCHAR(255),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS negocios (
		id VARCHAR(255) PRIMARY KEY,
		nombre VARCHAR(255) NOT NULL,
		direccion TEXT,
		telefono VARCHAR(255),
		pagina_web VARCHAR(255),
		latitud DOUBLE PRECISION DEFAULT 0,
		longitud DOUBLE PRECISION DEFAULT 0,
		icono_uri TEXT,
		banner_uri TEXT,
		dueno_id VARCHAR(255) NOT NULL,
		categoria VARCHAR(255) DEFAULT 'General',
		categoria2 VARCHAR(255),
		estado VARCHAR(50),
		descripcion TEXT,
		email VARCHAR(255),
		horarios TEXT,
		color_primario VARCHAR(255),
		color_secundario VARCHAR(255),
		redes_sociales TEXT,
		informacion_adicional TEXT,
		destacado BOOLEAN DEFAULT false,
		fecha_inicio_activacion BIGINT,
		fecha_fin_activacion BIGINT,
		ocultar_al_cumplir_mes BOOLEAN DEFAULT false,
		visible_en_directorio BOOLEAN DEFAULT true,
		fecha_inicio_suscripcion BIGINT,
		fecha_fin_suscripcion BIGINT,
		suscripcion_activa BOOLEAN DEFAULT false,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS productos (
		id VARCHAR(255) PRIMARY KEY,
		negocio_id VARCHAR(255) NOT NULL,
		nombre VARCHAR(255) NOT NULL,
		descripcion TEXT,
		precio DOUBLE PRECISION NOT NULL,
		imagen_uri TEXT,
		stock INTEGER DEFAULT 0,
		categoria VARCHAR(255),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS reservaciones (
		id VARCHAR(255) PRIMARY KEY,
		cliente_id VARCHAR(255) NOT NULL,
		negocio_id VARCHAR(255) NOT NULL,
		fecha TIMESTAMP NOT NULL,
		hora VARCHAR(50),
		estado VARCHAR(50) DEFAULT 'PENDIENTE',
		notas TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS disponibilidades (
		id VARCHAR(255) PRIMARY KEY,
		negocio_id VARCHAR(255) NOT NULL,
		dia_semana INTEGER NOT NULL,
		hora_inicio VARCHAR(50),
		hora_fin VARCHAR(50),
		disponible BOOLEAN DEFAULT true,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

// InitSchema crea las tablas si no existen y seedea la cuenta admin.
// Se ejecuta en cada arranque; todas las sentencias son idempotentes.
func InitSchema(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("crear tabla: %w", err)
		}
	}
	if err := seedAdmin(ctx, pool, log); err != nil {
		return err
	}
	log.Info().Msg("base de datos inicializada")
	return nil
}

// seedAdmin crea el usuario admin por defecto (admin/admin123) si no existe.
func seedAdmin(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger) error {
	var exists bool
	err := pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, "admin",
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("comprobar admin: %w", err)
	}
	if exists {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin: %w", err)
	}
	_, err = pool.Exec(ctx,
		`INSERT INTO users (id, username, email, password, nombre, role)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.New().String(), "admin", "admin@patoshub.com", string(hash), "Administrador", entity.RoleAdmin,
	)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	log.Info().Msg("usuario admin creado: admin / admin123")
	return nil
}
