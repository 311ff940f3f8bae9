package postgres

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/patoshub/directorio-api/pkg/config"
)

// NewPool crea el pool de conexiones PostgreSQL a partir de DATABASE_URL.
// El pool se crea una sola vez en el arranque y es de solo lectura después;
// si la base no responde al ping inicial, se devuelve error y el proceso no arranca.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	dsn := databaseURLForRender(cfg.DatabaseURL)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	// Mismos límites que el despliegue original: 10s para conectar, 30m de idle.
	poolConfig.ConnConfig.ConnectTimeout = 10 * time.Second
	poolConfig.MaxConns = 25
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

var renderHostRe = regexp.MustCompile(`^dpg-[a-z0-9-]+$`)

// databaseURLForRender completa el hostname interno de Render (dpg-...) con el
// dominio y puerto públicos cuando la URL viene recortada del dashboard.
func databaseURLForRender(databaseURL string) string {
	if !strings.Contains(databaseURL, "@dpg-") || strings.Contains(databaseURL, ".render.com") {
		return databaseURL
	}
	u, err := url.Parse(databaseURL)
	if err != nil {
		return databaseURL
	}
	host := u.Hostname()
	if !renderHostRe.MatchString(host) {
		return databaseURL
	}
	// Región por defecto: oregon. Las URLs completas no pasan por aquí.
	u.Host = host + ".oregon-postgres.render.com:5432"
	return u.String()
}
