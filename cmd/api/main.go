package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/patoshub/directorio-api/internal/application/auth"
	"github.com/patoshub/directorio-api/internal/application/usecase"
	"github.com/patoshub/directorio-api/internal/infrastructure/postgres"
	"github.com/patoshub/directorio-api/internal/infrastructure/storage"
	httpRouter "github.com/patoshub/directorio-api/internal/interfaces/http"
	"github.com/patoshub/directorio-api/pkg/config"
	"github.com/patoshub/directorio-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Esquema y cuenta admin se aseguran en cada arranque (idempotente).
	if err := postgres.InitSchema(ctx, pool, log); err != nil {
		log.Fatal().Err(err).Msg("inicialización del esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	negocioRepo := postgres.NewNegocioRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	reservacionRepo := postgres.NewReservacionRepository(pool)
	disponibilidadRepo := postgres.NewDisponibilidadRepository(pool)

	authUC := auth.NewUseCase(userRepo, cfg.JWT)
	userUC := usecase.NewUserUseCase(userRepo)
	negocioUC := usecase.NewNegocioUseCase(negocioRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo)
	reservacionUC := usecase.NewReservacionUseCase(reservacionRepo)
	disponibilidadUC := usecase.NewDisponibilidadUseCase(disponibilidadRepo)

	gw, err := storage.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("pasarela de imágenes")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    12 << 20, // margen sobre el límite de imagen de 10 MiB
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Directorio API",
	}))

	// Con backend local las imágenes se sirven desde el mismo proceso.
	if gw.Name() == "local" {
		app.Static("/uploads", cfg.Uploads.Dir)
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		UserUC:           userUC,
		NegocioUC:        negocioUC,
		ProductoUC:       productoUC,
		ReservacionUC:    reservacionUC,
		DisponibilidadUC: disponibilidadUC,
		Storage:          gw,
		Log:              log,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
