package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/patoshub/directorio-api/internal/application/auth"
	"github.com/patoshub/directorio-api/internal/application/usecase"
	"github.com/patoshub/directorio-api/internal/infrastructure/storage"
	"github.com/patoshub/directorio-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.UseCase
	UserUC           *usecase.UserUseCase
	NegocioUC        *usecase.NegocioUseCase
	ProductoUC       *usecase.ProductoUseCase
	ReservacionUC    *usecase.ReservacionUseCase
	DisponibilidadUC *usecase.DisponibilidadUseCase
	Storage          *storage.Gateway
	Log              *logger.Logger
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Health (público)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuarios (protegido; el alta es vía /api/auth/register)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Negocios (protegido)
	negocios := protected.Group("/negocios")
	negocioHandler := NewNegocioHandler(deps.NegocioUC)
	negocios.Get("/", negocioHandler.List)
	negocios.Get("/dueno/:duenoId", negocioHandler.ListByDueno)
	negocios.Get("/:id", negocioHandler.GetByID)
	negocios.Post("/", negocioHandler.Create)
	negocios.Put("/:id", negocioHandler.Update)
	negocios.Delete("/:id", negocioHandler.Delete)

	// Productos (protegido)
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Get("/", productoHandler.List)
	productos.Get("/negocio/:negocioId", productoHandler.ListByNegocio)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Post("/", productoHandler.Create)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	// Reservaciones (protegido)
	reservaciones := protected.Group("/reservaciones")
	reservacionHandler := NewReservacionHandler(deps.ReservacionUC)
	reservaciones.Get("/", reservacionHandler.List)
	reservaciones.Get("/cliente/:clienteId", reservacionHandler.ListByCliente)
	reservaciones.Get("/negocio/:negocioId", reservacionHandler.ListByNegocio)
	reservaciones.Get("/:id", reservacionHandler.GetByID)
	reservaciones.Post("/", reservacionHandler.Create)
	reservaciones.Put("/:id", reservacionHandler.Update)
	reservaciones.Delete("/:id", reservacionHandler.Delete)

	// Disponibilidades (protegido)
	disponibilidades := protected.Group("/disponibilidades")
	disponibilidadHandler := NewDisponibilidadHandler(deps.DisponibilidadUC)
	disponibilidades.Get("/", disponibilidadHandler.List)
	disponibilidades.Get("/negocio/:negocioId", disponibilidadHandler.ListByNegocio)
	disponibilidades.Get("/:id", disponibilidadHandler.GetByID)
	disponibilidades.Post("/", disponibilidadHandler.Create)
	disponibilidades.Put("/:id", disponibilidadHandler.Update)
	disponibilidades.Delete("/:id", disponibilidadHandler.Delete)

	// Upload de imágenes (protegido)
	uploadHandler := NewUploadHandler(deps.Storage, deps.Log)
	protected.Post("/upload/image", uploadHandler.Upload)
	protected.Delete("/upload/image", uploadHandler.Delete)
}
