package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/patoshub/directorio-api/internal/application/dto"
	"github.com/patoshub/directorio-api/internal/application/usecase"
	"github.com/patoshub/directorio-api/internal/domain"
)

// ReservacionHandler maneja las peticiones HTTP para reservaciones (protegido).
type ReservacionHandler struct {
	uc *usecase.ReservacionUseCase
}

// NewReservacionHandler construye el handler.
func NewReservacionHandler(uc *usecase.ReservacionUseCase) *ReservacionHandler {
	return &ReservacionHandler{uc: uc}
}

// List devuelve todas las reservaciones.
func (h *ReservacionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// GetByID devuelve una reservación por id.
func (h *ReservacionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Reservación no encontrada"})
	}
	return c.JSON(out)
}

// ListByCliente devuelve las reservaciones de un cliente.
func (h *ReservacionHandler) ListByCliente(c *fiber.Ctx) error {
	out, err := h.uc.ListByCliente(c.Params("clienteId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// ListByNegocio devuelve las reservaciones de un negocio.
func (h *ReservacionHandler) ListByNegocio(c *fiber.Ctx) error {
	out, err := h.uc.ListByNegocio(c.Params("negocioId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// Create da de alta una reservación con 201.
func (h *ReservacionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReservacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "clienteId, negocioId y fecha son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update aplica una actualización parcial de una reservación.
func (h *ReservacionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateReservacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrSinCampos {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "No hay campos para actualizar"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Reservación no encontrada"})
	}
	return c.JSON(out)
}

// Delete elimina una reservación; 204 sin cuerpo en éxito.
func (h *ReservacionHandler) Delete(c *fiber.Ctx) error {
	ok, err := h.uc.Delete(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Reservación no encontrada"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
