package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/patoshub/directorio-api/internal/application/dto"
	"github.com/patoshub/directorio-api/internal/application/usecase"
	"github.com/patoshub/directorio-api/internal/domain"
)

// DisponibilidadHandler maneja las peticiones HTTP para disponibilidades (protegido).
type DisponibilidadHandler struct {
	uc *usecase.DisponibilidadUseCase
}

// NewDisponibilidadHandler construye el handler.
func NewDisponibilidadHandler(uc *usecase.DisponibilidadUseCase) *DisponibilidadHandler {
	return &DisponibilidadHandler{uc: uc}
}

// List devuelve todas las franjas.
func (h *DisponibilidadHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// GetByID devuelve una franja por id.
func (h *DisponibilidadHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Disponibilidad no encontrada"})
	}
	return c.JSON(out)
}

// ListByNegocio devuelve las franjas de un negocio.
func (h *DisponibilidadHandler) ListByNegocio(c *fiber.Ctx) error {
	out, err := h.uc.ListByNegocio(c.Params("negocioId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// Create da de alta una franja con 201.
func (h *DisponibilidadHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDisponibilidadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "negocioId y diaSemana son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "negocioId y diaSemana son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update aplica una actualización parcial de una franja.
func (h *DisponibilidadHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDisponibilidadRequest
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
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Disponibilidad no encontrada"})
	}
	return c.JSON(out)
}

// Delete elimina una franja; 204 sin cuerpo en éxito.
func (h *DisponibilidadHandler) Delete(c *fiber.Ctx) error {
	ok, err := h.uc.Delete(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Disponibilidad no encontrada"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
