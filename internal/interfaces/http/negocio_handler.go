package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/patoshub/directorio-api/internal/application/dto"
	"github.com/patoshub/directorio-api/internal/application/usecase"
	"github.com/patoshub/directorio-api/internal/domain"
)

// NegocioHandler maneja las peticiones HTTP para negocios (protegido).
type NegocioHandler struct {
	uc *usecase.NegocioUseCase
}

// NewNegocioHandler construye el handler.
func NewNegocioHandler(uc *usecase.NegocioUseCase) *NegocioHandler {
	return &NegocioHandler{uc: uc}
}

// List devuelve todos los negocios.
func (h *NegocioHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// GetByID devuelve un negocio por id.
func (h *NegocioHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Negocio no encontrado"})
	}
	return c.JSON(out)
}

// ListByDueno devuelve los negocios de un dueño.
func (h *NegocioHandler) ListByDueno(c *fiber.Ctx) error {
	out, err := h.uc.ListByDueno(c.Params("duenoId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// Create da de alta un negocio con 201.
func (h *NegocioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateNegocioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "nombre y duenoId son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update aplica una actualización parcial de un negocio.
func (h *NegocioHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateNegocioRequest
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
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Negocio no encontrado"})
	}
	return c.JSON(out)
}

// Delete elimina un negocio; 204 sin cuerpo en éxito.
func (h *NegocioHandler) Delete(c *fiber.Ctx) error {
	ok, err := h.uc.Delete(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Negocio no encontrado"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
