package http

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/patoshub/directorio-api/internal/application/dto"
	"github.com/patoshub/directorio-api/internal/domain"
	"github.com/patoshub/directorio-api/internal/infrastructure/storage"
	"github.com/patoshub/directorio-api/pkg/logger"
)

// maxImageSize límite de subida en bytes (10 MiB).
const maxImageSize = 10 << 20

// allowedImageExts extensiones de imagen aceptadas (sin punto, en minúsculas).
var allowedImageExts = map[string]bool{
	"jpeg": true,
	"jpg":  true,
	"png":  true,
	"gif":  true,
	"webp": true,
}

// UploadHandler maneja la subida y borrado de imágenes vía la pasarela de
// almacenamiento (protegido).
type UploadHandler struct {
	gw  *storage.Gateway
	log *logger.Logger
}

// NewUploadHandler construye el handler.
func NewUploadHandler(gw *storage.Gateway, log *logger.Logger) *UploadHandler {
	return &UploadHandler{gw: gw, log: log}
}

// Upload recibe una imagen en el campo multipart "image" y la persiste en el
// backend activo. Los campos opcionales "type" y "entityId" se devuelven tal
// cual para que el cliente asocie la URL al recurso.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "No se proporcionó ninguna imagen"})
	}
	if fh.Size > maxImageSize {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Error: "La imagen supera el tamaño máximo de 10MB"})
	}
	// Extensión y subtipo declarado deben estar ambos en la allowlist:
	// image/svg+xml con nombre .png también se rechaza.
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fh.Filename), "."))
	ctype := strings.ToLower(strings.TrimPrefix(fh.Header.Get("Content-Type"), "image/"))
	if !allowedImageExts[ext] || !allowedImageExts[ctype] {
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(dto.ErrorResponse{Error: "Solo se permiten imágenes (jpeg, jpg, png, gif, webp)"})
	}

	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al leer la imagen"})
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al leer la imagen"})
	}

	url, err := h.gw.Upload(c.Context(), storage.UploadInput{
		FileName: fh.Filename,
		Content:  content,
		BaseURL:  c.BaseURL(),
	})
	if err != nil {
		h.log.Error().Err(err).Str("backend", h.gw.Name()).Msg("subida de imagen falló")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al subir la imagen"})
	}

	return c.JSON(dto.UploadResponse{
		URL:      url,
		Storage:  h.gw.Name(),
		Message:  "Imagen subida exitosamente",
		Type:     c.FormValue("type"),
		EntityID: c.FormValue("entityId"),
	})
}

// Delete elimina una imagen a partir de su URL pública (query param "url").
// La pasarela enruta al backend dueño de la URL.
func (h *UploadHandler) Delete(c *fiber.Ctx) error {
	rawURL := c.Query("url")
	if rawURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "El parámetro url es requerido"})
	}
	if err := h.gw.Delete(c.Context(), rawURL); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Imagen no encontrada"})
		}
		h.log.Error().Err(err).Str("url", rawURL).Msg("borrado de imagen falló")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al eliminar la imagen"})
	}
	return c.JSON(dto.MessageResponse{Message: "Imagen eliminada exitosamente"})
}
