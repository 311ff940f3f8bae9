// Package storage implementa la pasarela de imágenes: un backend activo que
// recibe las subidas y una cadena de backends que saben reconocer sus propias
// URLs para el borrado. La selección ocurre una sola vez en el arranque, en
// orden de precedencia fija (ImageKit -> Cloudinary -> disco local), sin
// fallback por petición.
package storage

import (
	"context"
	"fmt"

	"github.com/patoshub/directorio-api/pkg/config"
	"github.com/patoshub/directorio-api/pkg/logger"
)

// UploadInput datos de una imagen a persistir.
type UploadInput struct {
	FileName string
	Content  []byte
	// BaseURL base pública de la petición; solo el backend local la usa para
	// construir la URL cuando no hay PUBLIC_BASE_URL configurada.
	BaseURL string
}

// Backend almacenamiento de imágenes intercambiable.
type Backend interface {
	// Name identifica el backend en las respuestas ("imagekit", "cloudinary", "local").
	Name() string
	// Upload persiste la imagen y devuelve su URL pública durable.
	Upload(ctx context.Context, in UploadInput) (string, error)
	// Matches reconoce por la forma de la URL si el objeto pertenece a este backend.
	Matches(rawURL string) bool
	// Delete localiza el objeto a partir de la URL y lo elimina.
	// Devuelve domain.ErrNotFound si el backend no encuentra el objeto.
	Delete(ctx context.Context, rawURL string) error
}

// Gateway backend activo para subidas + cadena de borrado por forma de URL.
type Gateway struct {
	active Backend
	chain  []Backend
}

// New resuelve los backends disponibles según credenciales. El primero de la
// cadena recibe las subidas; el local siempre cierra la cadena como catch-all.
func New(cfg *config.Config, log *logger.Logger) (*Gateway, error) {
	local, err := NewLocal(cfg.Uploads.Dir, cfg.Uploads.PublicBaseURL)
	if err != nil {
		return nil, fmt.Errorf("backend local: %w", err)
	}

	var chain []Backend
	if cfg.ImageKit.Complete() {
		chain = append(chain, NewImageKit(cfg.ImageKit))
	}
	if cfg.Cloudinary.Complete() {
		cld, err := NewCloudinary(cfg.Cloudinary)
		if err != nil {
			return nil, fmt.Errorf("backend cloudinary: %w", err)
		}
		chain = append(chain, cld)
	}
	chain = append(chain, local)

	g := &Gateway{active: chain[0], chain: chain}
	log.Info().Str("backend", g.active.Name()).Msg("backend de imágenes seleccionado")
	return g, nil
}

// Name devuelve el nombre del backend activo.
func (g *Gateway) Name() string { return g.active.Name() }

// Upload delega en el backend activo.
func (g *Gateway) Upload(ctx context.Context, in UploadInput) (string, error) {
	return g.active.Upload(ctx, in)
}

// Delete enruta el borrado al primer backend de la cadena cuya forma de URL
// coincida. El local acepta cualquier URL, así que siempre hay un candidato.
func (g *Gateway) Delete(ctx context.Context, rawURL string) error {
	for _, b := range g.chain {
		if b.Matches(rawURL) {
			return b.Delete(ctx, rawURL)
		}
	}
	// Inalcanzable mientras el local cierre la cadena.
	return fmt.Errorf("ningún backend reconoce la URL %q", rawURL)
}
