package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	clduploader "github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/patoshub/directorio-api/internal/domain"
	"github.com/patoshub/directorio-api/pkg/config"
)

const cloudinaryFolder = "directorio"

// CloudinaryBackend sube imágenes a Cloudinary y borra por public_id.
type CloudinaryBackend struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinary construye el backend con las tres credenciales del servicio.
func NewCloudinary(cfg config.CloudinaryConfig) (*CloudinaryBackend, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryBackend{cld: cld}, nil
}

// Name identifica el backend.
func (b *CloudinaryBackend) Name() string { return "cloudinary" }

// Upload sube el fichero a la carpeta del directorio y devuelve la URL segura.
func (b *CloudinaryBackend) Upload(ctx context.Context, in UploadInput) (string, error) {
	resp, err := b.cld.Upload.Upload(ctx, bytes.NewReader(in.Content), clduploader.UploadParams{
		Folder: cloudinaryFolder,
	})
	if err != nil {
		return "", fmt.Errorf("subir a cloudinary: %w", err)
	}
	if resp.SecureURL == "" {
		return "", fmt.Errorf("subir a cloudinary: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}

// Matches reconoce URLs servidas por el dominio de Cloudinary.
func (b *CloudinaryBackend) Matches(rawURL string) bool {
	return strings.Contains(rawURL, "cloudinary.com")
}

// Delete deriva el public_id de la URL e invoca Destroy. Un resultado
// distinto de "ok" (típicamente "not found") se reporta como domain.ErrNotFound.
func (b *CloudinaryBackend) Delete(ctx context.Context, rawURL string) error {
	publicID, ok := publicIDFromURL(rawURL)
	if !ok {
		return domain.ErrNotFound
	}
	resp, err := b.cld.Upload.Destroy(ctx, clduploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("destroy en cloudinary: %w", err)
	}
	if resp.Result != "ok" {
		return domain.ErrNotFound
	}
	return nil
}

var versionSegmentRe = regexp.MustCompile(`^v\d+$`)

// publicIDFromURL extrae el public_id de una URL de entrega de Cloudinary:
// la ruta tras "upload/", sin el segmento de versión v<n> y sin extensión.
// Ej.: https://res.cloudinary.com/demo/image/upload/v1700000000/directorio/foto.jpg
// -> "directorio/foto".
func publicIDFromURL(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	uploadIdx := -1
	for i, s := range segments {
		if s == "upload" {
			uploadIdx = i
			break
		}
	}
	if uploadIdx == -1 || uploadIdx == len(segments)-1 {
		return "", false
	}
	rest := segments[uploadIdx+1:]
	if versionSegmentRe.MatchString(rest[0]) {
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return "", false
	}
	publicID := strings.Join(rest, "/")
	if ext := strings.LastIndex(publicID, "."); ext > strings.LastIndex(publicID, "/") {
		publicID = publicID[:ext]
	}
	if publicID == "" {
		return "", false
	}
	return publicID, true
}
