package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/imagekit-developer/imagekit-go"
	"github.com/imagekit-developer/imagekit-go/api/media"
	ikuploader "github.com/imagekit-developer/imagekit-go/api/uploader"
	"github.com/patoshub/directorio-api/internal/domain"
	"github.com/patoshub/directorio-api/pkg/config"
)

const imagekitFolder = "/directorio"

// ImageKitBackend sube imágenes al media library de ImageKit y las sirve por su CDN.
type ImageKitBackend struct {
	ik *imagekit.ImageKit
}

// NewImageKit construye el backend con las tres credenciales del servicio.
func NewImageKit(cfg config.ImageKitConfig) *ImageKitBackend {
	ik := imagekit.NewFromParams(imagekit.NewParams{
		PublicKey:   cfg.PublicKey,
		PrivateKey:  cfg.PrivateKey,
		UrlEndpoint: cfg.URLEndpoint,
	})
	return &ImageKitBackend{ik: ik}
}

// Name identifica el backend.
func (b *ImageKitBackend) Name() string { return "imagekit" }

// Upload sube el fichero a la carpeta del directorio y devuelve la URL del CDN.
func (b *ImageKitBackend) Upload(ctx context.Context, in UploadInput) (string, error) {
	resp, err := b.ik.Uploader.Upload(ctx, bytes.NewReader(in.Content), ikuploader.UploadParam{
		FileName: in.FileName,
		Folder:   imagekitFolder,
	})
	if err != nil {
		return "", fmt.Errorf("subir a imagekit: %w", err)
	}
	return resp.Data.Url, nil
}

// Matches reconoce URLs servidas por el dominio de ImageKit.
func (b *ImageKitBackend) Matches(rawURL string) bool {
	return strings.Contains(rawURL, "imagekit.io")
}

// Delete deriva la ruta de almacenamiento de los segmentos de la URL, lista
// los ficheros de esa ruta y borra el primero cuyo nombre coincida. Sin
// coincidencia -> domain.ErrNotFound.
func (b *ImageKitBackend) Delete(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return domain.ErrNotFound
	}
	folder := path.Dir(u.Path)
	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return domain.ErrNotFound
	}

	files, err := b.ik.Media.Files(ctx, media.FilesParam{Path: folder})
	if err != nil {
		return fmt.Errorf("listar ficheros de imagekit: %w", err)
	}
	for _, f := range files.Data {
		if f.Name == name {
			if _, err := b.ik.Media.DeleteFile(ctx, f.FileId); err != nil {
				return fmt.Errorf("borrar fichero de imagekit: %w", err)
			}
			return nil
		}
	}
	return domain.ErrNotFound
}
