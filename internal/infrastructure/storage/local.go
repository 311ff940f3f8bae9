package storage

import (
	"context"
	"fmt"
	"math/rand"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/patoshub/directorio-api/internal/domain"
)

// LocalBackend guarda las imágenes en disco y las sirve como estáticos bajo /uploads.
type LocalBackend struct {
	dir     string
	baseURL string // si está vacío se usa la base de la petición
}

// NewLocal crea el backend de disco y asegura que la carpeta exista.
func NewLocal(dir, baseURL string) (*LocalBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear carpeta de uploads: %w", err)
	}
	return &LocalBackend{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Name identifica el backend.
func (b *LocalBackend) Name() string { return "local" }

// Upload escribe el fichero con un nombre único y devuelve la URL pública.
func (b *LocalBackend) Upload(_ context.Context, in UploadInput) (string, error) {
	ext := strings.ToLower(filepath.Ext(in.FileName))
	// Mismo esquema de nombres que el despliegue original: image-<ts>-<rand><ext>
	name := fmt.Sprintf("image-%d-%d%s", time.Now().UnixMilli(), rand.Int63n(1_000_000_000), ext)
	if err := os.WriteFile(filepath.Join(b.dir, name), in.Content, 0o644); err != nil {
		return "", fmt.Errorf("escribir imagen: %w", err)
	}
	base := b.baseURL
	if base == "" {
		base = strings.TrimSuffix(in.BaseURL, "/")
	}
	return base + "/uploads/" + name, nil
}

// Matches acepta cualquier URL: el backend local cierra la cadena de borrado.
func (b *LocalBackend) Matches(string) bool { return true }

// Delete deriva el nombre de fichero del último segmento de la URL y lo borra
// del disco. Si no existe, domain.ErrNotFound.
func (b *LocalBackend) Delete(_ context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return domain.ErrNotFound
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return domain.ErrNotFound
	}
	full := filepath.Join(b.dir, filepath.Base(name))
	if _, err := os.Stat(full); os.IsNotExist(err) {
		return domain.ErrNotFound
	}
	if err := os.Remove(full); err != nil {
		return fmt.Errorf("borrar imagen local: %w", err)
	}
	return nil
}
