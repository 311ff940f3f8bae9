package http_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patoshub/directorio-api/internal/infrastructure/storage"
	apphttp "github.com/patoshub/directorio-api/internal/interfaces/http"
	"github.com/patoshub/directorio-api/pkg/config"
	pkgjwt "github.com/patoshub/directorio-api/pkg/jwt"
	"github.com/patoshub/directorio-api/pkg/logger"
)

// buildUploadApp app con la pasarela resuelta a disco local en un tempdir.
func buildUploadApp(t *testing.T) (*fiber.App, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Uploads.Dir = dir
	cfg.Uploads.PublicBaseURL = "http://localhost:3000"

	log := logger.New(logger.Config{Env: "test", Level: "error"})
	gw, err := storage.New(cfg, log)
	require.NoError(t, err)
	require.Equal(t, "local", gw.Name(), "sin credenciales externas el backend activo es el local")

	h := apphttp.NewUploadHandler(gw, log)
	app := fiber.New(fiber.Config{BodyLimit: 12 << 20})
	app.Post("/api/upload/image", h.Upload)
	app.Delete("/api/upload/image", h.Delete)
	return app, dir
}

// multipartImage arma un body multipart con el campo "image".
func multipartImage(t *testing.T, fieldName, fileName, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+fileName+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := w.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUpload_GuardaYDevuelveURL(t *testing.T) {
	app, dir := buildUploadApp(t)

	body, ct := multipartImage(t, "image", "foto.png", "image/png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload/image", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "local", out["storage"])
	rawURL := out["url"].(string)
	assert.True(t, strings.HasPrefix(rawURL, "http://localhost:3000/uploads/image-"))
	assert.True(t, strings.HasSuffix(rawURL, ".png"))

	// El archivo existe en disco con el nombre de la URL.
	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, filepath.Base(u.Path)))
	assert.NoError(t, err)
}

func TestUpload_SinImagen_Retorna400(t *testing.T) {
	app, _ := buildUploadApp(t)

	body, ct := multipartImage(t, "otro_campo", "foto.png", "image/png", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload/image", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// La ruta pública de subida es /api/upload/image, detrás del middleware de auth.
func TestRouter_RutaDeSubidaEsUploadImage(t *testing.T) {
	cfg := &config.Config{}
	cfg.Uploads.Dir = t.TempDir()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	gw, err := storage.New(cfg, log)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{BodyLimit: 12 << 20})
	apphttp.Router(app, apphttp.RouterDeps{
		Storage:   gw,
		Log:       log,
		JWTSecret: testJWTSecret,
	})

	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "maria", "DUENO", testIssuer, 7)
	require.NoError(t, err)

	body, ct := multipartImage(t, "image", "foto.png", "image/png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload/image", body)
	req.Header.Set("Content-Type", ct)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUpload_ExtensionNoPermitida_Retorna415(t *testing.T) {
	app, _ := buildUploadApp(t)

	body, ct := multipartImage(t, "image", "malicioso.pdf", "application/pdf", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload/image", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
}

// Un nombre .png con content type declarado fuera de la allowlist
// (p. ej. image/svg+xml) también se rechaza.
func TestUpload_ContentTypeNoPermitido_Retorna415(t *testing.T) {
	app, _ := buildUploadApp(t)

	body, ct := multipartImage(t, "image", "foto.png", "image/svg+xml", []byte("<svg/>"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload/image", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
}

func TestUpload_DemasiadoGrande_Retorna413(t *testing.T) {
	app, _ := buildUploadApp(t)

	// 10 MiB + 1 byte supera el límite de imagen.
	body, ct := multipartImage(t, "image", "enorme.jpg", "image/jpeg", make([]byte, 10<<20+1))
	req := httptest.NewRequest(http.MethodPost, "/api/upload/image", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestUploadDelete_SinURL_Retorna400(t *testing.T) {
	app, _ := buildUploadApp(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/upload/image", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadDelete_ImagenInexistente_Retorna404(t *testing.T) {
	app, _ := buildUploadApp(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/upload/image?url="+url.QueryEscape("http://localhost:3000/uploads/no-existe.png"), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Imagen no encontrada", body["error"])
}

// Subir y luego borrar por URL deja el disco limpio.
func TestUpload_RoundtripConDelete(t *testing.T) {
	app, dir := buildUploadApp(t)

	body, ct := multipartImage(t, "image", "foto.webp", "image/webp", []byte("webp-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload/image", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	rawURL := out["url"].(string)

	del := httptest.NewRequest(http.MethodDelete, "/api/upload/image?url="+url.QueryEscape(rawURL), nil)
	delResp, err := app.Test(del, -1)
	require.NoError(t, err)
	defer delResp.Body.Close()
	assert.Equal(t, http.StatusOK, delResp.StatusCode)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "tras el borrado no quedan archivos")
}
