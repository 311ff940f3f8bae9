package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patoshub/directorio-api/internal/application/usecase"
	"github.com/patoshub/directorio-api/internal/domain"
	"github.com/patoshub/directorio-api/internal/domain/entity"
	apphttp "github.com/patoshub/directorio-api/internal/interfaces/http"
)

// memProductoRepo repositorio en memoria con la semántica del de Postgres.
type memProductoRepo struct {
	items map[string]*entity.Producto
}

func (r *memProductoRepo) Create(p *entity.Producto) (*entity.Producto, error) {
	r.items[p.ID] = p
	return p, nil
}

func (r *memProductoRepo) List() ([]*entity.Producto, error) {
	out := make([]*entity.Producto, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	return out, nil
}

func (r *memProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return r.items[id], nil
}

func (r *memProductoRepo) ListByNegocio(negocioID string) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range r.items {
		if p.NegocioID == negocioID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProductoRepo) Update(id string, p entity.ProductoPatch) (*entity.Producto, error) {
	if !p.NegocioID.Present() && !p.Nombre.Present() && !p.Descripcion.Present() &&
		!p.Precio.Present() && !p.ImagenURI.Present() && !p.Stock.Present() && !p.Categoria.Present() {
		return nil, domain.ErrSinCampos
	}
	cur, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	if v, ok := p.Nombre.Value(); ok {
		cur.Nombre = v
	}
	if v, ok := p.Precio.Value(); ok {
		cur.Precio = v
	}
	if p.Stock.Present() {
		cur.Stock = p.Stock.Ptr()
	}
	return cur, nil
}

func (r *memProductoRepo) Delete(id string) (bool, error) {
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func buildProductoApp() (*fiber.App, *memProductoRepo) {
	repo := &memProductoRepo{items: map[string]*entity.Producto{}}
	h := apphttp.NewProductoHandler(usecase.NewProductoUseCase(repo))

	app := fiber.New()
	app.Get("/api/productos", h.List)
	app.Get("/api/productos/negocio/:negocioId", h.ListByNegocio)
	app.Get("/api/productos/:id", h.GetByID)
	app.Post("/api/productos", h.Create)
	app.Put("/api/productos/:id", h.Update)
	app.Delete("/api/productos/:id", h.Delete)
	return app, repo
}

func jsonRequest(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestProductoHandler_CreateYGet(t *testing.T) {
	app, _ := buildProductoApp()

	resp := jsonRequest(t, app, http.MethodPost, "/api/productos", map[string]any{
		"negocioId": "neg-1",
		"nombre":    "Pan artesanal",
		"precio":    10,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "Pan artesanal", created["nombre"])
	assert.Equal(t, float64(10), created["precio"])
	assert.Equal(t, float64(0), created["stock"], "stock no enviado: default 0")

	get := jsonRequest(t, app, http.MethodGet, "/api/productos/"+created["id"].(string), nil)
	defer get.Body.Close()
	assert.Equal(t, http.StatusOK, get.StatusCode)
}

func TestProductoHandler_CreateSinPrecio_Retorna400(t *testing.T) {
	app, _ := buildProductoApp()

	resp := jsonRequest(t, app, http.MethodPost, "/api/productos", map[string]any{
		"negocioId": "neg-1",
		"nombre":    "Pan",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Una actualización con solo stock no debe tocar el precio, y el precio debe
// seguir serializándose como número JSON.
func TestProductoHandler_UpdateParcial(t *testing.T) {
	app, _ := buildProductoApp()

	create := jsonRequest(t, app, http.MethodPost, "/api/productos", map[string]any{
		"negocioId": "neg-1",
		"nombre":    "Pan artesanal",
		"precio":    10,
	})
	defer create.Body.Close()
	var created map[string]any
	require.NoError(t, json.NewDecoder(create.Body).Decode(&created))

	resp := jsonRequest(t, app, http.MethodPut, "/api/productos/"+created["id"].(string), map[string]any{
		"stock": 5,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, float64(10), updated["precio"], "el precio no venía en el payload: no cambia")
	assert.Equal(t, float64(5), updated["stock"])
}

func TestProductoHandler_UpdateSinCampos_Retorna400(t *testing.T) {
	app, _ := buildProductoApp()

	resp := jsonRequest(t, app, http.MethodPut, "/api/productos/cualquiera", map[string]any{})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "No hay campos para actualizar", body["error"])
}

func TestProductoHandler_GetInexistente_Retorna404(t *testing.T) {
	app, _ := buildProductoApp()

	resp := jsonRequest(t, app, http.MethodGet, "/api/productos/no-existe", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProductoHandler_Delete(t *testing.T) {
	app, _ := buildProductoApp()

	create := jsonRequest(t, app, http.MethodPost, "/api/productos", map[string]any{
		"negocioId": "neg-1",
		"nombre":    "Pan",
		"precio":    1,
	})
	defer create.Body.Close()
	var created map[string]any
	require.NoError(t, json.NewDecoder(create.Body).Decode(&created))

	del := jsonRequest(t, app, http.MethodDelete, "/api/productos/"+created["id"].(string), nil)
	defer del.Body.Close()
	assert.Equal(t, http.StatusNoContent, del.StatusCode)

	again := jsonRequest(t, app, http.MethodDelete, "/api/productos/"+created["id"].(string), nil)
	defer again.Body.Close()
	assert.Equal(t, http.StatusNotFound, again.StatusCode)
}
