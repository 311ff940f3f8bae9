package patch_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patoshub/directorio-api/pkg/patch"
)

type payload struct {
	Nombre patch.Field[string]  `json:"nombre"`
	Precio patch.Field[float64] `json:"precio"`
	Stock  patch.Field[int]     `json:"stock"`
}

// Clave ausente, null explícito y valor son tres estados distintos.
func TestField_AusenteNullYValor(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"nombre": null, "precio": 10.5}`), &p))

	// nombre: presente como null
	assert.True(t, p.Nombre.Present())
	assert.True(t, p.Nombre.IsNull())
	_, ok := p.Nombre.Value()
	assert.False(t, ok, "un null explícito no trae valor")
	assert.Nil(t, p.Nombre.Ptr())

	// precio: presente con valor
	assert.True(t, p.Precio.Present())
	assert.False(t, p.Precio.IsNull())
	v, ok := p.Precio.Value()
	assert.True(t, ok)
	assert.Equal(t, 10.5, v)
	require.NotNil(t, p.Precio.Ptr())
	assert.Equal(t, 10.5, *p.Precio.Ptr())

	// stock: ausente del payload
	assert.False(t, p.Stock.Present())
	assert.False(t, p.Stock.IsNull())
	assert.Nil(t, p.Stock.Ptr())
}

func TestField_CeroValueEsAusente(t *testing.T) {
	var f patch.Field[string]
	assert.False(t, f.Present())
	assert.Nil(t, f.Ptr())
}

// El valor cero del tipo (0, "", false) presente en el payload cuenta como valor.
func TestField_ValorCeroPresente(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"stock": 0}`), &p))

	assert.True(t, p.Stock.Present())
	v, ok := p.Stock.Value()
	assert.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestField_Constructores(t *testing.T) {
	f := patch.Of("hola")
	assert.True(t, f.Present())
	v, ok := f.Value()
	assert.True(t, ok)
	assert.Equal(t, "hola", v)

	n := patch.Null[string]()
	assert.True(t, n.Present())
	assert.True(t, n.IsNull())
	assert.Nil(t, n.Ptr())
}

func TestField_TipoInvalido_RetornaError(t *testing.T) {
	var p payload
	err := json.Unmarshal([]byte(`{"stock": "muchos"}`), &p)
	assert.Error(t, err)
}
