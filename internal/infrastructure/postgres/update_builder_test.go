package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patoshub/directorio-api/pkg/patch"
)

func TestUpdateBuilder_SoloCamposPresentes(t *testing.T) {
	var b updateBuilder
	setField(&b, "nombre", patch.Of("Café Central"))
	setField(&b, "direccion", patch.Field[string]{}) // ausente: no entra
	setField(&b, "destacado", patch.Of(true))

	require.False(t, b.empty())
	query, args := b.sql("negocios", "abc-123", "id, nombre")

	assert.Equal(t,
		"UPDATE negocios SET nombre = $1, destacado = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $3 RETURNING id, nombre",
		query)
	require.Len(t, args, 3)
	assert.Equal(t, "Café Central", *(args[0].(*string)))
	assert.Equal(t, true, *(args[1].(*bool)))
	assert.Equal(t, "abc-123", args[2])
}

// Un null explícito entra a la sentencia como puntero nil (NULL en SQL).
func TestUpdateBuilder_NullExplicitoBindeaNil(t *testing.T) {
	var b updateBuilder
	setField(&b, "telefono", patch.Null[string]())

	query, args := b.sql("negocios", "abc-123", "id")
	assert.Contains(t, query, "telefono = $1")
	require.Len(t, args, 2)
	assert.Nil(t, args[0].(*string))
}

func TestUpdateBuilder_SinCamposEsVacio(t *testing.T) {
	var b updateBuilder
	setField(&b, "nombre", patch.Field[string]{})
	setField(&b, "stock", patch.Field[int]{})
	assert.True(t, b.empty())
}

// Los placeholders se numeran en orden de inserción y el id va al final.
func TestUpdateBuilder_NumeracionPosicional(t *testing.T) {
	var b updateBuilder
	setField(&b, "a", patch.Of(1))
	setField(&b, "b", patch.Of(2))
	setField(&b, "c", patch.Of(3))

	query, args := b.sql("t", "x", "id")
	assert.Equal(t,
		"UPDATE t SET a = $1, b = $2, c = $3, updated_at = CURRENT_TIMESTAMP WHERE id = $4 RETURNING id",
		query)
	assert.Len(t, args, 4)
}
