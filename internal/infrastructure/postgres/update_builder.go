package postgres

import (
	"fmt"
	"strings"

	"github.com/patoshub/directorio-api/pkg/patch"
)

// updateBuilder acumula asignaciones columna = $n para un UPDATE parcial.
// Cada repositorio lo alimenta con su lista explícita de campos actualizables;
// solo los campos presentes en el payload llegan a la sentencia final.
type updateBuilder struct {
	sets []string
	args []any
}

func (b *updateBuilder) set(column string, value any) {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

// setField añade la asignación solo si el campo venía en el payload.
// Un null explícito se bindea como puntero nil (NULL en SQL).
func setField[T any](b *updateBuilder, column string, f patch.Field[T]) {
	if !f.Present() {
		return
	}
	b.set(column, f.Ptr())
}

func (b *updateBuilder) empty() bool { return len(b.sets) == 0 }

// sql arma la sentencia final. updated_at se refresca siempre, la fila se
// selecciona por id y se devuelven las columnas pedidas para reconstruir la
// representación post-update sin una segunda consulta.
func (b *updateBuilder) sql(table, id, returning string) (string, []any) {
	sets := append(b.sets, "updated_at = CURRENT_TIMESTAMP")
	args := append(b.args, id)
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(sets, ", "), len(args), returning,
	)
	return query, args
}
