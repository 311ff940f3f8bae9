package repository

import "github.com/patoshub/directorio-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	List() ([]*entity.User, error)
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	// GetByUsernameOrEmail se usa en el registro para distinguir qué campo choca.
	GetByUsernameOrEmail(username, email string) (*entity.User, error)
	// Update aplica solo los campos presentes en el patch y devuelve la fila
	// resultante. Patch vacío -> domain.ErrSinCampos; id inexistente -> nil, nil.
	Update(id string, p entity.UserPatch) (*entity.User, error)
	// Delete devuelve false si el id no existía.
	Delete(id string) (bool, error)
}
