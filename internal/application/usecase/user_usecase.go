package usecase

import (
	"github.com/patoshub/directorio-api/internal/application/dto"
	"github.com/patoshub/directorio-api/internal/domain/entity"
	"github.com/patoshub/directorio-api/internal/domain/repository"
)

// UserUseCase consultas y administración de cuentas.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase crea el caso de uso de usuarios.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devuelve todas las cuentas.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// GetByID devuelve una cuenta por id, o nil si no existe.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil || u == nil {
		return nil, err
	}
	resp := toUserResponse(u)
	return &resp, nil
}

// Update aplica una actualización parcial. username, email y role solo se
// aplican con valor no vacío; los campos de perfil aceptan null explícito.
func (uc *UserUseCase) Update(id string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	var p entity.UserPatch
	if v, ok := req.Username.Value(); ok && v != "" {
		p.Username = req.Username
	}
	if v, ok := req.Email.Value(); ok && v != "" {
		p.Email = req.Email
	}
	if v, ok := req.Role.Value(); ok && v != "" {
		p.Role = req.Role
	}
	p.Nombre = req.Nombre
	p.Apellido = req.Apellido
	p.Telefono = req.Telefono
	p.TenantID = req.TenantID

	u, err := uc.repo.Update(id, p)
	if err != nil || u == nil {
		return nil, err
	}
	resp := toUserResponse(u)
	return &resp, nil
}

// Delete elimina una cuenta; false si no existía.
func (uc *UserUseCase) Delete(id string) (bool, error) {
	return uc.repo.Delete(id)
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Nombre:   u.Nombre,
		Apellido: u.Apellido,
		Telefono: u.Telefono,
		Role:     u.Role,
		TenantID: u.TenantID,
	}
}
