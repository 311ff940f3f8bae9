package auth

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/patoshub/directorio-api/internal/application/dto"
	"github.com/patoshub/directorio-api/internal/domain"
	"github.com/patoshub/directorio-api/internal/domain/entity"
	"github.com/patoshub/directorio-api/internal/domain/repository"
	"github.com/patoshub/directorio-api/pkg/config"
	"github.com/patoshub/directorio-api/pkg/jwt"
)

// UseCase registro y autenticación de cuentas.
type UseCase struct {
	users  repository.UserRepository
	jwtCfg config.JWTConfig
}

// NewUseCase crea el caso de uso de autenticación.
func NewUseCase(users repository.UserRepository, jwtCfg config.JWTConfig) *UseCase {
	return &UseCase{users: users, jwtCfg: jwtCfg}
}

// Register crea una cuenta nueva y devuelve el token de sesión junto con la
// cuenta. username y email chocando con una cuenta existente devuelven
// ErrUsuarioExiste / ErrEmailExiste respectivamente.
func (uc *UseCase) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	existing, err := uc.users.GetByUsernameOrEmail(req.Username, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Username == req.Username {
			return nil, domain.ErrUsuarioExiste
		}
		return nil, domain.ErrEmailExiste
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashear password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = entity.RoleCliente
	}

	user := &entity.User{
		ID:       uuid.New().String(),
		Username: req.Username,
		Email:    req.Email,
		Password: string(hash),
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Telefono: req.Telefono,
		Role:     role,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}

	return uc.respond(user)
}

// Login valida las credenciales y devuelve el token de sesión. Usuario
// inexistente y password incorrecto producen el mismo ErrUnauthorized.
func (uc *UseCase) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.users.GetByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.respond(user)
}

func (uc *UseCase) respond(user *entity.User) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpDays)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	return &dto.AuthResponse{
		Token: token,
		User: dto.UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Nombre:   user.Nombre,
			Apellido: user.Apellido,
			Telefono: user.Telefono,
			Role:     user.Role,
			TenantID: user.TenantID,
		},
	}, nil
}
