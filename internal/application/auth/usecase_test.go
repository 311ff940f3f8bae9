package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/patoshub/directorio-api/internal/application/auth"
	"github.com/patoshub/directorio-api/internal/application/dto"
	"github.com/patoshub/directorio-api/internal/domain"
	"github.com/patoshub/directorio-api/internal/domain/entity"
	"github.com/patoshub/directorio-api/pkg/config"
	pkgjwt "github.com/patoshub/directorio-api/pkg/jwt"
)

// fakeUserRepo repositorio en memoria para los tests del caso de uso.
type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users = append(r.users, u)
	return nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) { return r.users, nil }

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsernameOrEmail(username, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(id string, p entity.UserPatch) (*entity.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) Delete(id string) (bool, error) { return false, nil }

var testJWT = config.JWTConfig{
	Secret:  "secret-de-test",
	ExpDays: 7,
	Issuer:  "directorio-api-test",
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	repo.users = append(repo.users, &entity.User{
		ID:       "existing-id",
		Username: username,
		Email:    email,
		Password: string(hash),
		Role:     entity.RoleCliente,
	})
}

func TestRegister_CreaCuentaYDevuelveToken(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := auth.NewUseCase(repo, testJWT)

	out, err := uc.Register(dto.RegisterRequest{
		Username: "maria",
		Email:    "maria@example.com",
		Password: "secreta123",
		Role:     entity.RoleDueno,
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.User.ID)
	assert.Equal(t, "maria", out.User.Username)
	assert.Equal(t, entity.RoleDueno, out.User.Role)

	// El token lleva la identidad de la cuenta recién creada.
	claims, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.Subject)
	assert.Equal(t, "maria", claims.Username)
	assert.Equal(t, entity.RoleDueno, claims.Role)

	// El password se persiste hasheado, nunca en claro.
	require.Len(t, repo.users, 1)
	assert.NotEqual(t, "secreta123", repo.users[0].Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.users[0].Password), []byte("secreta123")))
}

func TestRegister_SinRol_DefaultCliente(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := auth.NewUseCase(repo, testJWT)

	out, err := uc.Register(dto.RegisterRequest{
		Username: "juan",
		Email:    "juan@example.com",
		Password: "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCliente, out.User.Role)
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	repo := &fakeUserRepo{}
	seedUser(t, repo, "maria", "maria@example.com", "pw")
	uc := auth.NewUseCase(repo, testJWT)

	_, err := uc.Register(dto.RegisterRequest{
		Username: "maria",
		Email:    "otra@example.com",
		Password: "pw",
	})
	assert.ErrorIs(t, err, domain.ErrUsuarioExiste)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := &fakeUserRepo{}
	seedUser(t, repo, "maria", "maria@example.com", "pw")
	uc := auth.NewUseCase(repo, testJWT)

	_, err := uc.Register(dto.RegisterRequest{
		Username: "otrousuario",
		Email:    "maria@example.com",
		Password: "pw",
	})
	assert.ErrorIs(t, err, domain.ErrEmailExiste)
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	repo := &fakeUserRepo{}
	seedUser(t, repo, "maria", "maria@example.com", "secreta123")
	uc := auth.NewUseCase(repo, testJWT)

	out, err := uc.Login(dto.LoginRequest{Username: "maria", Password: "secreta123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "maria", out.User.Username)
}

// Usuario inexistente y password incorrecto producen el mismo error: la
// respuesta no revela cuál de los dos falló.
func TestLogin_FalloIndistinguible(t *testing.T) {
	repo := &fakeUserRepo{}
	seedUser(t, repo, "maria", "maria@example.com", "secreta123")
	uc := auth.NewUseCase(repo, testJWT)

	_, errNoUser := uc.Login(dto.LoginRequest{Username: "nadie", Password: "secreta123"})
	_, errBadPw := uc.Login(dto.LoginRequest{Username: "maria", Password: "incorrecta"})

	assert.ErrorIs(t, errNoUser, domain.ErrUnauthorized)
	assert.ErrorIs(t, errBadPw, domain.ErrUnauthorized)
	assert.Equal(t, errNoUser, errBadPw)
}
