package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-core/internal/application/auth"
	"github.com/tu-usuario/inventario-core/internal/application/dto"
	"github.com/tu-usuario/inventario-core/internal/domain"
	"github.com/tu-usuario/inventario-core/internal/domain/entity"
	"github.com/tu-usuario/inventario-core/pkg/jwt"
)

// fakeUserRepo repositorio de usuarios en memoria.
type fakeUserRepo struct {
	users map[string]*entity.User // por email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	if u, ok := r.users[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

var testCfg = auth.JWTConfig{Secret: "secreto-de-test", ExpMinutes: 60, Issuer: "inventario-core-test"}

func TestRegisterUser_HasheaPasswordYAsignaRolPorDefecto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testCfg)

	out, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "super-secreta"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, entity.RoleVendedor, out.Role, "sin rol explícito se asigna vendedor")
	assert.Equal(t, "ana@example.com", out.Name, "sin nombre se usa el email")
	assert.Equal(t, "active", out.Status)

	stored := repo.users["ana@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "super-secreta", stored.PasswordHash, "el password nunca se guarda en claro")
}

func TestRegisterUser_EmailRepetidoRetornaErrEmailAlreadyExists(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testCfg)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "super-secreta"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_EmiteTokenConUserIDYRol(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testCfg)

	created, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "bodega@example.com",
		Password: "super-secreta",
		Role:     entity.RoleBodeguero,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "bodega@example.com", Password: "super-secreta"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, created.ID, out.User.ID)

	userID, role, err := jwt.Parse(testCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, userID)
	assert.Equal(t, entity.RoleBodeguero, role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testCfg)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "super-secreta"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "lo-que-sea"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_CuentaInactivaRetornaErrForbidden(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testCfg)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "super-secreta"})
	require.NoError(t, err)
	repo.users["ana@example.com"].Status = "suspended"

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "super-secreta"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
