package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-control-api/internal/application/auth"
	"github.com/jhoicas/stock-control-api/internal/application/dto"
	"github.com/jhoicas/stock-control-api/internal/domain"
	"github.com/jhoicas/stock-control-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/stock-control-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{users: make(map[string]*entity.User)} }

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok || u.Deleted() {
		return nil, nil
	}
	return u, nil
}
func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email && !u.Deleted() {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) List(bool, int, int) ([]*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) SoftDelete(id string, at time.Time) error {
	r.users[id].DeletedAt = &at
	return nil
}

var testJWT = auth.JWTConfig{Secret: "secret-para-tests", ExpMinutes: 60, Issuer: "test"}

func newUC() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return auth.NewAuthUseCase(repo, testJWT), repo
}

func register(t *testing.T, uc *auth.AuthUseCase, email, password, role string) *dto.UserResponse {
	t.Helper()
	out, err := uc.RegisterUser(dto.RegisterRequest{
		Name: "Usuario de Prueba", Email: email, Password: password, Role: role,
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterUser
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterUser_RolPorDefectoEsOperator(t *testing.T) {
	uc, _ := newUC()
	out := register(t, uc, "nuevo@example.com", "password123", "")
	assert.Equal(t, "operator", out.Role)
	assert.True(t, out.Active)
}

func TestRegisterUser_PasswordCorto_Rechaza(t *testing.T) {
	uc, _ := newUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{
		Name: "Usuario", Email: "corto@example.com", Password: "1234567",
	})
	require.Error(t, err)
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "password")
}

func TestRegisterUser_EmailDuplicado_ErrorDeCampo(t *testing.T) {
	uc, _ := newUC()
	register(t, uc, "dup@example.com", "password123", "")

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Name: "Otro", Email: "dup@example.com", Password: "password123",
	})
	require.Error(t, err)
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "email")
}

func TestRegisterUser_NoGuardaPasswordEnClaro(t *testing.T) {
	uc, repo := newUC()
	out := register(t, uc, "hash@example.com", "password123", "admin")

	stored := repo.users[out.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Exitoso_TokenConRol(t *testing.T) {
	uc, _ := newUC()
	register(t, uc, "manager@example.com", "password123", "manager")

	out, err := uc.Login(dto.LoginRequest{Email: "manager@example.com", Password: "password123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "manager", out.User.Role)

	userID, role, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "manager", role)
}

func TestLogin_PasswordIncorrecto_Unauthorized(t *testing.T) {
	uc, _ := newUC()
	register(t, uc, "user@example.com", "password123", "")

	_, err := uc.Login(dto.LoginRequest{Email: "user@example.com", Password: "incorrecto"})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestLogin_EmailInexistente_UserNotFound(t *testing.T) {
	uc, _ := newUC()
	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "password123"})
	assert.True(t, errors.Is(err, domain.ErrUserNotFound))
}

func TestLogin_UsuarioInactivo_Forbidden(t *testing.T) {
	uc, repo := newUC()
	out := register(t, uc, "inactivo@example.com", "password123", "")
	repo.users[out.ID].Active = false

	_, err := uc.Login(dto.LoginRequest{Email: "inactivo@example.com", Password: "password123"})
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

func TestLogin_UsuarioEliminado_UserNotFound(t *testing.T) {
	uc, repo := newUC()
	out := register(t, uc, "borrado@example.com", "password123", "")
	require.NoError(t, repo.SoftDelete(out.ID, time.Now()))

	_, err := uc.Login(dto.LoginRequest{Email: "borrado@example.com", Password: "password123"})
	assert.True(t, errors.Is(err, domain.ErrUserNotFound))
}

// ──────────────────────────────────────────────────────────────────────────────
// Deactivate
// ──────────────────────────────────────────────────────────────────────────────

func TestDeactivate_MarcaEliminado(t *testing.T) {
	uc, repo := newUC()
	out := register(t, uc, "baja@example.com", "password123", "")

	require.NoError(t, uc.Deactivate(out.ID))
	assert.True(t, repo.users[out.ID].Deleted())

	err := uc.Deactivate("id-inexistente")
	assert.True(t, errors.Is(err, domain.ErrUserNotFound))
}
