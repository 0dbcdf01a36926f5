package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stock-control-api/internal/application/dto"
	"github.com/jhoicas/stock-control-api/internal/domain"
	"github.com/jhoicas/stock-control-api/internal/domain/entity"
	"github.com/jhoicas/stock-control-api/internal/domain/repository"
	"github.com/jhoicas/stock-control-api/internal/domain/validation"
	"github.com/jhoicas/stock-control-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación y alta de usuarios.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario (acción administrativa): hashea el password con
// bcrypt y persiste. Email duplicado se reporta como error de campo.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	role := entity.RoleOperator
	if in.Role != "" {
		parsed, err := entity.ParseRole(in.Role)
		if err != nil {
			ve := domain.NewValidationError()
			ve.Add("role", "no es un rol válido")
			return nil, ve
		}
		role = parsed
	}
	now := time.Now()
	user := &entity.User{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Role:      role,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	ve := validation.User(user)
	if len(in.Password) < 8 {
		ve.Add("password", "debe tener al menos 8 caracteres")
	}
	if !ve.HasErrors() {
		if existing, err := uc.userRepo.FindByEmail(user.Email); err != nil {
			return nil, err
		} else if existing != nil {
			ve.Add("email", "ya está registrado")
		}
	}
	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hash)
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT con el claim de rol y retorna
// token + usuario. Usuarios inactivos o eliminados no pueden entrar.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active || user.Deleted() {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role.String(), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Deactivate marca un usuario como eliminado. Sus movimientos históricos
// permanecen referenciados.
func (uc *AuthUseCase) Deactivate(id string) error {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.userRepo.SoftDelete(id, time.Now())
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role.String(),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
