package validation

import (
	"github.com/jhoicas/stock-control-api/internal/domain"
	"github.com/jhoicas/stock-control-api/internal/domain/entity"
)

// User valida los campos propios de un usuario. La unicidad del email la
// agrega el caso de uso.
func User(u *entity.User) *domain.ValidationError {
	ve := domain.NewValidationError()
	if len(u.Name) < 3 {
		ve.Add("name", "debe tener al menos 3 caracteres")
	}
	if u.Email == "" {
		ve.Add("email", "es obligatorio")
	} else if !emailPattern.MatchString(u.Email) {
		ve.Add("email", "no tiene un formato válido")
	}
	if !u.Role.Valid() {
		ve.Add("role", "no es un rol válido")
	}
	return ve
}
