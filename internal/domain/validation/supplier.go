package validation

import (
	"github.com/jhoicas/stock-control-api/internal/domain"
	"github.com/jhoicas/stock-control-api/internal/domain/entity"
)

// Supplier valida los campos propios de un proveedor.
// La unicidad del CNPJ la agrega el caso de uso.
func Supplier(s *entity.Supplier) *domain.ValidationError {
	ve := domain.NewValidationError()
	if len(s.Name) < 3 {
		ve.Add("name", "debe tener al menos 3 caracteres")
	}
	if s.CNPJ == "" {
		ve.Add("cnpj", "es obligatorio")
	} else if !cnpjPattern.MatchString(s.CNPJ) {
		ve.Add("cnpj", "debe tener exactamente 14 dígitos")
	}
	if s.Email != "" && !emailPattern.MatchString(s.Email) {
		ve.Add("email", "no tiene un formato válido")
	}
	if s.Phone != "" && !phonePattern.MatchString(s.Phone) {
		ve.Add("phone", "debe tener 10 u 11 dígitos")
	}
	return ve
}
