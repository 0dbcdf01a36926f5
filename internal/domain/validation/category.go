package validation

import (
	"github.com/jhoicas/stock-control-api/internal/domain"
	"github.com/jhoicas/stock-control-api/internal/domain/entity"
)

// Category valida los campos propios de una categoría.
// La unicidad del nombre la agrega el caso de uso (requiere el repositorio).
func Category(c *entity.Category) *domain.ValidationError {
	ve := domain.NewValidationError()
	if c.Name == "" {
		ve.Add("name", "es obligatorio")
	} else if len(c.Name) > 100 {
		ve.Add("name", "no puede exceder 100 caracteres")
	}
	if len(c.Description) > 500 {
		ve.Add("description", "no puede exceder 500 caracteres")
	}
	return ve
}
