package repository

import (
	"time"

	"github.com/jhoicas/stock-control-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Las lecturas excluyen registros con deleted_at, siempre de forma explícita.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	Update(category *entity.Category) error
	List(onlyActive bool, limit, offset int) ([]*entity.Category, error)
	// SoftDelete marca deleted_at; el registro queda referencialmente intacto.
	SoftDelete(id string, at time.Time) error
	// HardDelete elimina físicamente. Devuelve domain.ErrIntegrity si existen
	// productos que referencian la categoría (restrict-on-delete).
	HardDelete(id string) error
}
