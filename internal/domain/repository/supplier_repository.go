package repository

import (
	"time"

	"github.com/jhoicas/stock-control-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	GetByCNPJ(cnpj string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	List(onlyActive bool, limit, offset int) ([]*entity.Supplier, error)
	SoftDelete(id string, at time.Time) error
	// HardDelete devuelve domain.ErrIntegrity si existen productos asociados.
	HardDelete(id string) error
}
