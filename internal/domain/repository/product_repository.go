package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/stock-control-api/internal/domain/entity"
)

// ProductFilter filtros de listado de productos.
type ProductFilter struct {
	CategoryID string
	SupplierID string
	LowStock   bool   // current_stock <= minimum_stock
	OutOfStock bool   // current_stock = 0
	Search     string // texto libre sobre name y sku
	OnlyActive bool
	Limit      int
	Offset     int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE). Solo tiene
	// sentido dentro de una transacción; es la base del motor de movimientos.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock escribe únicamente current_stock (usado por el motor de
	// movimientos dentro de la transacción que inserta el movimiento).
	UpdateStock(productID string, stock decimal.Decimal) error
	List(filter ProductFilter) ([]*entity.Product, error)
	Count(filter ProductFilter) (int, error)
	SoftDelete(id string, at time.Time) error
	// HardDelete devuelve domain.ErrIntegrity si el producto tiene movimientos.
	HardDelete(id string) error
}
