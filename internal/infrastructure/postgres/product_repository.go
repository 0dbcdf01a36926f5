package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-control-api/internal/domain"
	"github.com/jhoicas/stock-control-api/internal/domain/entity"
	"github.com/jhoicas/stock-control-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, sku, name, description, category_id, supplier_id, unit_of_measure,
	cost_price, selling_price, current_stock, minimum_stock, maximum_stock,
	active, deleted_at, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var unit int16
	err := row.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.CategoryID, &p.SupplierID, &unit,
		&p.CostPrice, &p.SellingPrice, &p.CurrentStock, &p.MinimumStock, &p.MaximumStock,
		&p.Active, &p.DeletedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	p.UnitOfMeasure = entity.UnitOfMeasure(unit)
	return &p, nil
}

// Create persiste un nuevo producto, incluido el stock inicial.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, sku, name, description, category_id, supplier_id, unit_of_measure,
			cost_price, selling_price, current_stock, minimum_stock, maximum_stock, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Description,
		product.CategoryID, product.SupplierID, int16(product.UnitOfMeasure),
		product.CostPrice, product.SellingPrice, product.CurrentStock,
		product.MinimumStock, product.MaximumStock, product.Active,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Los eliminados no se devuelven.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND deleted_at IS NULL`
	return scanProduct(r.q.QueryRow(context.Background(), query, id))
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1 AND deleted_at IS NULL`
	return scanProduct(r.q.QueryRow(context.Background(), query, sku))
}

// GetForUpdate bloquea la fila del producto con SELECT ... FOR UPDATE. El
// valor de current_stock leído es el vigente bajo el lock; toda decisión de
// suficiencia de stock se toma sobre él.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`
	return scanProduct(r.q.QueryRow(context.Background(), query, id))
}

// Update actualiza un producto existente. No toca sku ni current_stock: el
// stock solo cambia vía el motor de movimientos.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, category_id = $4, supplier_id = $5,
			unit_of_measure = $6, cost_price = $7, selling_price = $8,
			minimum_stock = $9, maximum_stock = $10, active = $11, updated_at = $12
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.CategoryID, product.SupplierID,
		int16(product.UnitOfMeasure), product.CostPrice, product.SellingPrice,
		product.MinimumStock, product.MaximumStock, product.Active, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock escribe únicamente current_stock (usado por el motor de
// movimientos dentro de la transacción que inserta el movimiento).
func (r *ProductRepo) UpdateStock(productID string, stock decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET current_stock = $2, updated_at = now() WHERE id = $1`,
		productID, stock,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// filterClauses arma el WHERE compartido entre List y Count. Los placeholders
// arrancan en $1.
func filterClauses(filter repository.ProductFilter) (string, []any) {
	where := ` WHERE deleted_at IS NULL`
	var args []any
	if filter.OnlyActive {
		where += ` AND active = true`
	}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		where += ` AND category_id = $` + strconv.Itoa(len(args))
	}
	if filter.SupplierID != "" {
		args = append(args, filter.SupplierID)
		where += ` AND supplier_id = $` + strconv.Itoa(len(args))
	}
	if filter.LowStock {
		where += ` AND current_stock <= minimum_stock`
	}
	if filter.OutOfStock {
		where += ` AND current_stock = 0`
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := strconv.Itoa(len(args))
		where += ` AND (name ILIKE $` + n + ` OR sku ILIKE $` + n + `)`
	}
	return where, args
}

// List lista productos aplicando los filtros, con paginación.
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	where, args := filterClauses(filter)
	args = append(args, filter.Limit, filter.Offset)
	query := `SELECT ` + productColumns + ` FROM products` + where +
		` ORDER BY name LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var unit int16
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.CategoryID, &p.SupplierID, &unit,
			&p.CostPrice, &p.SellingPrice, &p.CurrentStock, &p.MinimumStock, &p.MaximumStock,
			&p.Active, &p.DeletedAt, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.UnitOfMeasure = entity.UnitOfMeasure(unit)
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Count cuenta los productos que satisfacen el filtro, sin paginar.
func (r *ProductRepo) Count(filter repository.ProductFilter) (int, error) {
	where, args := filterClauses(filter)
	var count int
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM products`+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

// SoftDelete marca el producto como eliminado. El historial de movimientos
// permanece intacto.
func (r *ProductRepo) SoftDelete(id string, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`,
		id, at,
	)
	if err != nil {
		return fmt.Errorf("soft delete product: %w", err)
	}
	return nil
}

// HardDelete elimina físicamente el producto. Si tiene movimientos la FK lo
// impide y se devuelve domain.ErrIntegrity.
func (r *ProductRepo) HardDelete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrIntegrity
		}
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
