package ledger

import (
	"context"

	"github.com/jhoicas/stock-control-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el insert del movimiento y la
// actualización de current_stock se confirmen juntos o no se confirme nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
