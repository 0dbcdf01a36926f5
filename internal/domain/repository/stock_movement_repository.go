package repository

import "github.com/jhoicas/stock-control-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia para el ledger.
// Deliberadamente sin Update ni Delete: los movimientos son inmutables.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
}
