package entity

import "time"

// Category agrupa productos. Soporta borrado lógico vía DeletedAt:
// una categoría con productos asociados nunca se elimina físicamente.
type Category struct {
	ID          string
	Name        string // único, máx 100 caracteres
	Description string // opcional, máx 500 caracteres
	Active      bool
	DeletedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Deleted indica si la categoría está marcada como eliminada.
func (c *Category) Deleted() bool { return c.DeletedAt != nil }
