package repository

import (
	"time"

	"github.com/jhoicas/stock-control-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(onlyActive bool, limit, offset int) ([]*entity.User, error)
	SoftDelete(id string, at time.Time) error
}
