package core

import (
	"context"
	"errors"

	"lanchonete-pedidos/pkg/models"
)

// ErrOrderNotFound is the only business-level error in the system: the
// requested id has no matching row.
var ErrOrderNotFound = errors.New("Order not found")

// Repository is the persistence surface the service works against.
type Repository interface {
	Create(ctx context.Context, order *models.Order) (int64, error)
	List(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id int64) (models.Order, error)
	Update(ctx context.Context, id int64, order *models.Order) error
	Delete(ctx context.Context, id int64) error
}
