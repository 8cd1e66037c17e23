package repository

import (
	"context"

	"storefront-service/internal/domain"
)

// OrderRepository loads orders together with their items.
// FindByID returns (nil, nil) when the order does not exist.
type OrderRepository interface {
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByID(ctx context.Context, id uint64) (*domain.Order, error)
	FindByStatus(ctx context.Context, status string) ([]domain.Order, error)
	Save(ctx context.Context, order *domain.Order) error
	DeleteByID(ctx context.Context, id uint64) error
	ExistsByID(ctx context.Context, id uint64) (bool, error)
}
