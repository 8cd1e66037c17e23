package repository

import (
	"context"

	"storefront-service/internal/domain"
)

type InventoryRepository interface {
	FindAll(ctx context.Context) ([]domain.Inventory, error)
	FindByID(ctx context.Context, id uint64) (*domain.Inventory, error)
	// FindByProductID returns the first record for the product, or (nil, nil).
	FindByProductID(ctx context.Context, productID uint64) (*domain.Inventory, error)
	FindLowStock(ctx context.Context) ([]domain.Inventory, error)
	Save(ctx context.Context, inventory *domain.Inventory) error
	DeleteByID(ctx context.Context, id uint64) error
	ExistsByID(ctx context.Context, id uint64) (bool, error)
}
