package repository

import (
	"context"

	"storefront-service/internal/domain"
)

// ProductRepository returns (nil, nil) from FindByID when the product does
// not exist. Save inserts when the ID is zero and updates otherwise.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id uint64) (*domain.Product, error)
	FindByCategory(ctx context.Context, category string) ([]domain.Product, error)
	FindByBrand(ctx context.Context, brand string) ([]domain.Product, error)
	SearchByName(ctx context.Context, fragment string) ([]domain.Product, error)
	Save(ctx context.Context, product *domain.Product) error
	DeleteByID(ctx context.Context, id uint64) error
	DeleteAll(ctx context.Context) error
	ExistsByID(ctx context.Context, id uint64) (bool, error)
}
