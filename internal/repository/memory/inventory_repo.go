package memory

import (
	"context"

	"storefront-service/internal/domain"
	"storefront-service/internal/repository"
)

type inventoryRepo struct {
	t *table[domain.Inventory]
}

func NewInventoryRepository() repository.InventoryRepository {
	return &inventoryRepo{t: newTable(
		func(i *domain.Inventory) *uint64 { return &i.ID },
		func(i domain.Inventory) domain.Inventory { return i },
	)}
}

func (r *inventoryRepo) FindAll(context.Context) ([]domain.Inventory, error) {
	return r.t.scan(nil), nil
}

func (r *inventoryRepo) FindByID(_ context.Context, id uint64) (*domain.Inventory, error) {
	return r.t.get(id), nil
}

func (r *inventoryRepo) FindByProductID(_ context.Context, productID uint64) (*domain.Inventory, error) {
	matches := r.t.scan(func(i *domain.Inventory) bool { return i.ProductID == productID })
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}

func (r *inventoryRepo) FindLowStock(context.Context) ([]domain.Inventory, error) {
	return r.t.scan(func(i *domain.Inventory) bool { return i.IsLowStock() }), nil
}

func (r *inventoryRepo) Save(_ context.Context, inventory *domain.Inventory) error {
	r.t.save(inventory)
	return nil
}

func (r *inventoryRepo) DeleteByID(_ context.Context, id uint64) error {
	r.t.delete(id)
	return nil
}

func (r *inventoryRepo) ExistsByID(_ context.Context, id uint64) (bool, error) {
	return r.t.exists(id), nil
}
