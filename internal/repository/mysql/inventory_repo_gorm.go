package mysql

import (
	"context"
	"errors"

	"storefront-service/internal/domain"
	"storefront-service/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type inventoryRepo struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewInventoryRepository(db *gorm.DB, logger *zap.Logger) repository.InventoryRepository {
	return &inventoryRepo{db: db, logger: logger}
}

func (r *inventoryRepo) FindAll(ctx context.Context) ([]domain.Inventory, error) {
	out := make([]domain.Inventory, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		r.logger.Error("inventory FindAll failed", zap.Error(err))
		return nil, err
	}
	return out, nil
}

func (r *inventoryRepo) FindByID(ctx context.Context, id uint64) (*domain.Inventory, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *inventoryRepo) FindByProductID(ctx context.Context, productID uint64) (*domain.Inventory, error) {
	return r.first(r.db.WithContext(ctx).Where("product_id = ?", productID))
}

func (r *inventoryRepo) first(q *gorm.DB) (*domain.Inventory, error) {
	var inv domain.Inventory
	if err := q.Order("id").First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("inventory lookup failed", zap.Error(err))
		return nil, err
	}
	return &inv, nil
}

func (r *inventoryRepo) FindLowStock(ctx context.Context) ([]domain.Inventory, error) {
	out := make([]domain.Inventory, 0)
	if err := r.db.WithContext(ctx).Where("quantity <= reorder_level").Order("id").Find(&out).Error; err != nil {
		r.logger.Error("inventory FindLowStock failed", zap.Error(err))
		return nil, err
	}
	return out, nil
}

func (r *inventoryRepo) Save(ctx context.Context, inventory *domain.Inventory) error {
	db := r.db.WithContext(ctx)

	if inventory.ID != 0 {
		if err := db.Save(inventory).Error; err != nil {
			r.logger.Error("inventory update failed", zap.Uint64("id", inventory.ID), zap.Error(err))
			return err
		}
		return nil
	}

	if err := db.Create(inventory).Error; err != nil {
		r.logger.Error("inventory create failed", zap.Error(err))
		return err
	}
	if inventory.ID == 0 {
		return errIDNotAssigned
	}
	return nil
}

func (r *inventoryRepo) DeleteByID(ctx context.Context, id uint64) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Inventory{}, id).Error; err != nil {
		r.logger.Error("inventory DeleteByID failed", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (r *inventoryRepo) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Inventory{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
