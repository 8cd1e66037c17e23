package mysql

import (
	"context"
	"errors"

	"storefront-service/internal/domain"
	"storefront-service/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errIDNotAssigned = errors.New("database did not assign an id")

type orderRepo struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewOrderRepository(db *gorm.DB, logger *zap.Logger) repository.OrderRepository {
	return &orderRepo{db: db, logger: logger}
}

func (r *orderRepo) FindAll(ctx context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, 0)
	if err := r.db.WithContext(ctx).Preload("Items").Order("id").Find(&out).Error; err != nil {
		r.logger.Error("order FindAll failed", zap.Error(err))
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.WithContext(ctx).Preload("Items").First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("order FindByID failed", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindByStatus(ctx context.Context, status string) ([]domain.Order, error) {
	out := make([]domain.Order, 0)
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("LOWER(status) = LOWER(?)", status).
		Order("id").
		Find(&out).Error
	if err != nil {
		r.logger.Error("order FindByStatus failed", zap.String("status", status), zap.Error(err))
		return nil, err
	}
	return out, nil
}

// Save creates the order with its items when it is new. Existing orders are
// updated without touching their items.
func (r *orderRepo) Save(ctx context.Context, order *domain.Order) error {
	db := r.db.WithContext(ctx)

	if order.ID != 0 {
		if err := db.Omit(clause.Associations).Save(order).Error; err != nil {
			r.logger.Error("order update failed", zap.Uint64("id", order.ID), zap.Error(err))
			return err
		}
		return nil
	}

	result := db.Create(order)
	if result.Error != nil {
		r.logger.Error("order create failed", zap.Error(result.Error))
		return result.Error
	}
	if order.ID == 0 {
		r.logger.Warn("order saved but id was not assigned", zap.Int64("rows", result.RowsAffected))
		return errIDNotAssigned
	}

	r.logger.Debug("order saved", zap.Uint64("id", order.ID), zap.Int("items", len(order.Items)))
	return nil
}

func (r *orderRepo) DeleteByID(ctx context.Context, id uint64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&domain.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Order{}, id).Error
	})
	if err != nil {
		r.logger.Error("order DeleteByID failed", zap.Uint64("id", id), zap.Error(err))
	}
	return err
}

func (r *orderRepo) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Order{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
