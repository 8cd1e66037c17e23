package mysql

import (
	"context"
	"errors"
	"strings"

	"storefront-service/internal/domain"
	"storefront-service/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type productRepo struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewProductRepository(db *gorm.DB, logger *zap.Logger) repository.ProductRepository {
	return &productRepo{db: db, logger: logger}
}

func (r *productRepo) FindAll(ctx context.Context) ([]domain.Product, error) {
	return r.find("FindAll", r.db.WithContext(ctx))
}

func (r *productRepo) FindByID(ctx context.Context, id uint64) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("product FindByID failed", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// Category and brand must match exactly, so the comparison is done on the
// binary form to bypass the column's case-insensitive collation.
func (r *productRepo) FindByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return r.find("FindByCategory", r.db.WithContext(ctx).Where("BINARY category = ?", category))
}

func (r *productRepo) FindByBrand(ctx context.Context, brand string) ([]domain.Product, error) {
	return r.find("FindByBrand", r.db.WithContext(ctx).Where("BINARY brand = ?", brand))
}

func (r *productRepo) SearchByName(ctx context.Context, fragment string) ([]domain.Product, error) {
	pattern := "%" + escapeLike(strings.ToLower(fragment)) + "%"
	return r.find("SearchByName", r.db.WithContext(ctx).Where("LOWER(name) LIKE ?", pattern))
}

func (r *productRepo) find(op string, q *gorm.DB) ([]domain.Product, error) {
	out := make([]domain.Product, 0)
	if err := q.Order("id").Find(&out).Error; err != nil {
		r.logger.Error("product query failed", zap.String("op", op), zap.Error(err))
		return nil, err
	}
	return out, nil
}

func (r *productRepo) Save(ctx context.Context, product *domain.Product) error {
	db := r.db.WithContext(ctx)

	if product.ID != 0 {
		if err := db.Save(product).Error; err != nil {
			r.logger.Error("product update failed", zap.Uint64("id", product.ID), zap.Error(err))
			return err
		}
		return nil
	}

	result := db.Create(product)
	if result.Error != nil {
		r.logger.Error("product create failed", zap.Error(result.Error))
		return result.Error
	}
	if product.ID == 0 {
		return errIDNotAssigned
	}
	return nil
}

func (r *productRepo) DeleteByID(ctx context.Context, id uint64) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Product{}, id).Error; err != nil {
		r.logger.Error("product DeleteByID failed", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (r *productRepo) DeleteAll(ctx context.Context) error {
	result := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.Product{})
	if result.Error != nil {
		r.logger.Error("product DeleteAll failed", zap.Error(result.Error))
		return result.Error
	}
	r.logger.Info("all products deleted", zap.Int64("rows", result.RowsAffected))
	return nil
}

func (r *productRepo) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
