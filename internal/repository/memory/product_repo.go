package memory

import (
	"context"
	"strings"

	"storefront-service/internal/domain"
	"storefront-service/internal/repository"
)

type productRepo struct {
	t *table[domain.Product]
}

func NewProductRepository() repository.ProductRepository {
	return &productRepo{t: newTable(
		func(p *domain.Product) *uint64 { return &p.ID },
		cloneProduct,
	)}
}

func cloneProduct(p domain.Product) domain.Product {
	if p.Features != nil {
		p.Features = append(p.Features[:0:0], p.Features...)
	}
	if p.OriginalPrice != nil {
		v := *p.OriginalPrice
		p.OriginalPrice = &v
	}
	return p
}

func (r *productRepo) FindAll(context.Context) ([]domain.Product, error) {
	return r.t.scan(nil), nil
}

func (r *productRepo) FindByID(_ context.Context, id uint64) (*domain.Product, error) {
	return r.t.get(id), nil
}

func (r *productRepo) FindByCategory(_ context.Context, category string) ([]domain.Product, error) {
	return r.t.scan(func(p *domain.Product) bool { return p.Category == category }), nil
}

func (r *productRepo) FindByBrand(_ context.Context, brand string) ([]domain.Product, error) {
	return r.t.scan(func(p *domain.Product) bool { return p.Brand == brand }), nil
}

func (r *productRepo) SearchByName(_ context.Context, fragment string) ([]domain.Product, error) {
	needle := strings.ToLower(fragment)
	return r.t.scan(func(p *domain.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), needle)
	}), nil
}

func (r *productRepo) Save(_ context.Context, product *domain.Product) error {
	r.t.save(product)
	return nil
}

func (r *productRepo) DeleteByID(_ context.Context, id uint64) error {
	r.t.delete(id)
	return nil
}

func (r *productRepo) DeleteAll(context.Context) error {
	r.t.clear()
	return nil
}

func (r *productRepo) ExistsByID(_ context.Context, id uint64) (bool, error) {
	return r.t.exists(id), nil
}
