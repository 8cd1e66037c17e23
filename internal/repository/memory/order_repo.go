package memory

import (
	"context"

	"storefront-service/internal/domain"
	"storefront-service/internal/repository"
)

type orderRepo struct {
	t *table[domain.Order]
}

func NewOrderRepository() repository.OrderRepository {
	t := newTable(func(o *domain.Order) *uint64 { return &o.ID }, cloneOrder)
	t.prepare = func(o *domain.Order) {
		for i := range o.Items {
			o.Items[i].OrderID = o.ID
		}
	}
	return &orderRepo{t: t}
}

func cloneOrder(o domain.Order) domain.Order {
	if o.Items != nil {
		o.Items = append(o.Items[:0:0], o.Items...)
	}
	return o
}

func (r *orderRepo) FindAll(context.Context) ([]domain.Order, error) {
	return r.t.scan(nil), nil
}

func (r *orderRepo) FindByID(_ context.Context, id uint64) (*domain.Order, error) {
	return r.t.get(id), nil
}

func (r *orderRepo) FindByStatus(_ context.Context, status string) ([]domain.Order, error) {
	return r.t.scan(func(o *domain.Order) bool { return o.Status.Matches(status) }), nil
}

func (r *orderRepo) Save(_ context.Context, order *domain.Order) error {
	r.t.save(order)
	return nil
}

func (r *orderRepo) DeleteByID(_ context.Context, id uint64) error {
	r.t.delete(id)
	return nil
}

func (r *orderRepo) ExistsByID(_ context.Context, id uint64) (bool, error) {
	return r.t.exists(id), nil
}
