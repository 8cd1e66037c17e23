package services

import (
	"context"
	"sync"
	"sync/atomic"

	"storefront-service/internal/domain"
	"storefront-service/internal/mocks"
	"storefront-service/internal/repository"

	"go.uber.org/zap"
)

func newTestDispatcher() (*EventDispatcher, *mocks.MockPublisher) {
	pub := new(mocks.MockPublisher)
	return NewEventDispatcher(pub, zap.NewNop()), pub
}

func createMockProduct(id uint64, name string, price float64) *domain.Product {
	return &domain.Product{
		ID:       id,
		Name:     name,
		Brand:    TestBrand,
		Price:    price,
		Category: TestCategory,
		Features: []string{"durable"},
	}
}

func intPtr(v int) *int             { return &v }
func uint64Ptr(v uint64) *uint64    { return &v }
func float64Ptr(v float64) *float64 { return &v }
func stringPtr(v string) *string    { return &v }

const (
	TestProductID = uint64(1)
	TestOrderID   = uint64(1)
	TestBrand     = "Acme"
	TestCategory  = "tools"
)

// blockingProductRepo parks the first FindByID after it has read the row
// until release is closed. Later calls pass straight through.
type blockingProductRepo struct {
	repository.ProductRepository

	entered  chan struct{}
	release  chan struct{}
	calls    atomic.Int32
	firstCtx context.Context
}

func newBlockingProductRepo(inner repository.ProductRepository) *blockingProductRepo {
	return &blockingProductRepo{
		ProductRepository: inner,
		entered:           make(chan struct{}),
		release:           make(chan struct{}),
	}
}

func (r *blockingProductRepo) FindByID(ctx context.Context, id uint64) (*domain.Product, error) {
	p, err := r.ProductRepository.FindByID(ctx, id)
	if r.calls.Add(1) == 1 {
		r.firstCtx = ctx
		close(r.entered)
		<-r.release
	}
	return p, err
}

type fakeProductCache struct {
	mu    sync.Mutex
	items map[uint64]domain.Product
}

func newFakeProductCache() *fakeProductCache {
	return &fakeProductCache{items: make(map[uint64]domain.Product)}
}

func (c *fakeProductCache) GetProduct(_ context.Context, id uint64) (*domain.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.items[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (c *fakeProductCache) SetProduct(_ context.Context, p *domain.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[p.ID] = *p
	return nil
}

func (c *fakeProductCache) InvalidateProduct(_ context.Context, id uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, id)
	return nil
}

func (c *fakeProductCache) FlushProducts(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.items)
	return nil
}
