package services

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"storefront-service/internal/domain"
	"storefront-service/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ProductCache is a read-through cache for single products.
// GetProduct returns (nil, nil) on a miss.
type ProductCache interface {
	GetProduct(ctx context.Context, id uint64) (*domain.Product, error)
	SetProduct(ctx context.Context, p *domain.Product) error
	InvalidateProduct(ctx context.Context, id uint64) error
	FlushProducts(ctx context.Context) error
}

type ProductService struct {
	repo   repository.ProductRepository
	events *EventDispatcher
	logger *zap.Logger
	cache  ProductCache
	group  singleflight.Group

	// versions guard cache fills against concurrent writes; epoch moves on
	// delete-all.
	versionMu sync.Mutex
	versions  map[uint64]uint64
	epoch     uint64
}

const lookupTimeout = 5 * time.Second

func NewProductService(r repository.ProductRepository, events *EventDispatcher, logger *zap.Logger) *ProductService {
	return &ProductService{
		repo:     r,
		events:   events,
		logger:   logger,
		versions: make(map[uint64]uint64),
	}
}

func (s *ProductService) SetCache(c ProductCache) {
	s.cache = c
}

func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uint64) (*domain.Product, error) {
	if p := s.cachedProduct(ctx, id); p != nil {
		return p, nil
	}

	// Concurrent misses for the same id share one store lookup. The lookup is
	// detached from the first caller so its cancellation does not fail the rest.
	ch := s.group.DoChan(flightKey(id), func() (any, error) {
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lookupTimeout)
		defer cancel()
		return s.load(lookupCtx, id)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, fmt.Errorf("get product %d: %w", id, res.Err)
	}

	p := res.Val.(*domain.Product)
	if p == nil {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

// load reads a product from the store and fills the cache with it, unless
// the product was written or deleted while the read was in flight.
func (s *ProductService) load(ctx context.Context, id uint64) (*domain.Product, error) {
	version := s.cacheVersion(id)

	p, err := s.repo.FindByID(ctx, id)
	if err != nil || p == nil {
		return p, err
	}

	if err := s.fillCache(ctx, version, p); err != nil {
		s.logger.Warn("product cache set failed", zap.Uint64("id", id), zap.Error(err))
	}
	return p, nil
}

func (s *ProductService) cacheVersion(id uint64) [2]uint64 {
	s.versionMu.Lock()
	defer s.versionMu.Unlock()
	return [2]uint64{s.epoch, s.versions[id]}
}

func (s *ProductService) fillCache(ctx context.Context, version [2]uint64, p *domain.Product) error {
	if s.cache == nil {
		return nil
	}

	s.versionMu.Lock()
	defer s.versionMu.Unlock()
	if version != [2]uint64{s.epoch, s.versions[p.ID]} {
		return nil
	}
	return s.cache.SetProduct(ctx, p)
}

func (s *ProductService) cachedProduct(ctx context.Context, id uint64) *domain.Product {
	if s.cache == nil {
		return nil
	}
	p, err := s.cache.GetProduct(ctx, id)
	if err != nil {
		s.logger.Warn("product cache get failed", zap.Uint64("id", id), zap.Error(err))
		return nil
	}
	return p
}

func (s *ProductService) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	products, err := s.repo.FindByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	return products, nil
}

func (s *ProductService) ListByBrand(ctx context.Context, brand string) ([]domain.Product, error) {
	products, err := s.repo.FindByBrand(ctx, brand)
	if err != nil {
		return nil, fmt.Errorf("list products by brand: %w", err)
	}
	return products, nil
}

func (s *ProductService) SearchByName(ctx context.Context, name string) ([]domain.Product, error) {
	products, err := s.repo.SearchByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return products, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	p.ID = 0
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("Failed to save product: %w", err)
	}

	s.events.Dispatch(domain.EventProductCreated, domain.NewProductEvent(p))
	return p, nil
}

// UpdateProduct replaces every field of an existing product.
func (s *ProductService) UpdateProduct(ctx context.Context, id uint64, in *domain.Product) (*domain.Product, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("Failed to update product: %w", err)
	}
	if existing == nil {
		return nil, domain.ErrProductNotFound
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	existing.ReplaceWith(in)
	if err := s.repo.Save(ctx, existing); err != nil {
		return nil, fmt.Errorf("Failed to update product: %w", err)
	}

	s.invalidate(ctx, id)
	s.events.Dispatch(domain.EventProductUpdated, domain.NewProductEvent(existing))
	return existing, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uint64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	if !exists {
		return domain.ErrProductNotFound
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}

	s.invalidate(ctx, id)
	s.events.Dispatch(domain.EventProductDeleted, domain.ProductEvent{ProductID: id})
	return nil
}

func (s *ProductService) DeleteAllProducts(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete all products: %w", err)
	}

	s.versionMu.Lock()
	s.epoch++
	clear(s.versions)
	s.versionMu.Unlock()

	if s.cache != nil {
		if err := s.cache.FlushProducts(ctx); err != nil {
			s.logger.Warn("product cache flush failed", zap.Error(err))
		}
	}
	return nil
}

// WarmupCache loads the given products into the cache. Unknown ids and
// lookup failures are logged and skipped.
func (s *ProductService) WarmupCache(ctx context.Context, ids []uint64) error {
	if s.cache == nil {
		return nil
	}

	for _, id := range ids {
		version := s.cacheVersion(id)
		p, err := s.repo.FindByID(ctx, id)
		if err != nil {
			s.logger.Warn("failed to warm up product cache", zap.Uint64("id", id), zap.Error(err))
			continue
		}
		if p == nil {
			continue
		}
		if err := s.fillCache(ctx, version, p); err != nil {
			return fmt.Errorf("warm up product %d: %w", id, err)
		}
	}
	return nil
}

// invalidate bumps the product's cache version before deleting its key, so a
// lookup that read the previous row cannot write it back afterwards.
func (s *ProductService) invalidate(ctx context.Context, id uint64) {
	s.versionMu.Lock()
	s.versions[id]++
	s.versionMu.Unlock()
	s.group.Forget(flightKey(id))

	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateProduct(ctx, id); err != nil {
		s.logger.Warn("product cache invalidate failed", zap.Uint64("id", id), zap.Error(err))
	}
}

func flightKey(id uint64) string {
	return strconv.FormatUint(id, 10)
}
