package mocks

import (
	"context"

	"storefront-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct {
	mock.Mock
}

type MockOrderRepository struct {
	mock.Mock
}

type MockInventoryRepository struct {
	mock.Mock
}

type MockPublisher struct {
	mock.Mock
}

type MockProductCache struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, topic string, message any) error {
	args := m.Called(ctx, topic, message)
	return args.Error(0)
}

// products

func (m *MockProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	return productsArg(args, 0), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uint64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	args := m.Called(ctx, category)
	return productsArg(args, 0), args.Error(1)
}

func (m *MockProductRepository) FindByBrand(ctx context.Context, brand string) ([]domain.Product, error) {
	args := m.Called(ctx, brand)
	return productsArg(args, 0), args.Error(1)
}

func (m *MockProductRepository) SearchByName(ctx context.Context, fragment string) ([]domain.Product, error) {
	args := m.Called(ctx, fragment)
	return productsArg(args, 0), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteByID(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProductRepository) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func productsArg(args mock.Arguments, i int) []domain.Product {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).([]domain.Product)
}

// orders

func (m *MockOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	return ordersArg(args, 0), args.Error(1)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByStatus(ctx context.Context, status string) ([]domain.Order, error) {
	args := m.Called(ctx, status)
	return ordersArg(args, 0), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteByID(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func ordersArg(args mock.Arguments, i int) []domain.Order {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).([]domain.Order)
}

// inventory

func (m *MockInventoryRepository) FindAll(ctx context.Context) ([]domain.Inventory, error) {
	args := m.Called(ctx)
	return inventoryArg(args, 0), args.Error(1)
}

func (m *MockInventoryRepository) FindByID(ctx context.Context, id uint64) (*domain.Inventory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) FindByProductID(ctx context.Context, productID uint64) (*domain.Inventory, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) FindLowStock(ctx context.Context) ([]domain.Inventory, error) {
	args := m.Called(ctx)
	return inventoryArg(args, 0), args.Error(1)
}

func (m *MockInventoryRepository) Save(ctx context.Context, inventory *domain.Inventory) error {
	args := m.Called(ctx, inventory)
	return args.Error(0)
}

func (m *MockInventoryRepository) DeleteByID(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInventoryRepository) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func inventoryArg(args mock.Arguments, i int) []domain.Inventory {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).([]domain.Inventory)
}

// cache

func (m *MockProductCache) GetProduct(ctx context.Context, id uint64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductCache) SetProduct(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductCache) InvalidateProduct(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductCache) FlushProducts(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
