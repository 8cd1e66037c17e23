package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"storefront-service/internal/domain"
	"storefront-service/internal/repository"

	"go.uber.org/zap"
)

type OrderItemInput struct {
	ProductID   uint64
	ProductName string
	Quantity    int
	Price       float64
}

type CreateOrderInput struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	Notes           string
	TotalAmount     float64
	PaymentMethod   string
	Status          string
	Items           []OrderItemInput
}

type OrderService struct {
	repo   repository.OrderRepository
	events *EventDispatcher
	logger *zap.Logger
}

func NewOrderService(r repository.OrderRepository, events *EventDispatcher, logger *zap.Logger) *OrderService {
	return &OrderService{
		repo:   r,
		events: events,
		logger: logger,
	}
}

func (u *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (u *OrderService) GetOrderByID(ctx context.Context, id uint64) (*domain.Order, error) {
	o, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	if o == nil {
		return nil, domain.ErrOrderNotFound
	}
	return o, nil
}

// ListOrdersByStatus matches the status ignoring case.
func (u *OrderService) ListOrdersByStatus(ctx context.Context, status string) ([]domain.Order, error) {
	orders, err := u.repo.FindByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list orders by status: %w", err)
	}
	return orders, nil
}

// CreateOrder stamps the order date, defaults the status to PENDING and
// derives the product count from the item quantities.
func (u *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	order := &domain.Order{
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		ShippingAddress: in.ShippingAddress,
		Notes:           in.Notes,
		TotalAmount:     in.TotalAmount,
		PaymentMethod:   in.PaymentMethod,
		OrderDate:       time.Now(),
		Status:          domain.StatusPending,
	}
	if strings.TrimSpace(in.Status) != "" {
		order.Status = domain.OrderStatus(in.Status)
	}

	for _, item := range in.Items {
		if item.Quantity < 0 {
			return nil, domain.NewValidationError("quantity", "Item quantity must not be negative")
		}
		order.AddItem(domain.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	if err := u.repo.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	u.logger.Info("order created", zap.Uint64("order_id", order.ID), zap.Int("product_count", order.ProductCount))
	u.events.Dispatch(domain.EventOrderCreated, domain.NewOrderEvent(order))
	return order, nil
}

func (u *OrderService) UpdateOrderStatus(ctx context.Context, id uint64, status string) (*domain.Order, error) {
	if strings.TrimSpace(status) == "" {
		return nil, domain.NewValidationError("status", "Status is required")
	}

	return u.mutate(ctx, id, func(o *domain.Order) error {
		o.Status = domain.OrderStatus(status)
		return nil
	})
}

// UpdateOrder applies a sparse merge: only recognized keys present in
// updates are written.
func (u *OrderService) UpdateOrder(ctx context.Context, id uint64, updates map[string]json.RawMessage) (*domain.Order, error) {
	return u.mutate(ctx, id, func(o *domain.Order) error {
		return domain.ApplyOrderUpdates(o, updates)
	})
}

// ReplaceOrder is the legacy full update.
func (u *OrderService) ReplaceOrder(ctx context.Context, id uint64, r domain.OrderReplacement) (*domain.Order, error) {
	return u.mutate(ctx, id, func(o *domain.Order) error {
		o.Replace(r)
		return nil
	})
}

func (u *OrderService) mutate(ctx context.Context, id uint64, apply func(*domain.Order) error) (*domain.Order, error) {
	o, err := u.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := apply(o); err != nil {
		return nil, err
	}

	if err := u.repo.Save(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to update order %d: %w", id, err)
	}

	u.events.Dispatch(domain.EventOrderUpdated, domain.NewOrderEvent(o))
	return o, nil
}

func (u *OrderService) DeleteOrder(ctx context.Context, id uint64) error {
	exists, err := u.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete order %d: %w", id, err)
	}
	if !exists {
		return domain.ErrOrderNotFound
	}

	if err := u.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete order %d: %w", id, err)
	}

	u.events.Dispatch(domain.EventOrderDeleted, domain.OrderEvent{OrderID: id})
	return nil
}
