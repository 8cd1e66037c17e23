package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storefront-service/internal/domain"
	"storefront-service/internal/repository"

	"go.uber.org/zap"
)

// CreateInventoryInput uses pointers where presence is part of validation.
type CreateInventoryInput struct {
	ProductID    *uint64
	ProductName  string
	Quantity     *int
	ReorderLevel *int
	UnitPrice    *float64
	Location     string
}

// InventoryUpdate overwrites only the fields that are set.
type InventoryUpdate struct {
	Quantity     *int
	ReorderLevel *int
	UnitPrice    *float64
	Location     *string
}

type StockAdjustment struct {
	Type   domain.AdjustmentType
	Amount int
	Reason string
}

type InventoryService struct {
	repo   repository.InventoryRepository
	events *EventDispatcher
	logger *zap.Logger
}

func NewInventoryService(r repository.InventoryRepository, events *EventDispatcher, logger *zap.Logger) *InventoryService {
	return &InventoryService{
		repo:   r,
		events: events,
		logger: logger,
	}
}

func (s *InventoryService) ListInventory(ctx context.Context) ([]domain.Inventory, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	return items, nil
}

func (s *InventoryService) GetInventory(ctx context.Context, id uint64) (*domain.Inventory, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get inventory %d: %w", id, err)
	}
	if inv == nil {
		return nil, domain.ErrInventoryNotFound
	}
	return inv, nil
}

func (s *InventoryService) GetInventoryByProductID(ctx context.Context, productID uint64) (*domain.Inventory, error) {
	inv, err := s.repo.FindByProductID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get inventory for product %d: %w", productID, err)
	}
	if inv == nil {
		return nil, domain.ErrInventoryNotFound
	}
	return inv, nil
}

func (s *InventoryService) ListLowStock(ctx context.Context) ([]domain.Inventory, error) {
	items, err := s.repo.FindLowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	return items, nil
}

func (s *InventoryService) CreateInventory(ctx context.Context, in CreateInventoryInput) (*domain.Inventory, error) {
	if err := validateCreateInventory(in); err != nil {
		return nil, err
	}

	inv := &domain.Inventory{
		ProductID:    *in.ProductID,
		ProductName:  in.ProductName,
		Quantity:     *in.Quantity,
		ReorderLevel: domain.DefaultReorderLevel,
		UnitPrice:    *in.UnitPrice,
		Location:     in.Location,
		LastUpdated:  time.Now(),
	}
	if in.ReorderLevel != nil {
		inv.ReorderLevel = *in.ReorderLevel
	}

	if err := s.repo.Save(ctx, inv); err != nil {
		return nil, fmt.Errorf("error creating inventory: %w", err)
	}

	s.notifyIfLow(inv)
	return inv, nil
}

func validateCreateInventory(in CreateInventoryInput) error {
	switch {
	case in.ProductID == nil:
		return domain.NewValidationError("productId", "Product ID is required")
	case strings.TrimSpace(in.ProductName) == "":
		return domain.NewValidationError("productName", "Product name is required")
	case in.Quantity == nil || *in.Quantity < 0:
		return domain.NewValidationError("quantity", "Valid quantity is required")
	case in.UnitPrice == nil || *in.UnitPrice <= 0:
		return domain.NewValidationError("unitPrice", "Valid unit price is required")
	case in.ReorderLevel != nil && *in.ReorderLevel < 0:
		return domain.NewValidationError("reorderLevel", "Reorder level must not be negative")
	}
	return nil
}

func (s *InventoryService) UpdateInventory(ctx context.Context, id uint64, in InventoryUpdate) (*domain.Inventory, error) {
	switch {
	case in.Quantity != nil && *in.Quantity < 0:
		return nil, domain.NewValidationError("quantity", "Valid quantity is required")
	case in.UnitPrice != nil && *in.UnitPrice <= 0:
		return nil, domain.NewValidationError("unitPrice", "Valid unit price is required")
	case in.ReorderLevel != nil && *in.ReorderLevel < 0:
		return nil, domain.NewValidationError("reorderLevel", "Reorder level must not be negative")
	}

	return s.mutate(ctx, id, func(inv *domain.Inventory) error {
		if in.Quantity != nil {
			inv.Quantity = *in.Quantity
		}
		if in.ReorderLevel != nil {
			inv.ReorderLevel = *in.ReorderLevel
		}
		if in.UnitPrice != nil {
			inv.UnitPrice = *in.UnitPrice
		}
		if in.Location != nil {
			inv.Location = *in.Location
		}
		return nil
	})
}

func (s *InventoryService) AdjustStock(ctx context.Context, id uint64, adj StockAdjustment) (*domain.Inventory, error) {
	inv, err := s.mutate(ctx, id, func(inv *domain.Inventory) error {
		return inv.Adjust(adj.Type, adj.Amount)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("stock adjusted",
		zap.Uint64("inventory_id", id),
		zap.String("type", string(adj.Type)),
		zap.Int("amount", adj.Amount),
		zap.String("reason", adj.Reason),
		zap.Int("quantity", inv.Quantity),
	)
	return inv, nil
}

func (s *InventoryService) mutate(ctx context.Context, id uint64, apply func(*domain.Inventory) error) (*domain.Inventory, error) {
	inv, err := s.GetInventory(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := apply(inv); err != nil {
		return nil, err
	}
	inv.LastUpdated = time.Now()

	if err := s.repo.Save(ctx, inv); err != nil {
		return nil, fmt.Errorf("error updating inventory: %w", err)
	}

	s.notifyIfLow(inv)
	return inv, nil
}

func (s *InventoryService) DeleteInventory(ctx context.Context, id uint64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting inventory: %w", err)
	}
	if !exists {
		return domain.ErrInventoryNotFound
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("error deleting inventory: %w", err)
	}
	return nil
}

func (s *InventoryService) notifyIfLow(inv *domain.Inventory) {
	if inv.IsLowStock() {
		s.events.Dispatch(domain.EventInventoryLowStock, domain.NewLowStockEvent(inv))
	}
}
