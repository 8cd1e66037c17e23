package domain

import "time"

// Routing keys for events published on the storefront exchange.
const (
	EventProductCreated    = "product.created"
	EventProductUpdated    = "product.updated"
	EventProductDeleted    = "product.deleted"
	EventOrderCreated      = "order.created"
	EventOrderUpdated      = "order.updated"
	EventOrderDeleted      = "order.deleted"
	EventInventoryLowStock = "inventory.low_stock"
)

type ProductEvent struct {
	ProductID uint64  `json:"productId"`
	Name      string  `json:"name,omitempty"`
	Category  string  `json:"category,omitempty"`
	Price     float64 `json:"price,omitempty"`
}

type OrderEvent struct {
	OrderID      uint64      `json:"orderId"`
	Status       OrderStatus `json:"status,omitempty"`
	TotalAmount  float64     `json:"totalAmount,omitempty"`
	ProductCount int         `json:"productCount,omitempty"`
	OrderDate    time.Time   `json:"orderDate,omitempty"`
}

type LowStockEvent struct {
	InventoryID  uint64    `json:"inventoryId"`
	ProductID    uint64    `json:"productId"`
	ProductName  string    `json:"productName"`
	Quantity     int       `json:"quantity"`
	ReorderLevel int       `json:"reorderLevel"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

func NewProductEvent(p *Product) ProductEvent {
	return ProductEvent{ProductID: p.ID, Name: p.Name, Category: p.Category, Price: p.Price}
}

func NewOrderEvent(o *Order) OrderEvent {
	return OrderEvent{
		OrderID:      o.ID,
		Status:       o.Status,
		TotalAmount:  o.TotalAmount,
		ProductCount: o.ProductCount,
		OrderDate:    o.OrderDate,
	}
}

func NewLowStockEvent(i *Inventory) LowStockEvent {
	return LowStockEvent{
		InventoryID:  i.ID,
		ProductID:    i.ProductID,
		ProductName:  i.ProductName,
		Quantity:     i.Quantity,
		ReorderLevel: i.ReorderLevel,
		LastUpdated:  i.LastUpdated,
	}
}
