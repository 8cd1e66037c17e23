package domain

import (
	"strings"
	"time"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusShipped    OrderStatus = "SHIPPED"
	StatusCompleted  OrderStatus = "COMPLETED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

// Matches compares statuses ignoring case.
func (s OrderStatus) Matches(other string) bool {
	return strings.EqualFold(string(s), other)
}

type Order struct {
	ID              uint64      `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerName    string      `json:"customerName" gorm:"size:255"`
	CustomerEmail   string      `json:"customerEmail" gorm:"size:255"`
	CustomerPhone   string      `json:"customerPhone" gorm:"size:64"`
	ShippingAddress string      `json:"shippingAddress" gorm:"type:text"`
	Notes           string      `json:"notes" gorm:"type:text"`
	TotalAmount     float64     `json:"totalAmount"`
	PaymentMethod   string      `json:"paymentMethod" gorm:"size:64"`
	OrderDate       time.Time   `json:"orderDate"`
	Status          OrderStatus `json:"status" gorm:"size:32;index;default:'PENDING'"`
	ProductCount    int         `json:"productCount"`
	Items           []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem is owned by its Order and has no lifecycle of its own.
type OrderItem struct {
	ID          uint64  `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID     uint64  `json:"-" gorm:"index;not null"`
	ProductID   uint64  `json:"productId"`
	ProductName string  `json:"productName" gorm:"size:255"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// AddItem appends an item and adds its quantity to ProductCount.
func (o *Order) AddItem(item OrderItem) {
	o.Items = append(o.Items, item)
	o.ProductCount += item.Quantity
}

// OrderReplacement carries the fields overwritten by the legacy full update.
// Notes is only applied when set.
type OrderReplacement struct {
	CustomerName  string
	CustomerEmail string
	ProductCount  int
	TotalAmount   float64
	Status        OrderStatus
	Notes         *string
}

func (o *Order) Replace(r OrderReplacement) {
	o.CustomerName = r.CustomerName
	o.CustomerEmail = r.CustomerEmail
	o.ProductCount = r.ProductCount
	o.TotalAmount = r.TotalAmount
	o.Status = r.Status
	if r.Notes != nil {
		o.Notes = *r.Notes
	}
}
