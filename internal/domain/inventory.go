package domain

import "time"

// DefaultReorderLevel applies when an inventory record is created without one.
const DefaultReorderLevel = 10

type Inventory struct {
	ID           uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID    uint64    `json:"productId" gorm:"not null;index"`
	ProductName  string    `json:"productName" gorm:"size:255;not null"`
	Quantity     int       `json:"quantity" gorm:"not null"`
	ReorderLevel int       `json:"reorderLevel" gorm:"not null"`
	UnitPrice    float64   `json:"unitPrice" gorm:"not null"`
	Location     string    `json:"location" gorm:"size:255"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

func (Inventory) TableName() string {
	return "inventory"
}

func (i *Inventory) IsLowStock() bool {
	return i.Quantity <= i.ReorderLevel
}

type AdjustmentType string

const (
	AdjustmentAdd    AdjustmentType = "add"
	AdjustmentRemove AdjustmentType = "remove"
)

// Adjust applies a stock movement. Removing more than is on hand fails and
// leaves the quantity unchanged.
func (i *Inventory) Adjust(kind AdjustmentType, amount int) error {
	if amount <= 0 {
		return NewValidationError("amount", "Adjustment amount must be positive")
	}
	switch kind {
	case AdjustmentAdd:
		i.Quantity += amount
	case AdjustmentRemove:
		if amount > i.Quantity {
			return NewValidationError("amount", "Insufficient stock")
		}
		i.Quantity -= amount
	default:
		return NewValidationError("type", "Adjustment type must be add or remove")
	}
	return nil
}
