package http

import (
	"bytes"
	"encoding/json"

	"storefront-service/internal/domain"
	"storefront-service/internal/services"
)

type ProductRequest struct {
	Name          string   `json:"name"`
	Brand         string   `json:"brand"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice"`
	Category      string   `json:"category"`
	ShortDesc     string   `json:"shortDesc"`
	Features      []string `json:"features"`
	ImageURL      string   `json:"imageUrl"`
}

func (r ProductRequest) toProduct() *domain.Product {
	return &domain.Product{
		Name:          r.Name,
		Brand:         r.Brand,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Category:      r.Category,
		ShortDesc:     r.ShortDesc,
		Features:      r.Features,
		ImageURL:      r.ImageURL,
	}
}

type OrderItemRequest struct {
	ProductID   uint64  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type CreateOrderRequest struct {
	CustomerName    string             `json:"customerName"`
	CustomerEmail   string             `json:"customerEmail"`
	CustomerPhone   string             `json:"customerPhone"`
	ShippingAddress string             `json:"shippingAddress"`
	Notes           string             `json:"notes"`
	TotalAmount     float64            `json:"totalAmount"`
	PaymentMethod   string             `json:"paymentMethod"`
	Status          string             `json:"status"`
	Items           []OrderItemRequest `json:"items"`
}

func (r CreateOrderRequest) toInput() services.CreateOrderInput {
	in := services.CreateOrderInput{
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		ShippingAddress: r.ShippingAddress,
		Notes:           r.Notes,
		TotalAmount:     r.TotalAmount,
		PaymentMethod:   r.PaymentMethod,
		Status:          r.Status,
	}
	for _, item := range r.Items {
		in.Items = append(in.Items, services.OrderItemInput(item))
	}
	return in
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// parseStatusBody accepts {"status": "..."}, a bare JSON string or plain text.
func parseStatusBody(body []byte) (string, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return "", nil
	}

	switch trimmed[0] {
	case '{':
		var req UpdateStatusRequest
		if err := json.Unmarshal(trimmed, &req); err != nil {
			return "", err
		}
		return req.Status, nil
	case '"':
		var status string
		if err := json.Unmarshal(trimmed, &status); err != nil {
			return "", err
		}
		return status, nil
	default:
		return string(trimmed), nil
	}
}

type ReplaceOrderRequest struct {
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	ProductCount  int     `json:"productCount"`
	TotalAmount   float64 `json:"totalAmount"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes"`
}

func (r ReplaceOrderRequest) toReplacement() domain.OrderReplacement {
	return domain.OrderReplacement{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		ProductCount:  r.ProductCount,
		TotalAmount:   r.TotalAmount,
		Status:        domain.OrderStatus(r.Status),
		Notes:         r.Notes,
	}
}

type CreateInventoryRequest struct {
	ProductID    *uint64  `json:"productId"`
	ProductName  string   `json:"productName"`
	Quantity     *int     `json:"quantity"`
	ReorderLevel *int     `json:"reorderLevel"`
	UnitPrice    *float64 `json:"unitPrice"`
	Location     string   `json:"location"`
}

type UpdateInventoryRequest struct {
	Quantity     *int     `json:"quantity"`
	ReorderLevel *int     `json:"reorderLevel"`
	UnitPrice    *float64 `json:"unitPrice"`
	Location     *string  `json:"location"`
}

type AdjustStockRequest struct {
	Type   string `json:"type"`
	Amount int    `json:"amount"`
	Reason string `json:"reason"`
}
