package domain

import (
	"encoding/json"
	"fmt"
)

// OrderField names a key accepted by the sparse order update.
type OrderField string

const (
	OrderFieldStatus          OrderField = "status"
	OrderFieldCustomerName    OrderField = "customerName"
	OrderFieldCustomerEmail   OrderField = "customerEmail"
	OrderFieldCustomerPhone   OrderField = "customerPhone"
	OrderFieldShippingAddress OrderField = "shippingAddress"
	OrderFieldProductCount    OrderField = "productCount"
	OrderFieldTotalAmount     OrderField = "totalAmount"
	OrderFieldPaymentMethod   OrderField = "paymentMethod"
	OrderFieldNotes           OrderField = "notes"
)

// OrderFields is the complete set of updatable keys, in application order.
var OrderFields = []OrderField{
	OrderFieldStatus,
	OrderFieldCustomerName,
	OrderFieldCustomerEmail,
	OrderFieldCustomerPhone,
	OrderFieldShippingAddress,
	OrderFieldProductCount,
	OrderFieldTotalAmount,
	OrderFieldPaymentMethod,
	OrderFieldNotes,
}

type orderSetter func(o *Order, raw json.RawMessage) error

var orderSetters = map[OrderField]orderSetter{
	OrderFieldStatus:          setString(func(o *Order, v string) { o.Status = OrderStatus(v) }),
	OrderFieldCustomerName:    setString(func(o *Order, v string) { o.CustomerName = v }),
	OrderFieldCustomerEmail:   setString(func(o *Order, v string) { o.CustomerEmail = v }),
	OrderFieldCustomerPhone:   setString(func(o *Order, v string) { o.CustomerPhone = v }),
	OrderFieldShippingAddress: setString(func(o *Order, v string) { o.ShippingAddress = v }),
	OrderFieldPaymentMethod:   setString(func(o *Order, v string) { o.PaymentMethod = v }),
	OrderFieldNotes:           setString(func(o *Order, v string) { o.Notes = v }),
	OrderFieldProductCount: func(o *Order, raw json.RawMessage) error {
		var v *int
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		o.ProductCount = deref(v)
		return nil
	},
	// float64 accepts both 12 and 12.5. A null total is ignored.
	OrderFieldTotalAmount: func(o *Order, raw json.RawMessage) error {
		var v *float64
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		if v != nil {
			o.TotalAmount = *v
		}
		return nil
	},
}

func setString(set func(*Order, string)) orderSetter {
	return func(o *Order, raw json.RawMessage) error {
		var v *string
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		set(o, deref(v))
		return nil
	}
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

// ApplyOrderUpdates overwrites only the recognized fields present in updates.
// Unknown keys are ignored and a JSON null resets a field to its zero value,
// except totalAmount which keeps its value.
// When any value has the wrong type the order is left untouched.
func ApplyOrderUpdates(o *Order, updates map[string]json.RawMessage) error {
	staged := *o
	for _, field := range OrderFields {
		raw, ok := updates[string(field)]
		if !ok {
			continue
		}
		if err := orderSetters[field](&staged, raw); err != nil {
			return NewValidationError(string(field), fmt.Sprintf("Invalid value for %s", field))
		}
	}
	*o = staged
	return nil
}
