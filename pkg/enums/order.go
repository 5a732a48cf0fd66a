package enums

import "fmt"

// OrderStatus tracks an order through its lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// OrderStatuses returns the statuses in their selector order. The order
// generator indexes this slice with order_id mod len, and the payment
// generator keys its refund override off OrderStatusCancelled.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusPaid,
		OrderStatusShipped,
		OrderStatusCompleted,
		OrderStatusCancelled,
	}
}

// String implements fmt.Stringer.
func (o OrderStatus) String() string {
	return string(o)
}

// IsValid reports whether the value is a known OrderStatus.
func (o OrderStatus) IsValid() bool {
	for _, candidate := range OrderStatuses() {
		if candidate == o {
			return true
		}
	}
	return false
}

// ParseOrderStatus converts raw input into an OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	for _, candidate := range OrderStatuses() {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", value)
}
