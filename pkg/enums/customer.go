package enums

import "fmt"

// CustomerStatus is the account lifecycle state of a customer.
type CustomerStatus string

const (
	CustomerStatusActive    CustomerStatus = "ACTIVE"
	CustomerStatusInactive  CustomerStatus = "INACTIVE"
	CustomerStatusSuspended CustomerStatus = "SUSPENDED"
)

// CustomerStatuses returns the statuses in their selector order. The
// customer generator indexes this slice with customer_id mod len.
func CustomerStatuses() []CustomerStatus {
	return []CustomerStatus{
		CustomerStatusActive,
		CustomerStatusInactive,
		CustomerStatusSuspended,
	}
}

// String implements fmt.Stringer.
func (c CustomerStatus) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CustomerStatus.
func (c CustomerStatus) IsValid() bool {
	for _, candidate := range CustomerStatuses() {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCustomerStatus converts raw input into a CustomerStatus.
func ParseCustomerStatus(value string) (CustomerStatus, error) {
	for _, candidate := range CustomerStatuses() {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid customer status %q", value)
}
