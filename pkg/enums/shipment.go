package enums

// ShipmentStatus tracks a parcel through delivery.
type ShipmentStatus string

const (
	ShipmentStatusPending   ShipmentStatus = "PENDING"
	ShipmentStatusInTransit ShipmentStatus = "IN_TRANSIT"
	ShipmentStatusDelivered ShipmentStatus = "DELIVERED"
	ShipmentStatusReturned  ShipmentStatus = "RETURNED"
)

// ShipmentStatuses returns the statuses in their selector order. Shipments
// index this slice with the 1-based emission index mod len, not the order
// id. That asymmetry with payments is intentional and pinned by tests.
func ShipmentStatuses() []ShipmentStatus {
	return []ShipmentStatus{
		ShipmentStatusPending,
		ShipmentStatusInTransit,
		ShipmentStatusDelivered,
		ShipmentStatusReturned,
	}
}

// String implements fmt.Stringer.
func (s ShipmentStatus) String() string {
	return string(s)
}
