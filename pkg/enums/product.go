package enums

// ProductStatus marks whether a product is still sold.
type ProductStatus string

const (
	ProductStatusActive       ProductStatus = "ACTIVE"
	ProductStatusDiscontinued ProductStatus = "DISCONTINUED"
)

// ProductStatuses returns the statuses in selector order.
func ProductStatuses() []ProductStatus {
	return []ProductStatus{ProductStatusActive, ProductStatusDiscontinued}
}

// String implements fmt.Stringer.
func (p ProductStatus) String() string {
	return string(p)
}
