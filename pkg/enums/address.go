package enums

// AddressType classifies a customer address.
type AddressType string

const (
	AddressTypeBilling  AddressType = "billing"
	AddressTypeShipping AddressType = "shipping"
	AddressTypeOffice   AddressType = "office"
	AddressTypeHome     AddressType = "home"
)

// AddressTypes returns every address type. Addresses draw from this pool
// uniformly rather than by index.
func AddressTypes() []AddressType {
	return []AddressType{
		AddressTypeBilling,
		AddressTypeShipping,
		AddressTypeOffice,
		AddressTypeHome,
	}
}

// String implements fmt.Stringer.
func (a AddressType) String() string {
	return string(a)
}
