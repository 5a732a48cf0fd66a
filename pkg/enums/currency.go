package enums

import "fmt"

// Currency represents the monetary denominations appearing in the dataset.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyCNY Currency = "CNY"
	CurrencyEUR Currency = "EUR"
	CurrencyJPY Currency = "JPY"
)

// Currencies returns the currency pool for uniform draws.
func Currencies() []Currency {
	return []Currency{CurrencyUSD, CurrencyCNY, CurrencyEUR, CurrencyJPY}
}

// String implements fmt.Stringer.
func (c Currency) String() string {
	return string(c)
}

// IsValid reports whether the currency is recognized.
func (c Currency) IsValid() bool {
	for _, candidate := range Currencies() {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCurrency converts a raw string into a Currency.
func ParseCurrency(value string) (Currency, error) {
	for _, candidate := range Currencies() {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid currency %q", value)
}
