package models

import (
	"github.com/forgelabs/seedforge/pkg/enums"
)

// Address belongs to a customer; customers accumulate addresses through
// modular cycling, so some carry several and the mapping is deterministic.
type Address struct {
	ID         int               `gorm:"column:address_id;primaryKey"`
	CustomerID int               `gorm:"column:customer_id;not null"`
	Type       enums.AddressType `gorm:"column:address_type;not null"`
	Line1      string            `gorm:"column:line1;not null"`
	Line2      string            `gorm:"column:line2"`
	City       string            `gorm:"column:city;not null"`
	Region     string            `gorm:"column:region"`
	PostalCode string            `gorm:"column:postal_code"`
	Country    string            `gorm:"column:country;not null"`
	Latitude   float64           `gorm:"column:latitude"`
	Longitude  float64           `gorm:"column:longitude"`
}

// TableName implements gorm's Tabler.
func (Address) TableName() string { return "customer_address" }
