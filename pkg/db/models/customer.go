package models

import (
	"time"

	"github.com/forgelabs/seedforge/pkg/enums"
)

// Customer is an account holder. Immutable once generated.
type Customer struct {
	ID            int                  `gorm:"column:customer_id;primaryKey"`
	FullName      string               `gorm:"column:full_name;not null"`
	Email         string               `gorm:"column:email;not null"`
	Phone         string               `gorm:"column:phone;not null"`
	Locale        enums.Locale         `gorm:"column:locale;not null"`
	Status        enums.CustomerStatus `gorm:"column:status;not null"`
	CreatedAt     time.Time            `gorm:"column:created_at;not null"`
	LoyaltyPoints int                  `gorm:"column:loyalty_points;not null"`
}

// TableName implements gorm's Tabler.
func (Customer) TableName() string { return "customer" }
