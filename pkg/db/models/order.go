package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/forgelabs/seedforge/pkg/enums"
)

// Order is an order header. Headers are generated with a zero TotalAmount;
// the finalized rows carrying the real total are materialized only after
// the item pass, so a written Order is never mutated again.
type Order struct {
	ID                int               `gorm:"column:order_id;primaryKey"`
	CustomerID        int               `gorm:"column:customer_id;not null"`
	OrderDate         time.Time         `gorm:"column:order_date;not null"`
	Status            enums.OrderStatus `gorm:"column:status;not null"`
	TotalAmount       decimal.Decimal   `gorm:"column:total_amount;type:numeric(12,2);not null"`
	Currency          enums.Currency    `gorm:"column:currency;not null"`
	ShippingAddressID int               `gorm:"column:shipping_address_id;not null"`
	BillingAddressID  int               `gorm:"column:billing_address_id;not null"`
}

// TableName implements gorm's Tabler.
func (Order) TableName() string { return "orders" }
