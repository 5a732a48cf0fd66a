package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/forgelabs/seedforge/pkg/enums"
)

// Payment settles exactly one order. Amount always equals the order's
// finalized total, which is why payments are derived only after the
// aggregate pass.
type Payment struct {
	ID                   int                 `gorm:"column:payment_id;primaryKey"`
	OrderID              int                 `gorm:"column:order_id;not null;uniqueIndex"`
	Method               enums.PaymentMethod `gorm:"column:method;not null"`
	Status               enums.PaymentStatus `gorm:"column:status;not null"`
	Amount               decimal.Decimal     `gorm:"column:amount;type:numeric(12,2);not null"`
	TransactionReference string              `gorm:"column:transaction_reference;not null"`
	PaidAt               time.Time           `gorm:"column:paid_at;not null"`
}

// TableName implements gorm's Tabler.
func (Payment) TableName() string { return "payment" }
