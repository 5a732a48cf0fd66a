package models

import "github.com/shopspring/decimal"

// OrderItem is a single order line. UnitPrice is copied from the product
// at generation time, so later catalog changes never rewrite history.
type OrderItem struct {
	ID        int             `gorm:"column:order_item_id;primaryKey"`
	OrderID   int             `gorm:"column:order_id;not null"`
	ProductID int             `gorm:"column:product_id;not null"`
	Quantity  int             `gorm:"column:quantity;not null"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:numeric(10,2);not null"`
	Discount  decimal.Decimal `gorm:"column:discount_percent;type:numeric(10,2);not null"`
}

// TableName implements gorm's Tabler.
func (OrderItem) TableName() string { return "order_items" }
