package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/forgelabs/seedforge/pkg/enums"
)

// Product is a catalog listing. Cost is derived from price at generation
// time and both are fixed to two decimal places.
type Product struct {
	ID         int                 `gorm:"column:product_id;primaryKey"`
	CategoryID int                 `gorm:"column:category_id;not null"`
	SKU        string              `gorm:"column:sku;not null"`
	Price      decimal.Decimal     `gorm:"column:price;type:numeric(10,2);not null"`
	Cost       decimal.Decimal     `gorm:"column:cost;type:numeric(10,2);not null"`
	Currency   enums.Currency      `gorm:"column:currency;not null"`
	Status     enums.ProductStatus `gorm:"column:status;not null"`
	CreatedAt  time.Time           `gorm:"column:created_at;not null"`
}

// TableName implements gorm's Tabler.
func (Product) TableName() string { return "products" }
