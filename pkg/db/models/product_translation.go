package models

import "github.com/forgelabs/seedforge/pkg/enums"

// ProductTranslation localizes a product; exactly one row exists per
// product per translation locale.
type ProductTranslation struct {
	ProductID   int          `gorm:"column:product_id;primaryKey"`
	Locale      enums.Locale `gorm:"column:locale;primaryKey"`
	Name        string       `gorm:"column:name;not null"`
	Description string       `gorm:"column:description"`
}

// TableName implements gorm's Tabler.
func (ProductTranslation) TableName() string { return "product_translation" }
