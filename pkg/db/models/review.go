package models

import "time"

// Review is an annotation record: its product and customer references come
// from fixed modular formulas over the review id, not from sampled orders,
// so a review need not correspond to an actual purchase.
type Review struct {
	ID         int       `gorm:"column:review_id;primaryKey"`
	ProductID  int       `gorm:"column:product_id;not null"`
	CustomerID int       `gorm:"column:customer_id;not null"`
	Rating     int       `gorm:"column:rating;not null"`
	TitleEN    string    `gorm:"column:title_en;not null"`
	TitleZH    string    `gorm:"column:title_zh;not null"`
	TitleES    string    `gorm:"column:title_es;not null"`
	BodyEN     string    `gorm:"column:body_en;not null"`
	BodyZH     string    `gorm:"column:body_zh;not null"`
	BodyES     string    `gorm:"column:body_es;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"`
}

// TableName implements gorm's Tabler.
func (Review) TableName() string { return "product_review" }
