package models

import "time"

// Category forms a two-level tree: root categories have no parent, every
// deeper category references a root.
type Category struct {
	ID            int       `gorm:"column:category_id;primaryKey"`
	ParentID      *int      `gorm:"column:parent_category_id"`
	Slug          string    `gorm:"column:slug;not null"`
	DisplayNameEN string    `gorm:"column:display_name_en;not null"`
	DisplayNameZH string    `gorm:"column:display_name_zh;not null"`
	DisplayNameES string    `gorm:"column:display_name_es;not null"`
	Description   string    `gorm:"column:description"`
	CreatedAt     time.Time `gorm:"column:created_at;not null"`
}

// TableName implements gorm's Tabler.
func (Category) TableName() string { return "category" }
