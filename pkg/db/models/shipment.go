package models

import (
	"time"

	"github.com/forgelabs/seedforge/pkg/enums"
)

// Shipment tracks delivery of exactly one order. DeliveredAt is set if and
// only if the shipment reached DELIVERED.
type Shipment struct {
	ID                 int                  `gorm:"column:shipment_id;primaryKey"`
	OrderID            int                  `gorm:"column:order_id;not null;uniqueIndex"`
	Carrier            string               `gorm:"column:carrier;not null"`
	TrackingNumber     string               `gorm:"column:tracking_number;not null"`
	Status             enums.ShipmentStatus `gorm:"column:status;not null"`
	ShippedAt          time.Time            `gorm:"column:shipped_at;not null"`
	DeliveredAt        *time.Time           `gorm:"column:delivered_at"`
	DestinationCountry string               `gorm:"column:destination_country;not null"`
}

// TableName implements gorm's Tabler.
func (Shipment) TableName() string { return "shipment" }
