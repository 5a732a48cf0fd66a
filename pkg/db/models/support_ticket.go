package models

import (
	"time"

	"github.com/forgelabs/seedforge/pkg/enums"
)

// SupportTicket is an annotation record addressed to a customer via a
// fixed modular formula. ResolvedAt is set only for terminal statuses.
type SupportTicket struct {
	ID         int                  `gorm:"column:ticket_id;primaryKey"`
	CustomerID int                  `gorm:"column:customer_id;not null"`
	SubjectEN  string               `gorm:"column:subject_en;not null"`
	SubjectZH  string               `gorm:"column:subject_zh;not null"`
	SubjectES  string               `gorm:"column:subject_es;not null"`
	Channel    enums.TicketChannel  `gorm:"column:channel;not null"`
	Priority   enums.TicketPriority `gorm:"column:priority;not null"`
	Status     enums.TicketStatus   `gorm:"column:status;not null"`
	CreatedAt  time.Time            `gorm:"column:created_at;not null"`
	ResolvedAt *time.Time           `gorm:"column:resolved_at"`
}

// TableName implements gorm's Tabler.
func (SupportTicket) TableName() string { return "support_ticket" }
