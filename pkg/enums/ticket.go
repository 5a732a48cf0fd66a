package enums

// TicketChannel is how a support ticket reached the desk.
type TicketChannel string

const (
	TicketChannelEmail    TicketChannel = "email"
	TicketChannelPhone    TicketChannel = "phone"
	TicketChannelChat     TicketChannel = "chat"
	TicketChannelWechat   TicketChannel = "wechat"
	TicketChannelWhatsapp TicketChannel = "whatsapp"
)

// TicketChannels returns the channel pool for uniform draws.
func TicketChannels() []TicketChannel {
	return []TicketChannel{
		TicketChannelEmail,
		TicketChannelPhone,
		TicketChannelChat,
		TicketChannelWechat,
		TicketChannelWhatsapp,
	}
}

// String implements fmt.Stringer.
func (t TicketChannel) String() string { return string(t) }

// TicketPriority ranks ticket urgency.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "LOW"
	TicketPriorityMedium TicketPriority = "MEDIUM"
	TicketPriorityHigh   TicketPriority = "HIGH"
	TicketPriorityUrgent TicketPriority = "URGENT"
)

// TicketPriorities returns the priority pool for uniform draws.
func TicketPriorities() []TicketPriority {
	return []TicketPriority{
		TicketPriorityLow,
		TicketPriorityMedium,
		TicketPriorityHigh,
		TicketPriorityUrgent,
	}
}

// String implements fmt.Stringer.
func (t TicketPriority) String() string { return string(t) }

// TicketStatus tracks a ticket through resolution.
type TicketStatus string

const (
	TicketStatusOpen            TicketStatus = "OPEN"
	TicketStatusInProgress      TicketStatus = "IN_PROGRESS"
	TicketStatusWaitingCustomer TicketStatus = "WAITING_CUSTOMER"
	TicketStatusResolved        TicketStatus = "RESOLVED"
	TicketStatusClosed          TicketStatus = "CLOSED"
)

// TicketStatuses returns the statuses in their selector order. Tickets
// index this slice with ticket_id mod len.
func TicketStatuses() []TicketStatus {
	return []TicketStatus{
		TicketStatusOpen,
		TicketStatusInProgress,
		TicketStatusWaitingCustomer,
		TicketStatusResolved,
		TicketStatusClosed,
	}
}

// Terminal reports whether the ticket reached a resolved state; only
// terminal tickets carry a resolved_at timestamp.
func (t TicketStatus) Terminal() bool {
	return t == TicketStatusResolved || t == TicketStatusClosed
}

// String implements fmt.Stringer.
func (t TicketStatus) String() string { return string(t) }
