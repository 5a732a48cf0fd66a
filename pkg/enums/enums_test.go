package enums

import (
	"testing"
)

// The slices returned by the pool functions are indexed modularly by the
// generators, so their element order is part of the output contract.

func TestOrderStatusSelectorOrder(t *testing.T) {
	want := []OrderStatus{
		OrderStatusPending,
		OrderStatusPaid,
		OrderStatusShipped,
		OrderStatusCompleted,
		OrderStatusCancelled,
	}
	got := OrderStatuses()
	if len(got) != len(want) {
		t.Fatalf("expected %d order statuses, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order status %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestPaymentStatusSelectorOrder(t *testing.T) {
	want := []PaymentStatus{
		PaymentStatusCompleted,
		PaymentStatusPending,
		PaymentStatusFailed,
		PaymentStatusRefunded,
	}
	got := PaymentStatuses()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("payment status %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestShipmentStatusSelectorOrder(t *testing.T) {
	want := []ShipmentStatus{
		ShipmentStatusPending,
		ShipmentStatusInTransit,
		ShipmentStatusDelivered,
		ShipmentStatusReturned,
	}
	got := ShipmentStatuses()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("shipment status %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestTicketStatusSelectorOrder(t *testing.T) {
	want := []TicketStatus{
		TicketStatusOpen,
		TicketStatusInProgress,
		TicketStatusWaitingCustomer,
		TicketStatusResolved,
		TicketStatusClosed,
	}
	got := TicketStatuses()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ticket status %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestTicketStatusTerminal(t *testing.T) {
	terminal := map[TicketStatus]bool{
		TicketStatusOpen:            false,
		TicketStatusInProgress:      false,
		TicketStatusWaitingCustomer: false,
		TicketStatusResolved:        true,
		TicketStatusClosed:          true,
	}
	for status, want := range terminal {
		if status.Terminal() != want {
			t.Fatalf("%s: expected Terminal() %v", status, want)
		}
	}
}

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("CANCELLED")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != OrderStatusCancelled {
		t.Fatalf("expected CANCELLED, got %s", status)
	}

	if _, err := ParseOrderStatus("cancelled"); err == nil {
		t.Fatal("expected lowercase input to be rejected")
	}
}

func TestOrderStatusIsValid(t *testing.T) {
	if !OrderStatusPaid.IsValid() {
		t.Fatal("expected PAID to be valid")
	}
	if OrderStatus("UNKNOWN").IsValid() {
		t.Fatal("expected UNKNOWN to be invalid")
	}
}
