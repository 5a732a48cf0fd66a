package dataset

import (
	"fmt"
	"time"

	"github.com/forgelabs/seedforge/pkg/db/models"
	"github.com/forgelabs/seedforge/pkg/enums"
	"github.com/forgelabs/seedforge/pkg/random"
)

var shipmentCarriers = []string{"FedEx", "UPS", "DHL", "顺丰速运", "Correos"}

var destinationCountries = []string{"USA", "中国", "España", "Canada", "日本"}

const (
	paymentDelay   = 30 * time.Minute
	shippingDelay  = 24 * time.Hour
	transitTime    = 3 * 24 * time.Hour
	ticketTurnTime = 2 * 24 * time.Hour
)

// DerivePayments emits exactly one payment per order, iterating the
// finalized order table in order. The status selector keys off the order
// id, except that cancelled orders are always refunded. Amount copies the
// order's final total, so this must run after the aggregate fold.
func DerivePayments(rng *random.Source, orders []models.Order) []models.Payment {
	statuses := enums.PaymentStatuses()

	payments := make([]models.Payment, 0, len(orders))
	for i, order := range orders {
		paymentID := i + 1
		status := statuses[order.ID%len(statuses)]
		if order.Status == enums.OrderStatusCancelled {
			status = enums.PaymentStatusRefunded
		}
		payments = append(payments, models.Payment{
			ID:                   paymentID,
			OrderID:              order.ID,
			Method:               random.Pick(rng, enums.PaymentMethods()),
			Status:               status,
			Amount:               order.TotalAmount,
			TransactionReference: fmt.Sprintf("TX-%06d-%04d", order.ID, paymentID),
			PaidAt:               order.OrderDate.Add(paymentDelay),
		})
	}
	return payments
}

// DeriveShipments emits exactly one shipment per order. Unlike payments,
// the status selector keys off the 1-based emission index rather than the
// order id; both behaviors are pinned. DeliveredAt is present iff the
// selector resolved to DELIVERED.
func DeriveShipments(rng *random.Source, orders []models.Order) []models.Shipment {
	statuses := enums.ShipmentStatuses()

	shipments := make([]models.Shipment, 0, len(orders))
	for i, order := range orders {
		shipmentID := i + 1
		status := statuses[shipmentID%len(statuses)]
		shippedAt := order.OrderDate.Add(shippingDelay)

		var deliveredAt *time.Time
		if status == enums.ShipmentStatusDelivered {
			t := shippedAt.Add(transitTime)
			deliveredAt = &t
		}

		shipments = append(shipments, models.Shipment{
			ID:                 shipmentID,
			OrderID:            order.ID,
			Carrier:            random.Pick(rng, shipmentCarriers),
			TrackingNumber:     fmt.Sprintf("TRK%08d", shipmentID),
			Status:             status,
			ShippedAt:          shippedAt,
			DeliveredAt:        deliveredAt,
			DestinationCountry: random.Pick(rng, destinationCountries),
		})
	}
	return shipments
}
