package dataset

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/forgelabs/seedforge/pkg/config"
	"github.com/forgelabs/seedforge/pkg/db/models"
	"github.com/forgelabs/seedforge/pkg/enums"
	"github.com/forgelabs/seedforge/pkg/random"
)

var (
	discountSmall = decimal.NewFromInt(5)
	discountLarge = decimal.NewFromInt(10)
)

// GenerateOrders produces immutable order headers with a zero TotalAmount.
// The customer is fully random (a customer may own zero or many orders);
// the two address references cycle the address space with different
// multipliers so shipping and billing decorrelate. Status and timestamp
// are pure functions of the order id.
func GenerateOrders(cfg config.DatasetConfig, rng *random.Source) []models.Order {
	statuses := enums.OrderStatuses()
	base := dayStart(2023, time.July, 1, 9, 30)

	orders := make([]models.Order, 0, cfg.Orders)
	for oid := 1; oid <= cfg.Orders; oid++ {
		orders = append(orders, models.Order{
			ID:                oid,
			CustomerID:        rng.IntRange(1, cfg.Customers),
			OrderDate:         base.Add(time.Duration(oid) * time.Hour),
			Status:            statuses[oid%len(statuses)],
			TotalAmount:       decimal.Zero,
			Currency:          random.Pick(rng, enums.Currencies()),
			ShippingAddressID: ((oid - 1) % cfg.Addresses) + 1,
			BillingAddressID:  ((oid * 3) % cfg.Addresses) + 1,
		})
	}
	return orders
}

// ItemResult carries the item table together with the per-order subtotals
// accumulated during the pass. Subtotals stay separate from the order
// headers until FinalizeOrders merges them exactly once.
type ItemResult struct {
	Items     []models.OrderItem
	Subtotals map[int]decimal.Decimal
}

// GenerateOrderItems produces the order line table. Items cycle through
// orders, so when the item count exceeds the order count every order gets
// at least one line; a smaller item count leaves tail orders itemless,
// which is legal. The unit price is copied from the chosen product.
//
// Discounts: zero by default, 5 on every fifteenth item, 10 on every
// fortieth. The mod-40 rule runs second and overwrites, so ids divisible
// by both (multiples of 120) take the larger discount.
func GenerateOrderItems(cfg config.DatasetConfig, rng *random.Source, products []models.Product) ItemResult {
	result := ItemResult{
		Items:     make([]models.OrderItem, 0, cfg.OrderItems),
		Subtotals: make(map[int]decimal.Decimal, cfg.Orders),
	}

	for itemID := 1; itemID <= cfg.OrderItems; itemID++ {
		orderID := ((itemID - 1) % cfg.Orders) + 1
		product := random.Pick(rng, products)
		quantity := rng.IntRange(1, 5)

		discount := decimal.Zero
		if itemID%15 == 0 {
			discount = discountSmall
		}
		if itemID%40 == 0 {
			discount = discountLarge
		}

		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(quantity))).Sub(discount)
		if lineTotal.IsNegative() {
			lineTotal = decimal.Zero
		}
		result.Subtotals[orderID] = result.Subtotals[orderID].Add(lineTotal)

		result.Items = append(result.Items, models.OrderItem{
			ID:        itemID,
			OrderID:   orderID,
			ProductID: product.ID,
			Quantity:  quantity,
			UnitPrice: product.Price,
			Discount:  discount,
		})
	}
	return result
}

// ShippingFee is a deterministic function of the order id: 5, 7.5, 10 or
// 12.5 depending on order_id mod 4.
func ShippingFee(orderID int) decimal.Decimal {
	return decimal.NewFromInt(5).Add(decimal.NewFromFloat(2.5).Mul(decimal.NewFromInt(int64(orderID % 4))))
}

// FinalizeOrders materializes the final order rows from the immutable
// headers and the accumulated subtotals. An order that received no items
// ends up with a total equal to just its shipping fee. This is the single
// deferred write in the whole pipeline and must run before payments are
// derived, since payment amounts copy the final totals.
func FinalizeOrders(headers []models.Order, subtotals map[int]decimal.Decimal) []models.Order {
	finalized := make([]models.Order, len(headers))
	for i, header := range headers {
		order := header
		order.TotalAmount = subtotals[order.ID].Round(2).Add(ShippingFee(order.ID)).Round(2)
		finalized[i] = order
	}
	return finalized
}
