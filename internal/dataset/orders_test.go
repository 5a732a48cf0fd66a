package dataset

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/forgelabs/seedforge/pkg/db/models"
	"github.com/forgelabs/seedforge/pkg/random"
)

func priceFor(pid int) decimal.Decimal {
	return decimal.NewFromFloat(10 + math.Mod(float64(pid)*2.37, 500)).Round(2)
}

func TestDiscountTiers(t *testing.T) {
	cfg := testConfig()
	rng := random.New(cfg.Seed)
	products := GenerateProducts(cfg, rng, GenerateCategories(cfg, rng))
	result := GenerateOrderItems(cfg, rng, products)

	byID := make(map[int]models.OrderItem, len(result.Items))
	for _, item := range result.Items {
		byID[item.ID] = item
	}

	cases := []struct {
		itemID int
		want   int64
	}{
		{1, 0},
		{14, 0},
		{15, 5},
		{30, 5},
		{40, 10},
		{80, 10},
		{120, 10}, // divisible by both 15 and 40; the larger tier wins
		{2040, 10},
	}
	for _, tc := range cases {
		item, ok := byID[tc.itemID]
		if !ok {
			t.Fatalf("item %d missing", tc.itemID)
		}
		if !item.Discount.Equal(decimal.NewFromInt(tc.want)) {
			t.Fatalf("item %d: expected discount %d, got %s", tc.itemID, tc.want, item.Discount)
		}
	}
}

func TestLineTotalsNeverNegative(t *testing.T) {
	cfg := testConfig()
	rng := random.New(cfg.Seed)
	products := GenerateProducts(cfg, rng, GenerateCategories(cfg, rng))
	result := GenerateOrderItems(cfg, rng, products)

	for _, subtotal := range result.Subtotals {
		if subtotal.IsNegative() {
			t.Fatalf("negative subtotal %s", subtotal)
		}
	}
}

func TestShippingFee(t *testing.T) {
	cases := map[int]string{
		4: "5",
		1: "7.5",
		2: "10",
		3: "12.5",
		8: "5",
	}
	for orderID, want := range cases {
		if got := ShippingFee(orderID); got.String() != want {
			t.Fatalf("order %d: expected fee %s, got %s", orderID, want, got)
		}
	}
}

func TestFinalizeOrdersWithoutItems(t *testing.T) {
	cfg := testConfig()
	cfg.Orders = 4
	cfg.OrderItems = 2
	rng := random.New(cfg.Seed)

	headers := GenerateOrders(cfg, rng)
	products := GenerateProducts(cfg, rng, GenerateCategories(cfg, rng))
	result := GenerateOrderItems(cfg, rng, products)
	finalized := FinalizeOrders(headers, result.Subtotals)

	// Items 1 and 2 land on orders 1 and 2; orders 3 and 4 stay empty and
	// their total is the shipping fee alone.
	for _, o := range finalized[2:] {
		if !o.TotalAmount.Equal(ShippingFee(o.ID)) {
			t.Fatalf("itemless order %d: expected fee-only total %s, got %s", o.ID, ShippingFee(o.ID), o.TotalAmount)
		}
	}
}

func TestFinalizeOrdersPreservesHeaders(t *testing.T) {
	cfg := testConfig()
	rng := random.New(cfg.Seed)

	headers := GenerateOrders(cfg, rng)
	finalized := FinalizeOrders(headers, map[int]decimal.Decimal{})

	for i, o := range finalized {
		h := headers[i]
		if o.ID != h.ID || o.CustomerID != h.CustomerID || o.Status != h.Status || !o.OrderDate.Equal(h.OrderDate) {
			t.Fatalf("order %d: header fields changed during finalize", h.ID)
		}
		if !h.TotalAmount.Equal(decimal.Zero) {
			t.Fatalf("order %d: header total mutated to %s", h.ID, h.TotalAmount)
		}
	}
}
