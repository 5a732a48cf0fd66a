package dataset

import (
	"testing"
)

func TestTablesOrderAndShape(t *testing.T) {
	ds := generate(t)
	tables := ds.Tables()

	wantNames := []string{
		"customer",
		"customer_address",
		"category",
		"products",
		"product_translation",
		"order",
		"order_items",
		"payment",
		"shipment",
		"product_review",
		"support_ticket",
	}
	if len(tables) != len(wantNames) {
		t.Fatalf("expected %d tables, got %d", len(wantNames), len(tables))
	}
	for i, table := range tables {
		if table.Name != wantNames[i] {
			t.Fatalf("table %d: expected %s, got %s", i, wantNames[i], table.Name)
		}
		for r, row := range table.Rows {
			if len(row) != len(table.Header) {
				t.Fatalf("%s row %d: %d cells for %d columns", table.Name, r, len(row), len(table.Header))
			}
		}
	}
}

func TestRootCategoryEncodesEmptyParent(t *testing.T) {
	ds := generate(t)

	var category Table
	for _, table := range ds.Tables() {
		if table.Name == "category" {
			category = table
		}
	}

	// Column 1 is parent_category_id; the first row is root category 1.
	if got := category.Rows[0][1]; got != "" {
		t.Fatalf("expected empty parent for root category, got %q", got)
	}
	if got := category.Rows[len(category.Rows)-1][1]; got == "" {
		t.Fatal("expected leaf category to carry a parent id")
	}
}

func TestUndeliveredShipmentEncodesEmptyDeliveredAt(t *testing.T) {
	ds := generate(t)

	var shipment Table
	for _, table := range ds.Tables() {
		if table.Name == "shipment" {
			shipment = table
		}
	}

	// Column 4 is status, column 6 is delivered_at.
	for _, row := range shipment.Rows {
		delivered := row[4] == "DELIVERED"
		if delivered && row[6] == "" {
			t.Fatalf("delivered shipment %s missing delivered_at cell", row[0])
		}
		if !delivered && row[6] != "" {
			t.Fatalf("shipment %s in status %s has delivered_at %q", row[0], row[4], row[6])
		}
	}
}

func TestOrderTotalsEncodeAsPlainDecimals(t *testing.T) {
	ds := generate(t)

	var orders Table
	for _, table := range ds.Tables() {
		if table.Name == "order" {
			orders = table
		}
	}

	for _, row := range orders.Rows {
		total := row[4]
		if total == "" || total == "0" {
			t.Fatalf("order %s: unexpected total %q", row[0], total)
		}
	}
}
