// Package dataset generates the relational e-commerce test dataset. All
// generators are pure single-pass functions drawing from one shared seeded
// source; Generate fixes the draw order, so a seed fully determines every
// table.
package dataset

import (
	"time"

	"github.com/forgelabs/seedforge/pkg/config"
	"github.com/forgelabs/seedforge/pkg/db/models"
	"github.com/forgelabs/seedforge/pkg/random"
)

// Dataset holds every generated table. Orders are the finalized rows with
// totals already folded in.
type Dataset struct {
	Customers    []models.Customer
	Addresses    []models.Address
	Categories   []models.Category
	Products     []models.Product
	Translations []models.ProductTranslation
	Orders       []models.Order
	OrderItems   []models.OrderItem
	Payments     []models.Payment
	Shipments    []models.Shipment
	Reviews      []models.Review
	Tickets      []models.SupportTicket
}

// Generate runs the full pipeline in its fixed dependency order:
// base entities, then orders, then items, then the deferred total fold,
// then the records that copy the finalized totals, then annotations.
// Reordering any step changes the draw sequence and breaks reproducibility.
func Generate(cfg config.DatasetConfig, rng *random.Source) *Dataset {
	ds := &Dataset{}

	ds.Customers = GenerateCustomers(cfg, rng)
	ds.Addresses = GenerateAddresses(cfg, rng)
	ds.Categories = GenerateCategories(cfg, rng)
	ds.Products = GenerateProducts(cfg, rng, ds.Categories)
	ds.Translations = GenerateTranslations(rng, ds.Products)

	headers := GenerateOrders(cfg, rng)
	items := GenerateOrderItems(cfg, rng, ds.Products)
	ds.OrderItems = items.Items
	ds.Orders = FinalizeOrders(headers, items.Subtotals)

	ds.Payments = DerivePayments(rng, ds.Orders)
	ds.Shipments = DeriveShipments(rng, ds.Orders)

	ds.Reviews = GenerateReviews(cfg, rng)
	ds.Tickets = GenerateTickets(cfg, rng)

	return ds
}

func dayStart(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}
