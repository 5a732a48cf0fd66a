package dataset

import (
	"context"
	"fmt"

	"github.com/forgelabs/seedforge/pkg/db"
	"github.com/forgelabs/seedforge/pkg/db/models"
	"github.com/forgelabs/seedforge/pkg/logger"
)

const seedBatchSize = 500

// SeedSQLite migrates the schema and loads the dataset into the given
// SQLite client, tables in dependency order. The CSV output never depends
// on this; it exists so a generated dataset can be queried immediately.
func SeedSQLite(ctx context.Context, client *db.Client, ds *Dataset, logg *logger.Logger) error {
	conn := client.DB().WithContext(ctx)

	err := conn.AutoMigrate(
		&models.Customer{},
		&models.Address{},
		&models.Category{},
		&models.Product{},
		&models.ProductTranslation{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Shipment{},
		&models.Review{},
		&models.SupportTicket{},
	)
	if err != nil {
		return fmt.Errorf("migrating sqlite schema: %w", err)
	}

	inserts := []struct {
		table string
		rows  any
	}{
		{"customer", ds.Customers},
		{"customer_address", ds.Addresses},
		{"category", ds.Categories},
		{"products", ds.Products},
		{"product_translation", ds.Translations},
		{"orders", ds.Orders},
		{"order_items", ds.OrderItems},
		{"payment", ds.Payments},
		{"shipment", ds.Shipments},
		{"product_review", ds.Reviews},
		{"support_ticket", ds.Tickets},
	}

	for _, ins := range inserts {
		if err := conn.CreateInBatches(ins.rows, seedBatchSize).Error; err != nil {
			return fmt.Errorf("seeding %s: %w", ins.table, err)
		}
		if logg != nil {
			logg.Info(logg.WithField(ctx, "table", ins.table), "table seeded")
		}
	}
	return nil
}
