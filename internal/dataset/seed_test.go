package dataset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forgelabs/seedforge/pkg/config"
	"github.com/forgelabs/seedforge/pkg/db"
	"github.com/forgelabs/seedforge/pkg/db/models"
	"github.com/forgelabs/seedforge/pkg/random"
)

func TestSeedSQLite(t *testing.T) {
	ctx := context.Background()

	cfg := config.DatasetConfig{
		Seed:         42,
		Customers:    20,
		Addresses:    20,
		Categories:   10,
		Products:     10,
		Orders:       10,
		OrderItems:   30,
		Reviews:      10,
		Tickets:      10,
		RootCategory: 5,
	}
	ds := Generate(cfg, random.New(cfg.Seed))

	client, err := db.New(ctx, config.SQLiteConfig{Path: ":memory:"}, nil)
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, SeedSQLite(ctx, client, ds, nil))

	var customers int64
	require.NoError(t, client.DB().Model(&models.Customer{}).Count(&customers).Error)
	require.EqualValues(t, cfg.Customers, customers)

	var items int64
	require.NoError(t, client.DB().Model(&models.OrderItem{}).Count(&items).Error)
	require.EqualValues(t, cfg.OrderItems, items)

	var order models.Order
	require.NoError(t, client.DB().First(&order, 1).Error)
	require.False(t, order.TotalAmount.IsZero(), "seeded order should carry its finalized total")
}
