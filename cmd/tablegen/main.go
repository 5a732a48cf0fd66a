package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"

	"github.com/forgelabs/seedforge/internal/csvout"
	"github.com/forgelabs/seedforge/internal/dataset"
	"github.com/forgelabs/seedforge/pkg/config"
	"github.com/forgelabs/seedforge/pkg/db"
	"github.com/forgelabs/seedforge/pkg/logger"
	"github.com/forgelabs/seedforge/pkg/random"
)

func main() {
	ctx := context.Background()
	// bootstrap logger early (then re-init after config load)
	logg := logger.New(logger.Options{ServiceName: "tablegen"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "tablegen",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})
	ctx = logg.WithSeed(ctx, cfg.Dataset.Seed)

	rng := random.New(cfg.Dataset.Seed)
	ds := dataset.Generate(cfg.Dataset, rng)
	logg.Info(ctx, "dataset generated")

	writer, err := csvout.NewWriter(cfg.Output.Dir)
	requireResource(ctx, logg, "output dir", err)

	tables := ds.Tables()
	bar := progressbar.Default(int64(len(tables)), "writing tables")

	files := make([]csvout.FileEntry, 0, len(tables))
	for _, table := range tables {
		entry, err := writer.WriteTable(table.Name, table.Header, table.Rows)
		requireResource(ctx, logg, table.Name+".csv", err)
		files = append(files, entry)
		_ = bar.Add(1)
	}

	err = writer.WriteManifest(cfg.Dataset.Seed, files)
	requireResource(ctx, logg, "manifest", err)

	logg.Info(logg.WithField(ctx, "dir", writer.Dir()), "tables written")
	fmt.Println("output:", filepath.Join(writer.Dir(), "manifest.json"))

	if cfg.SQLite.Enabled() {
		dbClient, err := db.New(ctx, cfg.SQLite, logg)
		requireResource(ctx, logg, "sqlite", err)
		defer dbClient.Close()

		err = dataset.SeedSQLite(ctx, dbClient, ds, logg)
		requireResource(ctx, logg, "sqlite seed", err)
		logg.Info(logg.WithField(ctx, "path", cfg.SQLite.Path), "sqlite seeded")
	}
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
