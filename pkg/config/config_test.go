package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.Dataset.Seed != 42 {
		t.Fatalf("expected default seed 42, got %d", cfg.Dataset.Seed)
	}
	if cfg.Dataset.Customers != 1000 {
		t.Fatalf("expected default customers 1000, got %d", cfg.Dataset.Customers)
	}
	if cfg.Dataset.OrderItems != 3000 {
		t.Fatalf("expected default order items 3000, got %d", cfg.Dataset.OrderItems)
	}
	if cfg.Dataset.RootCategory != 50 {
		t.Fatalf("expected default root categories 50, got %d", cfg.Dataset.RootCategory)
	}
	if cfg.KV.Users != 5000 {
		t.Fatalf("expected default kv users 5000, got %d", cfg.KV.Users)
	}
	if cfg.Output.Dir != "testdata" {
		t.Fatalf("unexpected output dir %q", cfg.Output.Dir)
	}
	if cfg.SQLite.Enabled() {
		t.Fatal("expected sqlite disabled by default")
	}
	if cfg.Redis.Enabled() {
		t.Fatal("expected redis apply disabled by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(EnvSeed, "7")
	t.Setenv(EnvOrders, "25")
	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Dataset.Seed != 7 {
		t.Fatalf("expected seed override 7, got %d", cfg.Dataset.Seed)
	}
	if cfg.Dataset.Orders != 25 {
		t.Fatalf("expected orders override 25, got %d", cfg.Dataset.Orders)
	}
	if !cfg.Redis.Enabled() {
		t.Fatal("expected redis apply enabled when url set")
	}
}

func TestLoad_RejectsNonPositiveCounts(t *testing.T) {
	t.Setenv(EnvCustomers, "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected zero customer count to fail validation")
	}
}
