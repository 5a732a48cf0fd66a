package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Env variable names, exported for tests and tooling.
const (
	EnvLogLevel  = "SEEDFORGE_LOG_LEVEL"
	EnvSeed      = "SEEDFORGE_SEED"
	EnvOutputDir = "SEEDFORGE_OUTPUT_DIR"
	EnvSQLite    = "SEEDFORGE_SQLITE_PATH"
	EnvRedisURL  = "SEEDFORGE_REDIS_URL"

	EnvCustomers  = "SEEDFORGE_NUM_CUSTOMERS"
	EnvOrders     = "SEEDFORGE_NUM_ORDERS"
	EnvOrderItems = "SEEDFORGE_NUM_ORDER_ITEMS"
)

type Config struct {
	App     AppConfig
	Dataset DatasetConfig
	KV      KVConfig
	Output  OutputConfig
	SQLite  SQLiteConfig
	Redis   RedisConfig
}

// Load reads configuration from the environment. Every knob has a default,
// so a bare binary run reproduces the reference dataset.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("seedforge", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	LogLevel string `envconfig:"SEEDFORGE_LOG_LEVEL" default:"info"`
}

// DatasetConfig sizes the relational tables. Payments and shipments are
// always one per order and carry no count of their own. OrderItems may be
// smaller than Orders; the tail orders then simply receive no items.
type DatasetConfig struct {
	Seed         int64 `envconfig:"SEEDFORGE_SEED" default:"42"`
	Customers    int   `envconfig:"SEEDFORGE_NUM_CUSTOMERS" default:"1000" validate:"gt=0"`
	Addresses    int   `envconfig:"SEEDFORGE_NUM_ADDRESSES" default:"1000" validate:"gt=0"`
	Categories   int   `envconfig:"SEEDFORGE_NUM_CATEGORIES" default:"1000" validate:"gt=0"`
	Products     int   `envconfig:"SEEDFORGE_NUM_PRODUCTS" default:"1000" validate:"gt=0"`
	Orders       int   `envconfig:"SEEDFORGE_NUM_ORDERS" default:"1000" validate:"gt=0"`
	OrderItems   int   `envconfig:"SEEDFORGE_NUM_ORDER_ITEMS" default:"3000" validate:"gt=0"`
	Reviews      int   `envconfig:"SEEDFORGE_NUM_REVIEWS" default:"1000" validate:"gt=0"`
	Tickets      int   `envconfig:"SEEDFORGE_NUM_TICKETS" default:"1000" validate:"gt=0"`
	RootCategory int   `envconfig:"SEEDFORGE_NUM_ROOT_CATEGORIES" default:"50" validate:"gt=0"`
}

// KVConfig sizes the companion key-value command stream.
type KVConfig struct {
	Seed      int64 `envconfig:"SEEDFORGE_SEED" default:"42"`
	Users     int   `envconfig:"SEEDFORGE_KV_USERS" default:"5000" validate:"gt=0"`
	Products  int   `envconfig:"SEEDFORGE_KV_PRODUCTS" default:"2000" validate:"gt=0"`
	Orders    int   `envconfig:"SEEDFORGE_KV_ORDERS" default:"3000" validate:"gt=0"`
	Messages  int   `envconfig:"SEEDFORGE_KV_MESSAGES" default:"1000" validate:"gt=0"`
	Sessions  int   `envconfig:"SEEDFORGE_KV_SESSIONS" default:"500" validate:"gt=0"`
	Locations int   `envconfig:"SEEDFORGE_KV_LOCATIONS" default:"100" validate:"gt=0"`
}

type OutputConfig struct {
	Dir string `envconfig:"SEEDFORGE_OUTPUT_DIR" default:"testdata" validate:"required"`
}

// SQLiteConfig enables the optional load of the generated dataset into a
// local SQLite file. Empty path disables it.
type SQLiteConfig struct {
	Path string `envconfig:"SEEDFORGE_SQLITE_PATH"`
}

// RedisConfig enables the optional apply of the generated command stream to
// a live Redis. Empty URL disables it.
type RedisConfig struct {
	URL          string        `envconfig:"SEEDFORGE_REDIS_URL"`
	DialTimeout  time.Duration `envconfig:"SEEDFORGE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SEEDFORGE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SEEDFORGE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether the dataset should also be loaded into SQLite.
func (s SQLiteConfig) Enabled() bool {
	return s.Path != ""
}

// Enabled reports whether the command stream should be applied to Redis.
func (r RedisConfig) Enabled() bool {
	return r.URL != ""
}
