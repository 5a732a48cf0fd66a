package db

import (
	"context"
	"fmt"
	"io"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/forgelabs/seedforge/pkg/config"
	"github.com/forgelabs/seedforge/pkg/logger"
)

// Client wraps the shared GORM connection over the local SQLite target.
type Client struct {
	conn *gorm.DB
}

// New opens a GORM client against the configured SQLite file. The file is
// created if absent; generation output never depends on this path.
func New(ctx context.Context, cfg config.SQLiteConfig, logg *logger.Logger) (*Client, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	gormLogger := gormlogger.New(
		log.New(io.Discard, "", log.LstdFlags),
		gormlogger.Config{LogLevel: gormlogger.Silent},
	)

	conn, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite at %s: %w", cfg.Path, err)
	}

	if logg != nil {
		logg.Info(ctx, "sqlite connection established")
	}

	return &Client{conn: conn}, nil
}

// DB returns the underlying GORM connection.
func (c *Client) DB() *gorm.DB {
	return c.conn
}

// Ping verifies the datasource is reachable.
func (c *Client) Ping(ctx context.Context) error {
	sqlDB, err := c.conn.DB()
	if err != nil {
		return fmt.Errorf("getting sql db handle: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	sqlDB, err := c.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
