// Package redis bootstraps the client used when the generated command
// stream is applied to a live server instead of only written to disk.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/forgelabs/seedforge/pkg/config"
)

// Client wraps the raw connection behind the small surface the applier
// needs.
type Client struct {
	raw *redis.Client
}

// New bootstraps a Redis client with timeouts and verifies connectivity.
func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	opts, err := optionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Client{raw: raw}, nil
}

func optionsFromConfig(cfg config.RedisConfig) (*redis.Options, error) {
	if cfg.URL == "" {
		return nil, errors.New("redis url is required")
	}
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}
	return opts, nil
}

// Do executes an arbitrary command.
func (c *Client) Do(ctx context.Context, args ...any) error {
	if c.raw == nil {
		return errors.New("redis client not initialized")
	}
	return c.raw.Do(ctx, args...).Err()
}

// Pipeline returns a pipeliner for batched execution.
func (c *Client) Pipeline() redis.Pipeliner {
	return c.raw.Pipeline()
}

// Ping verifies the connection.
func (c *Client) Ping(ctx context.Context) error {
	if c.raw == nil {
		return errors.New("redis client not initialized")
	}
	return c.raw.Ping(ctx).Err()
}

// Close shuts down the underlying client if available.
func (c *Client) Close() error {
	if c.raw == nil {
		return nil
	}
	return c.raw.Close()
}
