package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"

	"github.com/forgelabs/seedforge/internal/redisgen"
	"github.com/forgelabs/seedforge/pkg/config"
	"github.com/forgelabs/seedforge/pkg/logger"
	"github.com/forgelabs/seedforge/pkg/random"
	"github.com/forgelabs/seedforge/pkg/redis"
)

func main() {
	ctx := context.Background()
	// bootstrap logger early (then re-init after config load)
	logg := logger.New(logger.Options{ServiceName: "redisgen"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "redisgen",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})
	ctx = logg.WithSeed(ctx, cfg.KV.Seed)

	rng := random.New(cfg.KV.Seed)
	commands := redisgen.Generate(cfg.KV, rng)
	logg.Info(logg.WithField(ctx, "commands", len(commands)), "command stream generated")

	path := filepath.Join(cfg.Output.Dir, "init.redis")
	n, err := redisgen.WriteFile(path, commands)
	requireResource(ctx, logg, "init.redis", err)

	logg.Info(logg.WithField(ctx, "commands", n), "command file written")
	fmt.Println("output:", path)

	if cfg.Redis.Enabled() {
		client, err := redis.New(ctx, cfg.Redis)
		requireResource(ctx, logg, "redis", err)
		defer client.Close()

		bar := progressbar.Default(int64(len(commands)), "applying commands")
		err = redisgen.Apply(ctx, client, commands, func(applied int) {
			_ = bar.Set(applied)
		})
		requireResource(ctx, logg, "redis apply", err)
		logg.Info(ctx, "command stream applied")
	}
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
