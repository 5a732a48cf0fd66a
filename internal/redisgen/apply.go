package redisgen

import (
	"context"
	"fmt"

	"github.com/forgelabs/seedforge/pkg/redis"
)

const applyBatchSize = 500

// Apply executes the command stream against a live server, pipelined in
// batches. The progress callback, if non-nil, receives the count of
// commands applied after each batch.
func Apply(ctx context.Context, client *redis.Client, commands []Command, progress func(applied int)) error {
	for start := 0; start < len(commands); start += applyBatchSize {
		end := min(start+applyBatchSize, len(commands))

		pipe := client.Pipeline()
		for _, c := range commands[start:end] {
			pipe.Do(ctx, c.Argv()...)
		}
		if _, err := pipe.Exec(ctx); err != nil {
			return fmt.Errorf("applying commands %d-%d: %w", start+1, end, err)
		}
		if progress != nil {
			progress(end)
		}
	}
	return nil
}
