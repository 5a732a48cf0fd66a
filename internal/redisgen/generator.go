package redisgen

import (
	"time"

	"github.com/forgelabs/seedforge/pkg/config"
	"github.com/forgelabs/seedforge/pkg/random"
)

// referenceTime anchors every date-derived key and timestamp field. The
// original used the wall clock here, which made reruns differ; a fixed
// anchor keeps the whole stream reproducible from the seed.
var referenceTime = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

const hashTimeLayout = "2006-01-02 15:04:05"

type generator struct {
	cfg config.KVConfig
	rng *random.Source
}

// Generate produces the full command stream in a fixed section order:
// strings, hashes, lists, sets, sorted sets, bitmaps, hyperloglogs, geo,
// streams. Section order and the draw order inside each section are part
// of the determinism contract.
func Generate(cfg config.KVConfig, rng *random.Source) []Command {
	g := &generator{cfg: cfg, rng: rng}

	var out []Command
	out = append(out, g.strings()...)
	out = append(out, g.hashes()...)
	out = append(out, g.lists()...)
	out = append(out, g.sets()...)
	out = append(out, g.sortedSets()...)
	out = append(out, g.bitmaps()...)
	out = append(out, g.hyperloglogs()...)
	out = append(out, g.geo()...)
	out = append(out, g.streams()...)
	return out
}
