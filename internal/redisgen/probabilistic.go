package redisgen

import (
	"fmt"
)

const dateKeyLayout = "20060102"

var uvPages = []string{"home", "product_list", "product_detail", "cart", "checkout", "user_center"}

// bitmaps covers sign-in records: one bitmap per day for the thirty days
// before the reference anchor, with 30-70% of a thousand users set.
func (g *generator) bitmaps() []Command {
	var out []Command
	const signinUsers = 1000

	for dayOffset := 0; dayOffset < 30; dayOffset++ {
		key := "user:signin:" + referenceTime.AddDate(0, 0, -dayOffset).Format(dateKeyLayout)
		numSignin := g.rng.IntRange(300, 700)
		for _, userID := range g.rng.SampleInts(signinUsers, numSignin) {
			out = append(out, cmd(bare("SETBIT"), bare(key), num(userID), num(1)))
		}
	}

	return out
}

// hyperloglogs covers unique-visitor counting: daily UV keys for thirty
// days plus one key per page, visitors added in batches of a hundred.
func (g *generator) hyperloglogs() []Command {
	var out []Command

	for dayOffset := 0; dayOffset < 30; dayOffset++ {
		key := "uv:daily:" + referenceTime.AddDate(0, 0, -dayOffset).Format(dateKeyLayout)
		out = append(out, g.visitorBatches(key, g.rng.IntRange(1000, 3000))...)
	}

	for _, page := range uvPages {
		out = append(out, g.visitorBatches("uv:page:"+page, g.rng.IntRange(500, 2000))...)
	}

	return out
}

func (g *generator) visitorBatches(key string, total int) []Command {
	var out []Command
	const batchSize = 100

	for added := 0; added < total; added += batchSize {
		n := min(batchSize, total-added)
		args := []Arg{bare("PFADD"), bare(key)}
		for j := 0; j < n; j++ {
			args = append(args, bare(fmt.Sprintf("user:%d", g.rng.IntRange(1, g.cfg.Users))))
		}
		out = append(out, Command{Args: args})
	}
	return out
}
