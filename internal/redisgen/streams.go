package redisgen

import (
	"fmt"

	"github.com/forgelabs/seedforge/pkg/random"
)

var orderActions = []string{"created", "paid", "shipped", "delivered", "cancelled"}

var userActions = []string{"view", "click", "add_to_cart", "purchase", "share", "comment"}

var logLevels = []string{"INFO", "WARN", "ERROR"}

// logLevelWeights skews log entries toward INFO the way a healthy service
// log does.
var logLevelWeights = []int{70, 20, 10}

var logModules = []string{"auth", "order", "payment", "shipping", "notification"}

// streams covers append-only event logs: order lifecycle events, user
// behavior events, and service logs with level-weighted entries. Entry ids
// are server-assigned (XADD *).
func (g *generator) streams() []Command {
	var out []Command
	baseUnix := referenceTime.Unix()

	const orderEvents = 1000
	for i := 1; i <= orderEvents; i++ {
		out = append(out, cmd(
			bare("XADD"), bare("stream:orders"), bare("*"),
			bare("order_id"), num(g.rng.IntRange(1, g.cfg.Orders)),
			bare("user_id"), num(g.rng.IntRange(1, g.cfg.Users)),
			bare("action"), bare(random.Pick(g.rng, orderActions)),
			bare("amount"), fixed2(g.rng.Float64Range(10, 9999)),
		))
	}

	const userEvents = 2000
	for i := 1; i <= userEvents; i++ {
		out = append(out, cmd(
			bare("XADD"), bare("stream:user_actions"), bare("*"),
			bare("user_id"), num(g.rng.IntRange(1, g.cfg.Users)),
			bare("product_id"), num(g.rng.IntRange(1, g.cfg.Products)),
			bare("action"), bare(random.Pick(g.rng, userActions)),
			bare("timestamp"), num64(baseUnix),
		))
	}

	const logEvents = 500
	for i := 1; i <= logEvents; i++ {
		out = append(out, cmd(
			bare("XADD"), bare("stream:logs"), bare("*"),
			bare("level"), bare(random.WeightedPick(g.rng, logLevels, logLevelWeights)),
			bare("module"), bare(random.Pick(g.rng, logModules)),
			bare("message"), quoted(fmt.Sprintf("Log_message_%d", i)),
			bare("timestamp"), num64(baseUnix),
		))
	}

	return out
}
