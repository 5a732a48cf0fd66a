package redisgen

import (
	"fmt"

	"github.com/forgelabs/seedforge/pkg/random"
)

var messageTypes = []string{"email", "sms", "push", "webhook"}

var taskTypes = []string{"report_generate", "email_send", "data_backup", "image_process"}

var notificationTexts = []string{
	"您的订单已发货",
	"您有新的消息",
	"系统维护通知",
	"账户安全提醒",
	"优惠券即将过期",
	"新品上架通知",
}

// lists covers queues and capped per-user histories. Recent orders and
// browse history get an LTRIM after the pushes so the lists stay bounded.
func (g *generator) lists() []Command {
	var out []Command

	for i := 1; i <= g.cfg.Messages; i++ {
		payload := fmt.Sprintf(`{"id":%d,"type":"%s","user_id":%d}`,
			i, random.Pick(g.rng, messageTypes), g.rng.IntRange(1, g.cfg.Users))
		out = append(out, cmd(bare("LPUSH"), bare("queue:messages"), quoted(payload)))
	}

	const taskCount = 1000
	for i := 1; i <= taskCount; i++ {
		out = append(out, cmd(
			bare("RPUSH"), bare("queue:tasks"),
			quoted(fmt.Sprintf("task:%s:%d", random.Pick(g.rng, taskTypes), i)),
		))
	}

	const orderListUsers = 1000
	for userID := 1; userID <= orderListUsers; userID++ {
		key := fmt.Sprintf("user:%d:recent_orders", userID)
		numOrders := g.rng.IntRange(1, 20)
		for j := 0; j < numOrders; j++ {
			out = append(out, cmd(bare("LPUSH"), bare(key), num(g.rng.IntRange(1, g.cfg.Orders))))
		}
		out = append(out, cmd(bare("LTRIM"), bare(key), num(0), num(19)))
	}

	const browseUsers = 500
	for userID := 1; userID <= browseUsers; userID++ {
		key := fmt.Sprintf("user:%d:browse_history", userID)
		numViews := g.rng.IntRange(10, 50)
		for j := 0; j < numViews; j++ {
			out = append(out, cmd(bare("LPUSH"), bare(key), num(g.rng.IntRange(1, g.cfg.Products))))
		}
		out = append(out, cmd(bare("LTRIM"), bare(key), num(0), num(99)))
	}

	const notifUsers = 1000
	for userID := 1; userID <= notifUsers; userID++ {
		key := fmt.Sprintf("user:%d:notifications", userID)
		numNotif := g.rng.IntRange(3, 15)
		for j := 0; j < numNotif; j++ {
			out = append(out, cmd(bare("LPUSH"), bare(key), quoted(random.Pick(g.rng, notificationTexts))))
		}
	}

	return out
}
