package redisgen

import (
	"fmt"
)

var trendingKeywords = []string{
	"iPhone", "MacBook", "iPad", "AirPods", "手机",
	"电脑", "耳机", "鼠标", "键盘", "显示器",
	"充电器", "数据线", "保护套", "钢化膜", "移动电源",
	"蓝牙音箱", "智能手表", "运动手环", "平板电脑", "游戏机",
}

// sortedSets covers leaderboards and a time-indexed event series. Event
// timestamps are spread over the thirty days before the reference anchor.
func (g *generator) sortedSets() []Command {
	var out []Command

	for userID := 1; userID <= g.cfg.Users; userID++ {
		out = append(out, cmd(
			bare("ZADD"), bare("leaderboard:points"),
			num(g.rng.IntRange(0, 100000)), bare(fmt.Sprintf("user:%d", userID)),
		))
	}

	for productID := 1; productID <= g.cfg.Products; productID++ {
		out = append(out, cmd(
			bare("ZADD"), bare("leaderboard:sales"),
			num(g.rng.IntRange(0, 50000)), bare(fmt.Sprintf("product:%d", productID)),
		))
	}

	for productID := 1; productID <= g.cfg.Products; productID++ {
		out = append(out, cmd(
			bare("ZADD"), bare("leaderboard:rating"),
			fixed2(g.rng.Float64Range(3.0, 5.0)), bare(fmt.Sprintf("product:%d", productID)),
		))
	}

	for _, keyword := range trendingKeywords {
		out = append(out, cmd(
			bare("ZADD"), bare("trending:searches"),
			num(g.rng.IntRange(100, 50000)), quoted(keyword),
		))
	}

	const activityUsers = 2000
	for userID := 1; userID <= activityUsers; userID++ {
		out = append(out, cmd(
			bare("ZADD"), bare("leaderboard:activity"),
			num(g.rng.IntRange(0, 10000)), bare(fmt.Sprintf("user:%d", userID)),
		))
	}

	const eventCount = 1000
	baseUnix := referenceTime.Unix()
	for i := 1; i <= eventCount; i++ {
		ts := baseUnix - int64(g.rng.IntRange(0, 86400*30))
		out = append(out, cmd(
			bare("ZADD"), bare("events:timeline"),
			num64(ts), quoted(fmt.Sprintf("event:%d", i)),
		))
	}

	return out
}
