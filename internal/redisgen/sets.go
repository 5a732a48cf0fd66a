package redisgen

import (
	"fmt"
)

var productTags = []string{
	"热销", "新品", "特价", "包邮", "进口",
	"限时", "精选", "推荐", "高端", "性价比",
	"品质", "畅销", "口碑", "优惠", "折扣",
}

var categorySetNames = []string{"电子产品", "服装鞋包", "食品饮料", "家居用品", "图书音像"}

// sets covers unordered membership: product tags, favorites, the online
// snapshot, social graph edges, and per-category product sets.
func (g *generator) sets() []Command {
	var out []Command

	for i := 1; i <= g.cfg.Products; i++ {
		args := []Arg{bare("SADD"), bare(fmt.Sprintf("product:%d:tags", i))}
		for _, idx := range g.rng.SampleInts(len(productTags), g.rng.IntRange(2, 6)) {
			args = append(args, quoted(productTags[idx-1]))
		}
		out = append(out, Command{Args: args})
	}

	const favUsers = 2000
	for userID := 1; userID <= favUsers; userID++ {
		args := []Arg{bare("SADD"), bare(fmt.Sprintf("user:%d:favorites", userID))}
		for _, pid := range g.rng.SampleInts(g.cfg.Products, g.rng.IntRange(5, 30)) {
			args = append(args, num(pid))
		}
		out = append(out, Command{Args: args})
	}

	// One snapshot of everyone currently online.
	onlineArgs := []Arg{bare("SADD"), bare("online_users")}
	for _, uid := range g.rng.SampleInts(g.cfg.Users, 500) {
		onlineArgs = append(onlineArgs, num(uid))
	}
	out = append(out, Command{Args: onlineArgs})

	const followUsers = 1000
	for userID := 1; userID <= followUsers; userID++ {
		following := []Arg{bare("SADD"), bare(fmt.Sprintf("user:%d:following", userID))}
		for _, uid := range g.rng.SampleInts(g.cfg.Users, g.rng.IntRange(10, 100)) {
			following = append(following, num(uid))
		}
		out = append(out, Command{Args: following})

		followers := []Arg{bare("SADD"), bare(fmt.Sprintf("user:%d:followers", userID))}
		for _, uid := range g.rng.SampleInts(g.cfg.Users, g.rng.IntRange(5, 200)) {
			followers = append(followers, num(uid))
		}
		out = append(out, Command{Args: followers})
	}

	for _, cat := range categorySetNames {
		args := []Arg{bare("SADD"), bare(fmt.Sprintf("category:%s:products", cat))}
		for _, pid := range g.rng.SampleInts(g.cfg.Products, g.rng.IntRange(100, 400)) {
			args = append(args, num(pid))
		}
		out = append(out, Command{Args: args})
	}

	return out
}
